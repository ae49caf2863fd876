// Copyright 2025 OpenPubkey
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package namespace

import "io"

// Object attribute flags used when opening by name.
const (
	AttributeInherit         uint32 = 0x00000002
	AttributeCaseInsensitive uint32 = 0x00000040
	AttributeOpenIf          uint32 = 0x00000080
	AttributeOpenLink        uint32 = 0x00000100
)

// Directory is a handle to a namespace directory used as the base of
// relative opens. Entries never close it.
type Directory interface {
	// Handle returns the native handle, or 0 when Path is absolute.
	Handle() uintptr
	// Path is the full namespace path of the directory.
	Path() string
}

// Object is an opened namespace object. Callers must Close it.
type Object interface {
	io.Closer
	// TypeName is the native type of the opened object.
	TypeName() string
	// GrantedAccess is the access obtained when the object was opened.
	GrantedAccess() AccessMask
	// IsAccessGranted reports whether every bit of access was granted.
	IsAccessGranted(access AccessMask) bool
	QuerySecurityDescriptor(info SecurityInformation) (*SecurityDescriptor, error)
	// SpecificAccess reinterprets mask as the rights of this object's type.
	SpecificAccess(mask AccessMask) TypedAccess
}

// SymbolicLink is implemented by opened symbolic link objects only.
type SymbolicLink interface {
	Object
	QueryTarget() (string, error)
}

// AccessQueryFailure is implemented by objects that opened but could not
// report their granted access. GrantedAccess is zero for such objects.
type AccessQueryFailure interface {
	AccessQueryError() error
}

// OpenRequest describes a relative open.
type OpenRequest struct {
	Root          Directory
	Path          string
	Attributes    uint32
	DesiredAccess AccessMask
}

// TypeRegistry opens objects by type name.
type TypeRegistry interface {
	// IsOpenable reports whether typeName can be opened generically.
	IsOpenable(typeName string) bool
	// Open opens an object of typeName. Unknown or unopenable types fail
	// with ErrInvalidTypeName, other failures should carry a Status.
	Open(typeName string, req OpenRequest) (Object, error)
}

// OpenResult is the outcome of a non-failing open.
type OpenResult struct {
	Object Object
	Status Status
	Err    error
}

// OK reports whether the open produced an object.
func (r OpenResult) OK() bool {
	return r.Err == nil && r.Object != nil
}
