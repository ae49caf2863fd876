//go:build windows
// +build windows

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

package native

import (
	"unsafe"

	"github.com/openpubkey/ntobject/namespace"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// object is an opened namespace object.
type object struct {
	handle    windows.Handle
	info      namespace.TypeInfo
	table     *namespace.TypeTable
	granted   namespace.AccessMask
	accessErr error
}

// symbolicLink adds the target query to object.
type symbolicLink struct {
	object
}

func openObject(table *namespace.TypeTable, info namespace.TypeInfo, req namespace.OpenRequest) (namespace.Object, error) {
	var root uintptr
	if req.Root != nil {
		root = req.Root.Handle()
	}
	h, err := ntOpen(openers[info.Name], root, req.Path, req.Attributes, req.DesiredAccess)
	if err != nil {
		return nil, err
	}
	// An unknown mask is reported as no access.
	granted, accessErr := grantedAccess(h)
	obj := object{handle: h, info: info, table: table, granted: granted, accessErr: accessErr}
	if info.Name == "SymbolicLink" {
		return &symbolicLink{object: obj}, nil
	}
	return &obj, nil
}

func (o *object) Close() error {
	if o.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(o.handle)
	o.handle = 0
	return errors.Wrapf(err, "failed to close %s handle", o.info.Name)
}

func (o *object) TypeName() string                    { return o.info.Name }
func (o *object) GrantedAccess() namespace.AccessMask { return o.granted }
func (o *object) AccessQueryError() error             { return o.accessErr }

func (o *object) IsAccessGranted(access namespace.AccessMask) bool {
	return o.granted.Has(access)
}

func (o *object) SpecificAccess(mask namespace.AccessMask) namespace.TypedAccess {
	return o.table.SpecificAccess(o.info.Name, mask)
}

func (o *object) QuerySecurityDescriptor(info namespace.SecurityInformation) (*namespace.SecurityDescriptor, error) {
	sd, err := windows.GetSecurityInfo(o.handle, windows.SE_KERNEL_OBJECT, windows.SECURITY_INFORMATION(info))
	if err != nil && info&^basicSecurityInformation != 0 {
		// Older systems reject the newer SACL categories.
		sd, err = windows.GetSecurityInfo(o.handle, windows.SE_KERNEL_OBJECT,
			windows.SECURITY_INFORMATION(info&basicSecurityInformation))
	}
	if err != nil {
		return nil, &namespace.QueryError{Op: "GetSecurityInfo", Err: err}
	}
	return convertSecurityDescriptor(sd)
}

const basicSecurityInformation = namespace.SecurityInformationOwner | namespace.SecurityInformationGroup |
	namespace.SecurityInformationDacl | namespace.SecurityInformationLabel

// QueryTarget reads the link target with NtQuerySymbolicLinkObject.
func (l *symbolicLink) QueryTarget() (string, error) {
	if err := procNtQuerySymbolicLinkObject.Find(); err != nil {
		return "", err
	}
	// Ask for the size first, then read. Targets are bounded by the maximum
	// UNICODE_STRING length.
	var needed uint32
	var empty windows.NTUnicodeString
	r, _, _ := procNtQuerySymbolicLinkObject.Call(
		uintptr(l.handle),
		uintptr(unsafe.Pointer(&empty)),
		uintptr(unsafe.Pointer(&needed)),
	)
	st := namespace.Status(r)
	if st.IsSuccess() {
		return "", nil
	}
	if st != namespace.StatusBufferTooSmall {
		return "", &namespace.QueryError{Op: "NtQuerySymbolicLinkObject", Err: st}
	}
	if needed == 0 || needed > 0xFFFE {
		needed = 0xFFFE
	}

	buf := make([]uint16, needed/2+1)
	target := windows.NTUnicodeString{
		MaximumLength: uint16(len(buf) * 2),
		Buffer:        &buf[0],
	}
	if len(buf)*2 > 0xFFFE {
		target.MaximumLength = 0xFFFE
	}
	r, _, _ = procNtQuerySymbolicLinkObject.Call(
		uintptr(l.handle),
		uintptr(unsafe.Pointer(&target)),
		uintptr(unsafe.Pointer(&needed)),
	)
	if st := namespace.Status(r); !st.IsSuccess() {
		return "", &namespace.QueryError{Op: "NtQuerySymbolicLinkObject", Err: st}
	}
	return windows.UTF16ToString(buf[:target.Length/2]), nil
}
