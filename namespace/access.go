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

import (
	"fmt"
	"strings"
)

// AccessMask is a raw native access mask.
type AccessMask uint32

// Standard and generic rights shared by every object type.
const (
	AccessDelete         AccessMask = 0x00010000
	AccessReadControl    AccessMask = 0x00020000
	AccessWriteDac       AccessMask = 0x00040000
	AccessWriteOwner     AccessMask = 0x00080000
	AccessSynchronize    AccessMask = 0x00100000
	AccessSystemSecurity AccessMask = 0x01000000
	AccessMaximumAllowed AccessMask = 0x02000000
	GenericAll           AccessMask = 0x10000000
	GenericExecute       AccessMask = 0x20000000
	GenericWrite         AccessMask = 0x40000000
	GenericRead          AccessMask = 0x80000000

	// SpecificRightsMask covers the bits whose meaning depends on the type.
	SpecificRightsMask AccessMask = 0x0000FFFF
)

// SymbolicLinkQuery is the symbolic link specific right needed to read the
// link target.
const SymbolicLinkQuery AccessMask = 0x0001

// Has reports whether every bit of r is present in m.
func (m AccessMask) Has(r AccessMask) bool {
	return r != 0 && m&r == r
}

// HasAny reports whether at least one bit of r is present in m.
func (m AccessMask) HasAny(r AccessMask) bool {
	return m&r != 0
}

func (m AccessMask) String() string {
	return fmt.Sprintf("0x%08X", uint32(m))
}

var commonRights = []RightName{
	{Name: "GENERIC_READ", Mask: GenericRead},
	{Name: "GENERIC_WRITE", Mask: GenericWrite},
	{Name: "GENERIC_EXECUTE", Mask: GenericExecute},
	{Name: "GENERIC_ALL", Mask: GenericAll},
	{Name: "MAXIMUM_ALLOWED", Mask: AccessMaximumAllowed},
	{Name: "ACCESS_SYSTEM_SECURITY", Mask: AccessSystemSecurity},
	{Name: "DELETE", Mask: AccessDelete},
	{Name: "READ_CONTROL", Mask: AccessReadControl},
	{Name: "WRITE_DAC", Mask: AccessWriteDac},
	{Name: "WRITE_OWNER", Mask: AccessWriteOwner},
	{Name: "SYNCHRONIZE", Mask: AccessSynchronize},
}

// RightName names one type specific access right.
type RightName struct {
	Name string     `yaml:"name"`
	Mask AccessMask `yaml:"mask"`
}

// TypedAccess is an access mask reinterpreted for a specific object type.
// The zero value means no access.
type TypedAccess struct {
	TypeName string
	Mask     AccessMask
	rights   []RightName
}

// NewTypedAccess pairs mask with the specific rights of typeName.
func NewTypedAccess(typeName string, mask AccessMask, rights []RightName) TypedAccess {
	return TypedAccess{TypeName: typeName, Mask: mask, rights: rights}
}

// IsZero reports whether no right was granted.
func (a TypedAccess) IsZero() bool {
	return a.Mask == 0
}

// Has reports whether every bit of r was granted.
func (a TypedAccess) Has(r AccessMask) bool {
	return a.Mask.Has(r)
}

// Names returns the names of the rights in the mask, specific rights first.
// Bits with no known name are reported as a single hex value at the end.
func (a TypedAccess) Names() []string {
	var parts []string
	rest := a.Mask
	for _, r := range a.rights {
		if r.Mask != 0 && rest&r.Mask == r.Mask {
			parts = append(parts, r.Name)
			rest &^= r.Mask
		}
	}
	for _, r := range commonRights {
		if rest&r.Mask != 0 {
			parts = append(parts, r.Name)
			rest &^= r.Mask
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return parts
}

// String renders the mask as "|" joined right names. No access renders as
// "NONE".
func (a TypedAccess) String() string {
	if a.Mask == 0 {
		return "NONE"
	}
	return strings.Join(a.Names(), "|")
}
