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
	"golang.org/x/sys/windows"
)

// aceHeader is the common prefix of every ACE.
type aceHeader struct {
	AceType  uint8
	AceFlags uint8
	AceSize  uint16
}

// Object ACEs carry GUIDs between the mask and the SID and are reported
// without a SID.
var objectAceTypes = map[uint8]bool{
	0x05: true, 0x06: true, 0x07: true, 0x08: true,
	0x0B: true, 0x0C: true, 0x0F: true, 0x10: true,
}

func convertSecurityDescriptor(sd *windows.SECURITY_DESCRIPTOR) (*namespace.SecurityDescriptor, error) {
	out := namespace.NewSecurityDescriptor()
	if sd == nil {
		return out, nil
	}
	if control, _, err := sd.Control(); err == nil {
		out.Control = uint16(control)
	}
	if owner, _, err := sd.Owner(); err == nil && owner != nil {
		out.Owner = owner.String()
	}
	if group, _, err := sd.Group(); err == nil && group != nil {
		out.Group = group.String()
	}
	if dacl, _, err := sd.DACL(); err == nil {
		out.DaclPresent = true
		out.Dacl = readAces(dacl)
	}
	if sacl, _, err := sd.SACL(); err == nil {
		out.Sacl = readAces(sacl)
	}
	return out, nil
}

// readAces walks an ACL with GetAce. A nil ACL yields no entries.
func readAces(acl *windows.ACL) []namespace.ACE {
	if acl == nil {
		return nil
	}
	// AceCount follows AclRevision, Sbz1 and AclSize.
	count := *(*uint16)(unsafe.Add(unsafe.Pointer(acl), 4))

	var aces []namespace.ACE
	for i := uint32(0); i < uint32(count); i++ {
		var pAce unsafe.Pointer
		r, _, _ := procGetAce.Call(uintptr(unsafe.Pointer(acl)), uintptr(i), uintptr(unsafe.Pointer(&pAce)))
		if r == 0 || pAce == nil {
			continue
		}
		hdr := (*aceHeader)(pAce)
		ace := namespace.ACE{
			Type:  hdr.AceType,
			Flags: hdr.AceFlags,
			Mask:  namespace.AccessMask(*(*uint32)(unsafe.Add(pAce, 4))),
		}
		if !objectAceTypes[hdr.AceType] && hdr.AceSize > 8 {
			sid := (*windows.SID)(unsafe.Add(pAce, 8))
			if sid.IsValid() {
				ace.SID = sid.String()
			}
		}
		aces = append(aces, ace)
	}
	return aces
}
