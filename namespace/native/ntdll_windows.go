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

var (
	ntdll                         = windows.NewLazySystemDLL("ntdll.dll")
	procNtOpenDirectoryObject     = ntdll.NewProc("NtOpenDirectoryObject")
	procNtOpenSymbolicLinkObject  = ntdll.NewProc("NtOpenSymbolicLinkObject")
	procNtQuerySymbolicLinkObject = ntdll.NewProc("NtQuerySymbolicLinkObject")
	procNtQueryObject             = ntdll.NewProc("NtQueryObject")
	procNtOpenKey                 = ntdll.NewProc("NtOpenKey")
	procNtOpenEvent               = ntdll.NewProc("NtOpenEvent")
	procNtOpenMutant              = ntdll.NewProc("NtOpenMutant")
	procNtOpenSemaphore           = ntdll.NewProc("NtOpenSemaphore")
	procNtOpenSection             = ntdll.NewProc("NtOpenSection")
	procNtOpenTimer               = ntdll.NewProc("NtOpenTimer")
	procNtOpenJobObject           = ntdll.NewProc("NtOpenJobObject")
	procNtOpenSession             = ntdll.NewProc("NtOpenSession")
	procNtOpenKeyedEvent          = ntdll.NewProc("NtOpenKeyedEvent")
	procNtOpenIoCompletion        = ntdll.NewProc("NtOpenIoCompletion")

	advapi32   = windows.NewLazySystemDLL("advapi32.dll")
	procGetAce = advapi32.NewProc("GetAce")
)

const (
	directoryQuery    = 0x0001
	directoryTraverse = 0x0002

	objectBasicInformation = 0
)

// openers maps a canonical type name to its NtOpen* routine. Every routine
// has the (PHANDLE, ACCESS_MASK, POBJECT_ATTRIBUTES) signature.
var openers = map[string]*windows.LazyProc{
	"Directory":    procNtOpenDirectoryObject,
	"SymbolicLink": procNtOpenSymbolicLinkObject,
	"Key":          procNtOpenKey,
	"Event":        procNtOpenEvent,
	"Mutant":       procNtOpenMutant,
	"Semaphore":    procNtOpenSemaphore,
	"Section":      procNtOpenSection,
	"Timer":        procNtOpenTimer,
	"Job":          procNtOpenJobObject,
	"Session":      procNtOpenSession,
	"KeyedEvent":   procNtOpenKeyedEvent,
	"IoCompletion": procNtOpenIoCompletion,
}

func hasOpener(typeName string) bool {
	_, ok := openers[typeName]
	return ok
}

// ntOpen opens path relative to root with one of the NtOpen* routines.
func ntOpen(proc *windows.LazyProc, root uintptr, path string, attributes uint32, access namespace.AccessMask) (windows.Handle, error) {
	if err := proc.Find(); err != nil {
		return 0, errors.Wrapf(err, "%s unavailable", proc.Name)
	}
	name, err := windows.NewNTUnicodeString(path)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid object name %q", path)
	}
	oa := windows.OBJECT_ATTRIBUTES{
		RootDirectory: windows.Handle(root),
		ObjectName:    name,
		Attributes:    attributes,
	}
	oa.Length = uint32(unsafe.Sizeof(oa))

	var h windows.Handle
	r, _, _ := proc.Call(
		uintptr(unsafe.Pointer(&h)),
		uintptr(access),
		uintptr(unsafe.Pointer(&oa)),
	)
	if st := namespace.Status(r); !st.IsSuccess() {
		return 0, st
	}
	return h, nil
}

type basicInformation struct {
	Attributes             uint32
	GrantedAccess          uint32
	HandleCount            uint32
	PointerCount           uint32
	PagedPoolCharge        uint32
	NonPagedPoolCharge     uint32
	Reserved               [3]uint32
	NameInfoSize           uint32
	TypeInfoSize           uint32
	SecurityDescriptorSize uint32
	CreationTime           int64
}

// grantedAccess asks the object manager which access h was opened with.
func grantedAccess(h windows.Handle) (namespace.AccessMask, error) {
	if err := procNtQueryObject.Find(); err != nil {
		return 0, &namespace.QueryError{Op: "NtQueryObject", Err: err}
	}
	var info basicInformation
	var retLen uint32
	r, _, _ := procNtQueryObject.Call(
		uintptr(h),
		uintptr(objectBasicInformation),
		uintptr(unsafe.Pointer(&info)),
		uintptr(unsafe.Sizeof(info)),
		uintptr(unsafe.Pointer(&retLen)),
	)
	if st := namespace.Status(r); !st.IsSuccess() {
		return 0, &namespace.QueryError{Op: "NtQueryObject", Err: st}
	}
	return namespace.AccessMask(info.GrantedAccess), nil
}
