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

// SecurityInformation selects which parts of a security descriptor a query
// returns.
type SecurityInformation uint32

const (
	SecurityInformationOwner             SecurityInformation = 0x00000001
	SecurityInformationGroup             SecurityInformation = 0x00000002
	SecurityInformationDacl              SecurityInformation = 0x00000004
	SecurityInformationSacl              SecurityInformation = 0x00000008
	SecurityInformationLabel             SecurityInformation = 0x00000010
	SecurityInformationAttribute         SecurityInformation = 0x00000020
	SecurityInformationScope             SecurityInformation = 0x00000040
	SecurityInformationProcessTrustLabel SecurityInformation = 0x00000080

	// SecurityInformationAllBasic is everything readable with READ_CONTROL
	// alone: owner, group, DACL and the parts of the SACL that do not need
	// ACCESS_SYSTEM_SECURITY.
	SecurityInformationAllBasic = SecurityInformationOwner | SecurityInformationGroup |
		SecurityInformationDacl | SecurityInformationLabel | SecurityInformationAttribute |
		SecurityInformationScope | SecurityInformationProcessTrustLabel
)

// ACE types as stored in the ACE header.
const (
	AceTypeAccessAllowed  uint8 = 0x0
	AceTypeAccessDenied   uint8 = 0x1
	AceTypeSystemAudit    uint8 = 0x2
	AceTypeMandatoryLabel uint8 = 0x11
)

// AceFlagInherited marks an ACE inherited from a parent container.
const AceFlagInherited uint8 = 0x10

// ACE is a single access control entry.
type ACE struct {
	Type  uint8
	Flags uint8
	Mask  AccessMask
	// SID is the textual SID (S-1-5-...) of the trustee.
	SID string
}

// Inherited reports whether the ACE came from a parent container.
func (a ACE) Inherited() bool {
	return a.Flags&AceFlagInherited != 0
}

// Kind is a short readable name for the ACE type.
func (a ACE) Kind() string {
	switch a.Type {
	case AceTypeAccessAllowed:
		return "allow"
	case AceTypeAccessDenied:
		return "deny"
	case AceTypeSystemAudit:
		return "audit"
	case AceTypeMandatoryLabel:
		return "label"
	}
	return fmt.Sprintf("type-%d", a.Type)
}

func (a ACE) String() string {
	s := fmt.Sprintf("%s %s %s", a.Kind(), a.SID, a.Mask)
	if a.Inherited() {
		s += " inherited"
	}
	return s
}

// SecurityDescriptor is the owner, group and ACLs of an object. SIDs are
// kept in textual form so the type carries no native memory.
type SecurityDescriptor struct {
	Owner string
	Group string
	// DaclPresent distinguishes an empty DACL (no access) from a missing
	// one (full access).
	DaclPresent bool
	Dacl        []ACE
	Sacl        []ACE
	Control     uint16
}

// NewSecurityDescriptor returns an empty descriptor.
func NewSecurityDescriptor() *SecurityDescriptor {
	return &SecurityDescriptor{}
}

// IsEmpty reports whether nothing was read into the descriptor.
func (sd *SecurityDescriptor) IsEmpty() bool {
	return sd == nil || (sd.Owner == "" && sd.Group == "" && !sd.DaclPresent &&
		len(sd.Dacl) == 0 && len(sd.Sacl) == 0 && sd.Control == 0)
}

// MandatoryLabel returns the mandatory integrity label ACE from the SACL.
func (sd *SecurityDescriptor) MandatoryLabel() (ACE, bool) {
	if sd == nil {
		return ACE{}, false
	}
	for _, a := range sd.Sacl {
		if a.Type == AceTypeMandatoryLabel {
			return a, true
		}
	}
	return ACE{}, false
}

func (sd *SecurityDescriptor) String() string {
	if sd.IsEmpty() {
		return "<empty>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "O:%s G:%s", sd.Owner, sd.Group)
	if sd.DaclPresent {
		b.WriteString(" D:")
		for _, a := range sd.Dacl {
			b.WriteString("(" + a.String() + ")")
		}
	}
	if len(sd.Sacl) > 0 {
		b.WriteString(" S:")
		for _, a := range sd.Sacl {
			b.WriteString("(" + a.String() + ")")
		}
	}
	return b.String()
}
