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

	"github.com/pkg/errors"
)

// ErrInvalidTypeName is returned when a type name does not map to any
// openable native type.
var ErrInvalidTypeName = errors.New("invalid object type name")

// Status is an NTSTATUS value.
type Status uint32

const (
	StatusSuccess            Status = 0x00000000
	StatusUnsuccessful       Status = 0xC0000001
	StatusNotImplemented     Status = 0xC0000002
	StatusAccessDenied       Status = 0xC0000022
	StatusBufferTooSmall     Status = 0xC0000023
	StatusObjectTypeMismatch Status = 0xC0000024
	StatusObjectNameInvalid  Status = 0xC0000033
	StatusObjectNameNotFound Status = 0xC0000034
	StatusObjectPathNotFound Status = 0xC000003A
	StatusSharingViolation   Status = 0xC0000043
)

var statusNames = map[Status]string{
	StatusSuccess:            "success",
	StatusUnsuccessful:       "unsuccessful",
	StatusNotImplemented:     "not implemented",
	StatusAccessDenied:       "access denied",
	StatusBufferTooSmall:     "buffer too small",
	StatusObjectTypeMismatch: "object type mismatch",
	StatusObjectNameInvalid:  "object name invalid",
	StatusObjectNameNotFound: "object name not found",
	StatusObjectPathNotFound: "object path not found",
	StatusSharingViolation:   "sharing violation",
}

func (s Status) Error() string {
	if name, ok := statusNames[s]; ok {
		return fmt.Sprintf("NTSTATUS 0x%08X (%s)", uint32(s), name)
	}
	return fmt.Sprintf("NTSTATUS 0x%08X", uint32(s))
}

// IsSuccess reports whether s is a success or informational status.
func (s Status) IsSuccess() bool {
	return s < 0x80000000
}

// StatusFromError extracts the Status carried by err. Errors without one map
// to StatusUnsuccessful, nil maps to StatusSuccess.
func StatusFromError(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var st Status
	if errors.As(err, &st) {
		return st
	}
	return StatusUnsuccessful
}

// OpenError reports a failed attempt to open a namespace object.
type OpenError struct {
	TypeName string
	Path     string
	Status   Status
	Err      error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s %q: %v", e.TypeName, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// QueryError reports a failed metadata query on an opened object.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
