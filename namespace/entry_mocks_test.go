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
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// mockDirectory is a fixed namespace directory.
type mockDirectory struct {
	path string
}

func (d mockDirectory) Handle() uintptr { return 0 }
func (d mockDirectory) Path() string    { return d.path }

// mockObject is a configurable opened object.
type mockObject struct {
	typeName  string
	granted   AccessMask
	accessErr error
	sd        *SecurityDescriptor
	sdErr     error
	sdPanic   bool
	sdCalls   int
	closed    int
}

func (o *mockObject) Close() error {
	o.closed++
	return nil
}

func (o *mockObject) TypeName() string          { return o.typeName }
func (o *mockObject) GrantedAccess() AccessMask { return o.granted }
func (o *mockObject) AccessQueryError() error   { return o.accessErr }

func (o *mockObject) IsAccessGranted(access AccessMask) bool {
	return o.granted.Has(access)
}

func (o *mockObject) QuerySecurityDescriptor(info SecurityInformation) (*SecurityDescriptor, error) {
	o.sdCalls++
	if o.sdPanic {
		panic("security query blew up")
	}
	if o.sdErr != nil {
		return nil, &QueryError{Op: "query security", Err: o.sdErr}
	}
	return o.sd, nil
}

func (o *mockObject) SpecificAccess(mask AccessMask) TypedAccess {
	return NewTypedAccess(o.typeName, mask, []RightName{{Name: "QUERY", Mask: 0x1}})
}

// failingCloseObject reports an error from Close.
type failingCloseObject struct {
	mockObject
}

func (o *failingCloseObject) Close() error {
	o.closed++
	return StatusUnsuccessful
}

// mockLink is a symbolic link object.
type mockLink struct {
	mockObject
	target      string
	targetErr   error
	targetCalls int
}

func (l *mockLink) QueryTarget() (string, error) {
	l.targetCalls++
	if l.targetErr != nil {
		return "", &QueryError{Op: "query link target", Err: l.targetErr}
	}
	return l.target, nil
}

// mockRegistry records open attempts and hands out a preset object. With
// objOnError a failing open still returns the object.
type mockRegistry struct {
	mu         sync.Mutex
	openable   map[string]bool
	opens      int
	status     Status
	obj        Object
	objOnError bool
	lastReq    OpenRequest
}

func newMockRegistry(obj Object, types ...string) *mockRegistry {
	r := &mockRegistry{openable: map[string]bool{}, obj: obj}
	for _, t := range types {
		r.openable[strings.ToLower(t)] = true
	}
	return r
}

func (r *mockRegistry) IsOpenable(typeName string) bool {
	return r.openable[strings.ToLower(typeName)]
}

func (r *mockRegistry) Open(typeName string, req OpenRequest) (Object, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opens++
	r.lastReq = req
	if !r.IsOpenable(typeName) {
		return nil, errors.Wrapf(ErrInvalidTypeName, "%q", typeName)
	}
	if r.status != StatusSuccess {
		if r.objOnError {
			return r.obj, r.status
		}
		return nil, r.status
	}
	return r.obj, nil
}

func (r *mockRegistry) openCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opens
}
