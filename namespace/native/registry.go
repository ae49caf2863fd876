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

// Package native opens objects of the Windows object manager namespace.
// On other platforms every type reports as not openable.
package native

import (
	"github.com/openpubkey/ntobject/namespace"
	"github.com/pkg/errors"
)

// Registry implements namespace.TypeRegistry for the running system.
type Registry struct {
	Table *namespace.TypeTable
}

// NewRegistry returns a registry that opens the openable types of table.
func NewRegistry(table *namespace.TypeTable) *Registry {
	return &Registry{Table: table}
}

// NewDefaultRegistry returns a registry backed by the embedded type table.
func NewDefaultRegistry() (*Registry, error) {
	table, err := namespace.DefaultTypeTable()
	if err != nil {
		return nil, err
	}
	return NewRegistry(table), nil
}

func (r *Registry) IsOpenable(typeName string) bool {
	info, ok := r.Table.Lookup(typeName)
	return ok && info.Openable && hasOpener(info.Name)
}

func (r *Registry) Open(typeName string, req namespace.OpenRequest) (namespace.Object, error) {
	info, ok := r.Table.Lookup(typeName)
	if !ok || !info.Openable || !hasOpener(info.Name) {
		return nil, errors.Wrapf(namespace.ErrInvalidTypeName, "%q", typeName)
	}
	return openObject(r.Table, info, req)
}
