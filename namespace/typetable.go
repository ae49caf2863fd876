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
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed default-types.yml
var defaultTypes []byte

// TypeInfo describes one native object type.
type TypeInfo struct {
	Name     string      `yaml:"name"`
	Openable bool        `yaml:"openable"`
	Rights   []RightName `yaml:"rights"`
}

// TypeTable maps type names, matched case-insensitively, to TypeInfo.
type TypeTable struct {
	Types []TypeInfo `yaml:"types"`

	byName map[string]int
}

// NewTypeTable parses a YAML type table.
func NewTypeTable(content []byte) (*TypeTable, error) {
	var table TypeTable
	if err := yaml.Unmarshal(content, &table); err != nil {
		return nil, errors.Wrap(err, "failed to parse type table")
	}
	table.byName = make(map[string]int, len(table.Types))
	for i, t := range table.Types {
		if t.Name == "" {
			return nil, errors.Errorf("type table entry %d has no name", i)
		}
		key := strings.ToLower(t.Name)
		if _, dup := table.byName[key]; dup {
			return nil, errors.Errorf("type %q listed twice", t.Name)
		}
		for _, r := range t.Rights {
			if r.Mask&^SpecificRightsMask != 0 {
				return nil, errors.Errorf("type %q right %s has non specific bits %s", t.Name, r.Name, r.Mask)
			}
		}
		table.byName[key] = i
	}
	return &table, nil
}

// DefaultTypeTable returns the embedded table of well known types.
func DefaultTypeTable() (*TypeTable, error) {
	return NewTypeTable(defaultTypes)
}

// LoadTypeTable reads a YAML type table from path on fs.
func LoadTypeTable(fs afero.Fs, path string) (*TypeTable, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read type table %s", path)
	}
	return NewTypeTable(content)
}

// Lookup finds a type by name, ignoring case.
func (t *TypeTable) Lookup(typeName string) (TypeInfo, bool) {
	if t == nil {
		return TypeInfo{}, false
	}
	i, ok := t.byName[strings.ToLower(typeName)]
	if !ok {
		return TypeInfo{}, false
	}
	return t.Types[i], true
}

// IsOpenable reports whether typeName is known and generically openable.
func (t *TypeTable) IsOpenable(typeName string) bool {
	info, ok := t.Lookup(typeName)
	return ok && info.Openable
}

// SpecificAccess reinterprets mask as the access rights of typeName. Unknown
// types keep the mask but only get the common right names.
func (t *TypeTable) SpecificAccess(typeName string, mask AccessMask) TypedAccess {
	info, ok := t.Lookup(typeName)
	if !ok {
		return NewTypedAccess(typeName, mask, nil)
	}
	return NewTypedAccess(info.Name, mask, info.Rights)
}
