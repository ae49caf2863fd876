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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessMaskHas(t *testing.T) {
	m := AccessReadControl | AccessSynchronize | 0x1
	require.True(t, m.Has(AccessReadControl))
	require.True(t, m.Has(AccessReadControl|0x1))
	require.False(t, m.Has(AccessReadControl|AccessWriteDac))
	require.False(t, m.Has(0))
	require.True(t, m.HasAny(AccessReadControl|AccessWriteDac))
	require.False(t, m.HasAny(AccessWriteDac))
	require.Equal(t, "0x00120001", m.String())
}

func TestTypedAccessString(t *testing.T) {
	rights := []RightName{{Name: "QUERY", Mask: 0x1}, {Name: "TRAVERSE", Mask: 0x2}}

	tests := []struct {
		name     string
		mask     AccessMask
		expected string
	}{
		{name: "none", mask: 0, expected: "NONE"},
		{name: "specific", mask: 0x3, expected: "QUERY|TRAVERSE"},
		{name: "standard", mask: AccessReadControl | AccessSynchronize, expected: "READ_CONTROL|SYNCHRONIZE"},
		{name: "mixed", mask: 0x1 | AccessDelete, expected: "QUERY|DELETE"},
		{name: "generic", mask: GenericRead | GenericAll, expected: "GENERIC_READ|GENERIC_ALL"},
		{name: "unknown bits", mask: 0x2 | 0x40, expected: "TRAVERSE|0x40"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewTypedAccess("Directory", tt.mask, rights)
			assert.Equal(t, tt.expected, a.String())
		})
	}
}

func TestTypedAccessZeroValue(t *testing.T) {
	var a TypedAccess
	require.True(t, a.IsZero())
	require.False(t, a.Has(AccessReadControl))
	require.Equal(t, "NONE", a.String())
	require.Empty(t, a.Names())
}
