//go:build !windows
// +build !windows

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
	"testing"

	"github.com/openpubkey/ntobject/namespace"
	"github.com/stretchr/testify/require"
)

func TestOpenDirectoryUnsupported(t *testing.T) {
	_, err := OpenDirectory(`\BaseNamedObjects`)
	require.ErrorIs(t, err, namespace.StatusNotImplemented)

	_, err = OpenDirectoryAt(Absolute{}, `\BaseNamedObjects`)
	require.Error(t, err)
}

func TestDefaultRegistryNotInstalled(t *testing.T) {
	require.False(t, namespace.DefaultRegistry().IsOpenable("Directory"))
}
