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
	"strings"
	"testing"

	"github.com/openpubkey/ntobject/namespace"
	"github.com/stretchr/testify/require"
)

func TestOpenDirectory(t *testing.T) {
	dir, err := OpenDirectory(`\`)
	require.NoError(t, err)
	defer dir.Close()
	require.NotZero(t, dir.Handle())

	sub, err := OpenDirectoryAt(dir, "KnownDlls")
	require.NoError(t, err)
	require.Equal(t, `\KnownDlls`, sub.Path())
	require.NoError(t, sub.Close())

	_, err = OpenDirectoryAt(dir, "NoSuchDirectory")
	var openErr *namespace.OpenError
	require.ErrorAs(t, err, &openErr)
	require.Equal(t, namespace.StatusObjectNameNotFound, openErr.Status)
}

func TestDirectoryEntryMetadata(t *testing.T) {
	root, err := OpenDirectory(`\`)
	require.NoError(t, err)
	defer root.Close()

	// Everyone can query and traverse \BaseNamedObjects.
	e := namespace.NewEntry(root, "basenamedobjects", "BaseNamedObjects", "Directory")
	require.True(t, e.IsDirectory())

	access := e.MaximumGrantedAccess()
	require.Equal(t, "Directory", access.TypeName)
	require.True(t, access.Has(directoryQuery|directoryTraverse), access.String())
	if access.Has(namespace.AccessReadControl) {
		require.True(t, strings.HasPrefix(e.SecurityDescriptor().Owner, "S-1-"))
	}
}

func TestSymbolicLinkEntryTarget(t *testing.T) {
	root, err := OpenDirectory(`\GLOBAL??`)
	require.NoError(t, err)
	defer root.Close()

	e := namespace.NewEntry(root, "C:", "C:", "SymbolicLink")
	require.True(t, e.IsSymbolicLink())

	target, ok := e.SymbolicLinkTarget()
	require.True(t, ok)
	require.True(t, strings.HasPrefix(target, `\Device\`), target)
}

func TestOpenEntryObject(t *testing.T) {
	root, err := OpenDirectory(`\`)
	require.NoError(t, err)
	defer root.Close()

	e := namespace.NewEntry(root, "KnownDlls", "KnownDlls", "Directory")
	obj, err := e.Open()
	require.NoError(t, err)
	require.Equal(t, "Directory", obj.TypeName())
	require.True(t, obj.IsAccessGranted(directoryQuery))
	failure, ok := obj.(namespace.AccessQueryFailure)
	require.True(t, ok)
	require.NoError(t, failure.AccessQueryError())
	require.NoError(t, obj.Close())
	require.NoError(t, obj.Close())
}

func TestSecurityDescriptorAces(t *testing.T) {
	root, err := OpenDirectory(`\`)
	require.NoError(t, err)
	defer root.Close()

	e := namespace.NewEntry(root, "BaseNamedObjects", "BaseNamedObjects", "Directory")
	if !e.MaximumGrantedAccess().Has(namespace.AccessReadControl) {
		t.Skip("no READ_CONTROL on \\BaseNamedObjects")
	}
	sd := e.SecurityDescriptor()
	require.True(t, sd.DaclPresent)
	require.NotEmpty(t, sd.Dacl)
	for _, ace := range sd.Dacl {
		require.NotZero(t, ace.Mask, ace.String())
		require.True(t, strings.HasPrefix(ace.SID, "S-1-"), ace.String())
	}
}
