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
	"github.com/openpubkey/ntobject/namespace"
	"github.com/pkg/errors"
)

var errUnsupported = errors.Wrap(namespace.StatusNotImplemented, "object namespace is only supported on Windows")

func hasOpener(string) bool { return false }

func openObject(_ *namespace.TypeTable, info namespace.TypeInfo, _ namespace.OpenRequest) (namespace.Object, error) {
	return nil, errors.Wrapf(namespace.ErrInvalidTypeName, "%q", info.Name)
}

// OpenDirectory is a stub on non-Windows platforms.
func OpenDirectory(path string) (*Directory, error) {
	return nil, errUnsupported
}

// OpenDirectoryAt is a stub on non-Windows platforms.
func OpenDirectoryAt(root namespace.Directory, path string) (*Directory, error) {
	return nil, errUnsupported
}

// Close is a no-op on non-Windows platforms.
func (d *Directory) Close() error {
	return nil
}
