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

	"github.com/openpubkey/ntobject/namespace"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// OpenDirectory opens an object manager directory by absolute path, for
// example `\BaseNamedObjects`, with query and traverse access.
func OpenDirectory(path string) (*Directory, error) {
	return OpenDirectoryAt(Absolute{}, path)
}

// OpenDirectoryAt opens a directory relative to root.
func OpenDirectoryAt(root namespace.Directory, path string) (*Directory, error) {
	h, err := ntOpen(procNtOpenDirectoryObject, root.Handle(), path,
		namespace.AttributeCaseInsensitive, directoryQuery|directoryTraverse)
	if err != nil {
		return nil, &namespace.OpenError{
			TypeName: "Directory",
			Path:     joinPath(root.Path(), path),
			Status:   namespace.StatusFromError(err),
			Err:      err,
		}
	}
	return &Directory{handle: uintptr(h), path: joinPath(root.Path(), path)}, nil
}

// Close releases the directory handle.
func (d *Directory) Close() error {
	if d.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(windows.Handle(d.handle))
	d.handle = 0
	return errors.Wrapf(err, "failed to close directory %s", d.path)
}

func joinPath(root, rel string) string {
	if root == "" {
		return rel
	}
	return strings.TrimRight(root, `\`) + `\` + rel
}
