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

// Directory is an open object manager directory. It satisfies
// namespace.Directory and is owned by whoever opened it.
type Directory struct {
	handle uintptr
	path   string
}

func (d *Directory) Handle() uintptr { return d.handle }
func (d *Directory) Path() string    { return d.path }

// Absolute is a namespace.Directory with no handle: relative paths given to
// it must be absolute namespace paths.
type Absolute struct{}

func (Absolute) Handle() uintptr { return 0 }
func (Absolute) Path() string    { return "" }
