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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestSourceFilesCarryLicenseHeader(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewOsFs())
	var files []string
	for _, pattern := range []string{"*.go", "native/*.go"} {
		matches, err := afero.Glob(fs, pattern)
		require.NoError(t, err)
		files = append(files, matches...)
	}
	require.NotEmpty(t, files)

	for _, name := range files {
		data, err := afero.ReadFile(fs, name)
		require.NoError(t, err)
		src := string(data)
		// Build constraints must stay ahead of the header.
		if strings.HasPrefix(src, "//go:build") {
			_, src, _ = strings.Cut(src, "\n\n")
		}
		require.True(t, strings.HasPrefix(src, "// Copyright 2025 OpenPubkey\n"), name)
		require.Contains(t, src, "// SPDX-License-Identifier: Apache-2.0\n\n", name)
	}
}
