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
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	defaultsMu      sync.RWMutex
	defaultRegistry TypeRegistry = emptyRegistry{}
	defaultLogger                = zap.NewNop().Sugar()
)

// SetDefaultRegistry sets the registry used by entries created without
// WithRegistry. The native package installs itself here on Windows.
func SetDefaultRegistry(r TypeRegistry) {
	if r == nil {
		r = emptyRegistry{}
	}
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultRegistry = r
}

// DefaultRegistry returns the registry used by entries created without
// WithRegistry.
func DefaultRegistry() TypeRegistry {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultRegistry
}

// SetLogger sets the logger used by entries created without WithLogger.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultLogger = l
}

func logger() *zap.SugaredLogger {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultLogger
}

// emptyRegistry knows no types.
type emptyRegistry struct{}

func (emptyRegistry) IsOpenable(string) bool { return false }

func (emptyRegistry) Open(typeName string, _ OpenRequest) (Object, error) {
	return nil, errors.Wrapf(ErrInvalidTypeName, "%q", typeName)
}
