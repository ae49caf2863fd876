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

// Package namespace models entries of the native object namespace and
// resolves their security metadata on demand.
package namespace

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Entry is one object found while listing a namespace directory. Identity
// is fixed at construction. The security descriptor, link target and
// maximum granted access are read once, on first use, and cached for the
// life of the entry. An Entry is safe for concurrent use.
type Entry struct {
	root         Directory
	relativePath string
	name         string
	typeName     string
	isDirectory  bool
	isSymlink    bool

	registry TypeRegistry
	log      *zap.SugaredLogger

	mu        sync.Mutex
	populated bool
	sd        *SecurityDescriptor
	target    string
	hasTarget bool
	maxAccess TypedAccess
}

// EntryOption configures an Entry.
type EntryOption func(*Entry)

// WithRegistry sets the registry used to open the entry's object.
func WithRegistry(r TypeRegistry) EntryOption {
	return func(e *Entry) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLogger sets the logger that receives absorbed population failures.
func WithLogger(l *zap.SugaredLogger) EntryOption {
	return func(e *Entry) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEntry creates an entry for the object at relativePath below root. It
// performs no I/O.
func NewEntry(root Directory, relativePath, name, typeName string, opts ...EntryOption) *Entry {
	e := &Entry{
		root:         root,
		relativePath: relativePath,
		name:         name,
		typeName:     typeName,
		isDirectory:  strings.EqualFold(typeName, "directory") || strings.EqualFold(typeName, "key"),
		isSymlink:    strings.EqualFold(typeName, "symboliclink"),
		registry:     DefaultRegistry(),
		log:          logger(),
		sd:           NewSecurityDescriptor(),
		maxAccess:    TypedAccess{TypeName: typeName},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Entry) Name() string         { return e.name }
func (e *Entry) TypeName() string     { return e.typeName }
func (e *Entry) RelativePath() string { return e.relativePath }
func (e *Entry) IsDirectory() bool    { return e.isDirectory }
func (e *Entry) IsSymbolicLink() bool { return e.isSymlink }

// Root returns the directory the entry is relative to.
func (e *Entry) Root() Directory { return e.root }

// String returns the entry name. It never triggers population.
func (e *Entry) String() string { return e.name }

// FullPath joins the root path and the relative path.
func (e *Entry) FullPath() string {
	if e.root == nil || e.root.Path() == "" {
		return e.relativePath
	}
	return strings.TrimRight(e.root.Path(), `\`) + `\` + e.relativePath
}

func (e *Entry) openRequest() OpenRequest {
	return OpenRequest{
		Root:          e.root,
		Path:          e.relativePath,
		Attributes:    AttributeCaseInsensitive,
		DesiredAccess: AccessMaximumAllowed,
	}
}

// Open opens the underlying object with the maximum access the caller is
// allowed. Unknown types fail with ErrInvalidTypeName, anything else with
// an *OpenError. The caller must Close the returned object. An object the
// registry returns alongside an error is closed here.
func (e *Entry) Open() (Object, error) {
	obj, err := e.registry.Open(e.typeName, e.openRequest())
	if err != nil {
		if obj != nil {
			if cerr := obj.Close(); cerr != nil {
				e.log.Debugw("failed to close object", "path", e.FullPath(), "type", e.typeName, "error", cerr)
			}
		}
		if errors.Is(err, ErrInvalidTypeName) {
			return nil, err
		}
		return nil, &OpenError{
			TypeName: e.typeName,
			Path:     e.FullPath(),
			Status:   StatusFromError(err),
			Err:      err,
		}
	}
	if obj == nil {
		return nil, &OpenError{TypeName: e.typeName, Path: e.FullPath(), Status: StatusUnsuccessful, Err: StatusUnsuccessful}
	}
	return obj, nil
}

// TryOpen is Open without a failing return: the outcome is in the result.
func (e *Entry) TryOpen() OpenResult {
	obj, err := e.Open()
	if err != nil {
		return OpenResult{Status: StatusFromError(err), Err: err}
	}
	return OpenResult{Object: obj, Status: StatusSuccess}
}

// Resolve opens the underlying object. With failOnError an open failure is
// returned as the error, otherwise it is only recorded in the result.
func (e *Entry) Resolve(failOnError bool) (OpenResult, error) {
	res := e.TryOpen()
	if failOnError && res.Err != nil {
		return res, res.Err
	}
	return res, nil
}

// SecurityDescriptor returns the object's security descriptor, or an empty
// one when it could not be read.
func (e *Entry) SecurityDescriptor() *SecurityDescriptor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.populate()
	return e.sd
}

// SymbolicLinkTarget returns the link target. ok is false when the entry is
// not a link or the target could not be read.
func (e *Entry) SymbolicLinkTarget() (target string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.populate()
	return e.target, e.hasTarget
}

// MaximumGrantedAccess returns the access the caller obtained when opening
// the object, or no access when it could not be opened.
func (e *Entry) MaximumGrantedAccess() TypedAccess {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.populate()
	return e.maxAccess
}

// Populated reports whether the metadata has been resolved. It does not
// trigger resolution.
func (e *Entry) Populated() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.populated
}

// populate runs once per entry with e.mu held. Every failure leaves the
// remaining fields at their defaults.
func (e *Entry) populate() {
	if e.populated {
		return
	}
	e.populated = true

	defer func() {
		if r := recover(); r != nil {
			e.log.Debugw("object metadata resolution aborted", "path", e.FullPath(), "type", e.typeName, "panic", r)
		}
	}()

	if !e.registry.IsOpenable(e.typeName) {
		return
	}

	res := e.TryOpen()
	if !res.OK() {
		e.log.Debugw("cannot open object", "path", e.FullPath(), "type", e.typeName, "error", res.Err)
		return
	}
	obj := res.Object
	defer func() {
		if err := obj.Close(); err != nil {
			e.log.Debugw("failed to close object", "path", e.FullPath(), "type", e.typeName, "error", err)
		}
	}()

	if f, ok := obj.(AccessQueryFailure); ok {
		if err := f.AccessQueryError(); err != nil {
			e.log.Debugw("cannot query granted access", "path", e.FullPath(), "type", e.typeName, "error", err)
		}
	}
	granted := obj.GrantedAccess()
	if granted.Has(AccessReadControl) {
		sd, err := obj.QuerySecurityDescriptor(SecurityInformationAllBasic)
		if err != nil {
			e.log.Debugw("cannot read security descriptor", "path", e.FullPath(), "type", e.typeName, "error", err)
		} else if sd != nil {
			e.sd = sd
		}
	}

	if link, ok := obj.(SymbolicLink); ok && link.IsAccessGranted(SymbolicLinkQuery) {
		target, err := link.QueryTarget()
		if err != nil {
			e.log.Debugw("cannot read symbolic link target", "path", e.FullPath(), "type", e.typeName, "error", err)
		} else {
			e.target = target
			e.hasTarget = true
		}
	}

	e.maxAccess = obj.SpecificAccess(granted)
}
