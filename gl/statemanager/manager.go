// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package statemanager

import (
	"context"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/glsync/core/fault"
	"github.com/google/glsync/core/log"
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
	"github.com/google/glsync/gl/state"
	"github.com/pkg/errors"
)

const (
	// ErrInvariant is the cause of every panic raised by a strict Manager
	// when it is used in a way the GL state forbids.
	ErrInvariant = fault.Const("State manager invariant violated")
	// ErrNoFunctions is returned by New when no function table is given.
	ErrNoFunctions = fault.Const("No native functions")
)

// Config holds the construction parameters of a Manager.
type Config struct {
	// Info describes the native backend.
	Info gl.Info
	// Caps sizes the binding point arrays.
	Caps gl.Caps
	// Features holds the driver workarounds to apply.
	Features Features
	// Strict makes invariant violations panic instead of being logged and
	// skipped.
	Strict bool
}

// Manager owns the cached copy of the native GL state of one context.
// Every native state change issued by the backend goes through the Manager,
// which skips calls that would not change the cached value.
//
// A Manager is bound to a single native context and is not safe for
// concurrent use.
type Manager struct {
	f        gl.Functions
	info     gl.Info
	caps     gl.Caps
	features Features
	strict   bool
	log      *log.Logger

	s Snapshot

	// local holds the categories changed by the Manager itself since the
	// last synchronisation.
	local              dirty.Bits
	localCurrentValues *bitset.BitSet
	multiviewDirty     dirty.MultiviewBits

	queries    [gl.QueryTypeCount]state.QueryImpl
	tempPaused [gl.QueryTypeCount]state.QueryImpl

	// currentTF is the transform feedback object last synchronised as the
	// current one.
	currentTF state.TransformFeedbackImpl

	prevContext    uint64
	hasPrevContext bool

	// Backend capabilities, resolved once.
	separateFramebufferBindings bool
	srgbWriteControl            bool
	viewportArrays              bool
	multiview                   bool
	multisampleControl          bool
	seamlessCubeMap             bool
	sampleMask                  bool
	primitiveRestartFixedIndex  bool
	generateMipmapHint          bool

	skipped map[string]bool
}

// New returns a Manager issuing native calls through f. The Manager assumes
// that the native context is in its initial state.
func New(ctx context.Context, f gl.Functions, cfg Config) (*Manager, error) {
	if f == nil {
		return nil, ErrNoFunctions
	}
	if err := cfg.Caps.Validate(); err != nil {
		return nil, errors.Wrap(err, "Creating state manager")
	}
	info := cfg.Info
	ctx = log.PutTag(ctx, "statemanager")
	m := &Manager{
		f:        f,
		info:     info,
		caps:     cfg.Caps,
		features: cfg.Features,
		strict:   cfg.Strict,
		log: log.Bind(ctx, log.V{
			"standard": info.Version.Standard,
			"version":  info.Version,
		}),
		s:                  defaultSnapshot(cfg.Caps),
		local:              dirty.New(),
		localCurrentValues: bitset.New(uint(cfg.Caps.MaxVertexAttributes)),
		skipped:            map[string]bool{},
	}

	m.separateFramebufferBindings = info.IsAtLeastGL(3, 0) || info.IsAtLeastGLES(3, 0) ||
		info.HasExtension(gl.ExtEXTFramebufferBlit) ||
		info.HasExtension(gl.ExtANGLEFramebufferBlit) ||
		info.HasExtension(gl.ExtNVFramebufferBlit)
	m.srgbWriteControl = info.IsAtLeastGL(3, 0) ||
		info.HasGLExtension(gl.ExtARBFramebufferSRGB) ||
		info.HasGLESExtension(gl.ExtEXTSRGBWriteControl)
	m.viewportArrays = info.IsAtLeastGL(4, 1) ||
		info.HasGLExtension(gl.ExtARBViewportArray) ||
		info.HasGLESExtension(gl.ExtOESViewportArray)
	m.multiview = cfg.Caps.MaxViews > 1 && m.viewportArrays
	m.multisampleControl = info.IsDesktop() ||
		info.HasGLESExtension(gl.ExtEXTMultisampleCompat)
	m.seamlessCubeMap = info.IsAtLeastGL(3, 2) ||
		info.HasGLExtension(gl.ExtARBSeamlessCubeMap)
	m.sampleMask = info.IsAtLeastGL(3, 2) || info.IsAtLeastGLES(3, 1) ||
		info.HasGLExtension(gl.ExtARBTextureMultisample)
	m.primitiveRestartFixedIndex = info.IsAtLeastGL(4, 3) || info.IsAtLeastGLES(3, 0) ||
		info.HasGLExtension(gl.ExtARBES3Compatibility)
	m.generateMipmapHint = !info.IsDesktop()

	m.log.I("Created (features: %v)", m.features)
	return m, nil
}

// Functions returns the native function table used by the Manager.
func (m *Manager) Functions() gl.Functions { return m.f }

// Info returns the description of the native backend.
func (m *Manager) Info() gl.Info { return m.info }

// Features returns the workarounds applied by the Manager.
func (m *Manager) Features() Features { return m.features }

// Snapshot returns a copy of the cached native state.
func (m *Manager) Snapshot() Snapshot { return m.s.Clone() }

// invariant reports whether ok holds. When it does not, a strict Manager
// panics and a lenient one logs the violation; the caller must then skip the
// operation.
func (m *Manager) invariant(ok bool, msg string, args ...interface{}) bool {
	if ok {
		return true
	}
	err := errors.Wrapf(ErrInvariant, msg, args...)
	if m.strict {
		panic(err)
	}
	m.log.E("%v", err)
	return false
}

// unsupported logs, once per path, that a state category is not synchronised
// because the backend cannot express it.
func (m *Manager) unsupported(path string) {
	if m.skipped[path] {
		return
	}
	m.skipped[path] = true
	m.log.D("Skipping %s: not supported by the backend", path)
}

func (m *Manager) enable(capability gl.GLenum, enabled bool) {
	if enabled {
		m.f.Enable(capability)
	} else {
		m.f.Disable(capability)
	}
}
