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

	"github.com/google/glsync/core/log"
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
	"github.com/google/glsync/gl/state"
)

// OnMakeCurrent is called when the logical context owning st becomes current
// on the native context. Switching between logical contexts pauses the
// queries and the transform feedback capture of the previous one, and
// resumes the queries active in st. Queries paused with PauseQuery must have
// been resumed beforehand; a lenient Manager drops them, leaving them paused.
func (m *Manager) OnMakeCurrent(ctx context.Context, st *state.State) {
	for t, q := range m.tempPaused {
		if q != nil {
			m.invariant(false, "Making a context current with a temporarily paused %v query", gl.QueryType(t))
			m.tempPaused[t] = nil
		}
	}
	if !m.hasPrevContext || m.prevContext != st.ContextID {
		log.D(ctx, "Context switch to %d", st.ContextID)
		m.PauseTransformFeedback()
		for t, q := range m.queries {
			if q != nil {
				q.Pause(ctx)
				m.queries[t] = nil
			}
			if active := st.ActiveQueries[t]; active != nil && active.Impl != nil {
				active.Impl.Resume(ctx)
			}
		}
	}
	m.local.Set(dirty.TransformFeedbackBinding)
	m.prevContext, m.hasPrevContext = st.ContextID, true

	// Cube map filtering is seamless from ES 3.0 on.
	m.SetTextureCubemapSeamlessEnabled(st.ClientMajorVersion >= 3)
}

// OnProgramLinked is called after the native program has been linked.
func (m *Manager) OnProgramLinked(program uint32) {
	if m.features.AlwaysCallUseProgramAfterLink {
		m.ForceUseProgram(program)
	}
}
