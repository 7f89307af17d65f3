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

// defaultViewportOffsets is used by framebuffers without per-view offsets.
var defaultViewportOffsets = []gl.Offset{{}}

// syncMultiview resolves the pending multiview bits against the current
// draw framebuffer. It runs before the generic bits so that the scissor and
// viewport handlers see the layout of the new framebuffer.
func (m *Manager) syncMultiview(ctx context.Context, st *state.State) {
	fb := st.DrawFramebuffer
	m.multiviewDirty.Each(func(bit dirty.MultiviewBit) {
		switch bit {
		case dirty.MultiviewSideBySideLayout:
			if sbs := fb.IsSideBySide(); sbs != m.s.SideBySideDrawFramebuffer {
				m.s.SideBySideDrawFramebuffer = sbs
				log.D(ctx, "Side-by-side draw framebuffer: %v", sbs)
				m.local.Set(dirty.ScissorTestEnabled)
				m.local.Set(dirty.Scissor)
				m.local.Set(dirty.Viewport)
			}
		case dirty.MultiviewViewportOffsets:
			offsets := defaultViewportOffsets
			if fb != nil && len(fb.ViewportOffsets) > 0 {
				offsets = fb.ViewportOffsets
			}
			if !offsetsEqual(m.s.ViewportOffsets, offsets) {
				m.s.ViewportOffsets = append([]gl.Offset(nil), offsets...)
				m.local.Set(dirty.Viewport)
				m.local.Set(dirty.Scissor)
			}
		}
	})
	m.multiviewDirty.Reset()
}

// syncScissor pushes the scissor of st. Side-by-side framebuffers keep the
// scissor test on, so with the GL-visible test off each view is clipped to
// its viewport instead.
func (m *Manager) syncScissor(st *state.State) {
	if !m.s.SideBySideDrawFramebuffer {
		m.SetScissor(st.Scissor)
		return
	}
	r := st.Viewport
	if st.ScissorTest {
		r = st.Scissor
	}
	m.SetScissorArray(gl.ApplyOffsets(r, m.s.ViewportOffsets))
}

func offsetsEqual(a, b []gl.Offset) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
