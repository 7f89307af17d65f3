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

package statemanager_test

import (
	"context"
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/core/log"
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
	"github.com/google/glsync/gl/state"
	"github.com/google/glsync/gl/statemanager"
	"github.com/google/glsync/gl/trace"
)

const (
	es32      = "OpenGL ES 3.2 build 1.10@1234"
	desktop45 = "4.5.0 NVIDIA 390.77"
)

// handle is a backend payload holding a fixed native id.
type handle uint32

func (h handle) NativeID() uint32 { return uint32(h) }

func info(t *testing.T, version string, extensions ...string) gl.Info {
	ext := ""
	for _, e := range extensions {
		ext += e + " "
	}
	i, err := gl.NewInfo(version, ext)
	if err != nil {
		t.Fatalf("NewInfo(%q): %v", version, err)
	}
	return i
}

// newManager returns a strict Manager for an ES 3.2 backend, unless cfg says
// otherwise, recording its calls.
func newManager(t *testing.T, cfg statemanager.Config) (context.Context, *statemanager.Manager, *trace.Recorder) {
	ctx := log.Testing(t)
	if cfg.Info.Version.Major == 0 {
		cfg.Info = info(t, es32)
	}
	if cfg.Caps == (gl.Caps{}) {
		cfg.Caps = gl.DefaultCaps()
	}
	cfg.Strict = true
	r := trace.New()
	m, err := statemanager.New(ctx, r, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return ctx, m, r
}

// syncAll pushes every dirty category of st and forgets the calls it made.
func syncAll(ctx context.Context, m *statemanager.Manager, r *trace.Recorder, st *state.State) {
	m.SyncState(ctx, st, st.DirtyBits(), dirty.All())
	r.Reset()
}

// panics returns the error a strict Manager panicked with while running f.
func panics(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestNew(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)

	_, err := statemanager.New(ctx, nil, statemanager.Config{Caps: gl.DefaultCaps()})
	assert.For("no functions").ThatError(err).HasCause(statemanager.ErrNoFunctions)

	caps := gl.DefaultCaps()
	caps.MaxViews = 0
	_, err = statemanager.New(ctx, trace.New(), statemanager.Config{Caps: caps})
	assert.For("bad caps").ThatError(err).HasCause(gl.ErrInvalidCaps)

	_, m, r := newManager(t, statemanager.Config{})
	assert.For("no calls").ThatSlice(r.Calls).IsEmpty()
	s := m.Snapshot()
	assert.For("blend").That(s.Blend).Equals(state.DefaultBlendState())
	assert.For("depth stencil").That(s.DepthStencil).Equals(state.DefaultDepthStencilState())
	assert.For("far").That(s.FarZ).Equals(float32(1))
	assert.For("unpack").That(s.Unpack.Alignment).Equals(int32(4))
	assert.For("multisampling").ThatBoolean(s.MultisamplingEnabled).IsTrue()
	assert.For("uniform bindings").ThatSlice(s.IndexedBuffers[gl.BufferBindingUniform]).IsLength(36)
	assert.For("array bindings").ThatSlice(s.IndexedBuffers[gl.BufferBindingArray]).IsEmpty()
	assert.For("texture units").ThatSlice(s.Textures[gl.TextureTypeCubeMap]).IsLength(48)
	assert.For("views").ThatSlice(s.Scissors).IsLength(1)
	assert.For("attribs").That(s.VertexAttribCurrentValues[15]).Equals(gl.DefaultVertexAttribCurrentValue)
}

func TestFeatures(t *testing.T) {
	assert := assert.To(t)
	f := statemanager.Features{}
	assert.For("empty").ThatString(f.String()).Equals("none")

	err := f.Override([]string{"flush_on_framebuffer_change", "clear_to_zero_or_one_broken"}, nil)
	assert.For("override").ThatError(err).Succeeded()
	assert.For("flush").ThatBoolean(f.FlushOnFramebufferChange).IsTrue()
	assert.For("names").ThatString(f.String()).Equals("flush_on_framebuffer_change, clear_to_zero_or_one_broken")

	err = f.Override([]string{"always_call_use_program_after_link"}, []string{"flush_on_framebuffer_change"})
	assert.For("enable and disable").ThatError(err).Succeeded()
	assert.For("disabled").ThatBoolean(f.FlushOnFramebufferChange).IsFalse()
	assert.For("enabled").ThatBoolean(f.AlwaysCallUseProgramAfterLink).IsTrue()

	before := f
	err = f.Override([]string{"emulate_primitive_restart_fixed_index"}, []string{"no_such_feature"})
	assert.For("unknown").ThatError(err).HasCause(statemanager.ErrUnknownFeature)
	assert.For("unchanged").That(f).Equals(before)
}

func TestSnapshot(t *testing.T) {
	assert := assert.To(t)
	_, m, _ := newManager(t, statemanager.Config{})
	m.SetScissor(gl.Rectangle{X: 1, Y: 2, Width: 3, Height: 4})
	m.BindBuffer(gl.BufferBindingArray, 9)

	s := m.Snapshot()
	s.Scissors[0].X = 100
	s.Textures[gl.TextureType2D][0] = 5
	again := m.Snapshot()
	assert.For("deep copy").That(again.Scissors[0].X).Equals(int32(1))
	assert.For("deep copy textures").That(again.Textures[gl.TextureType2D][0]).Equals(uint32(0))

	pb, err := again.Proto()
	assert.For("proto").ThatError(err).Succeeded()
	assert.For("line width").That(pb.Fields["lineWidth"].GetNumberValue()).Equals(float64(1))
	buffers := pb.Fields["buffers"].GetStructValue()
	assert.For("array buffer").That(buffers.Fields[gl.BufferBindingArray.String()].GetNumberValue()).Equals(float64(9))

	js, err := again.JSON()
	assert.For("json").ThatError(err).Succeeded()
	assert.For("json scissor").ThatString(js).Contains(`"scissors"`)
	assert.For("json blend").ThatString(js).Contains(`"srcRGB": "0x0001"`)
}

func TestInvariants(t *testing.T) {
	assert := assert.To(t)
	_, m, r := newManager(t, statemanager.Config{})
	err := panics(func() { m.BindBufferBase(gl.BufferBindingArray, 0, 1) })
	assert.For("strict").ThatError(err).HasCause(statemanager.ErrInvariant)
	assert.For("no call").ThatSlice(r.Calls).IsEmpty()

	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Brief.Handler(w))
	lenient, err := statemanager.New(ctx, r, statemanager.Config{Info: info(t, es32), Caps: gl.DefaultCaps()})
	assert.For("lenient").ThatError(err).Succeeded()
	lenient.BindBufferBase(gl.BufferBindingUniform, 99, 1)
	lenient.BindBufferBase(gl.BufferBindingUniform, 1, 1)
	assert.For("skipped").ThatInteger(r.Count("BindBufferBase")).Equals(1)
	assert.For("logged").ThatString(buf.String()).Contains("binding 99 out of range")
}

func TestUnsupportedLoggedOnce(t *testing.T) {
	assert := assert.To(t)
	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Raw.Handler(w))
	r := trace.New()
	m, err := statemanager.New(ctx, r, statemanager.Config{Info: info(t, es32), Caps: gl.DefaultCaps()})
	assert.For("new").ThatError(err).Succeeded()
	buf.Reset()

	m.SetFramebufferSRGBEnabled(true)
	m.SetFramebufferSRGBEnabled(true)
	assert.For("no calls").ThatSlice(r.Calls).IsEmpty()
	assert.For("snapshot").ThatBoolean(m.Snapshot().FramebufferSRGBEnabled).IsFalse()
	assert.For("log").ThatString(buf.String()).Equals("Skipping framebuffer sRGB: not supported by the backend\n")
}
