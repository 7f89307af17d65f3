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

package gl_test

import (
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/gl"
	"github.com/pkg/errors"
)

func TestParseVersion(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		str    string
		expect gl.Version
	}{
		{"4.6.0 NVIDIA 470.57.02", gl.Version{Standard: gl.StandardGL, Major: 4, Minor: 6}},
		{"3.3 (Core Profile) Mesa 21.0.3", gl.Version{Standard: gl.StandardGL, Major: 3, Minor: 3}},
		{"OpenGL ES 3.2 V@0502.0", gl.Version{Standard: gl.StandardGLES, Major: 3, Minor: 2}},
		{"OpenGL ES-CM 1.1", gl.Version{Standard: gl.StandardGLES, Major: 1, Minor: 1}},
	} {
		v, err := gl.ParseVersion(test.str)
		if assert.For("%q err", test.str).ThatError(err).Succeeded() {
			assert.For("%q", test.str).That(v).Equals(test.expect)
		}
	}
	_, err := gl.ParseVersion("bogus")
	assert.For("bogus").ThatError(err).HasCause(gl.ErrUnknownVersion)
}

func TestInfo(t *testing.T) {
	assert := assert.To(t)
	info, err := gl.NewInfo("OpenGL ES 3.1", "GL_OES_viewport_array  GL_EXT_sRGB_write_control\nGL_OVR_multiview")
	assert.For("err").ThatError(err).Succeeded()
	assert.For("desktop").ThatBoolean(info.IsDesktop()).IsFalse()
	assert.For("ES 3.0").ThatBoolean(info.IsAtLeastGLES(3, 0)).IsTrue()
	assert.For("ES 3.2").ThatBoolean(info.IsAtLeastGLES(3, 2)).IsFalse()
	assert.For("GL 3.0").ThatBoolean(info.IsAtLeastGL(3, 0)).IsFalse()
	assert.For("viewport array").ThatBoolean(info.HasGLESExtension(gl.ExtOESViewportArray)).IsTrue()
	assert.For("viewport array as GL").ThatBoolean(info.HasGLExtension(gl.ExtOESViewportArray)).IsFalse()
	assert.For("names").ThatSlice(info.Extensions.Names()).Equals([]string{
		"GL_EXT_sRGB_write_control", "GL_OES_viewport_array", "GL_OVR_multiview",
	})
}

func TestCapsValidate(t *testing.T) {
	assert := assert.To(t)
	assert.For("defaults").ThatError(gl.DefaultCaps().Validate()).Succeeded()

	caps := gl.DefaultCaps()
	caps.MaxViews = 0
	assert.For("one").ThatError(errors.Cause(caps.Validate())).Equals(gl.ErrInvalidCaps)

	caps.MaxVertexAttributes = 0
	err := caps.Validate()
	assert.For("two").ThatString(err.Error()).Contains("MaxVertexAttributes is 0")
	assert.For("two").ThatString(err.Error()).Contains("MaxViews is 0")
}

func TestBufferBindings(t *testing.T) {
	assert := assert.To(t)
	indexed := []gl.BufferBinding{}
	for _, b := range gl.AllBufferBindings() {
		if b.Indexed() {
			indexed = append(indexed, b)
		}
	}
	assert.For("indexed").ThatSlice(indexed).Equals([]gl.BufferBinding{
		gl.BufferBindingAtomicCounter,
		gl.BufferBindingShaderStorage,
		gl.BufferBindingTransformFeedback,
		gl.BufferBindingUniform,
	})
	assert.For("uniform").That(gl.BufferBindingUniform.GLenum()).Equals(gl.GLenum_GL_UNIFORM_BUFFER)
	assert.For("caps").ThatInteger(gl.DefaultCaps().IndexedBufferBindings(gl.BufferBindingArray)).Equals(0)
}

func TestApplyOffsets(t *testing.T) {
	assert := assert.To(t)
	got := gl.ApplyOffsets(gl.Rectangle{X: 10, Y: 20, Width: 100, Height: 200}, []gl.Offset{{0, 0}, {100, 0}})
	assert.For("rects").ThatSlice(got).Equals([]gl.Rectangle{
		{X: 10, Y: 20, Width: 100, Height: 200},
		{X: 110, Y: 20, Width: 100, Height: 200},
	})
}

func TestPrimitiveRestartIndex(t *testing.T) {
	assert := assert.To(t)
	assert.For("ubyte").That(gl.PrimitiveRestartIndex(gl.GLenum_GL_UNSIGNED_BYTE)).Equals(uint32(0xFF))
	assert.For("ushort").That(gl.PrimitiveRestartIndex(gl.GLenum_GL_UNSIGNED_SHORT)).Equals(uint32(0xFFFF))
	assert.For("uint").That(gl.PrimitiveRestartIndex(gl.GLenum_GL_UNSIGNED_INT)).Equals(uint32(0xFFFFFFFF))
}
