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

package native_test

import (
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/gl/native"
	"github.com/google/glsync/gl/trace"
)

type deleter struct{ deleted []string }

func (d *deleter) note(kind string, id uint32) {
	d.deleted = append(d.deleted, kind+":"+string(rune('0'+id)))
}

func (d *deleter) DeleteBuffer(id uint32)            { d.note("buffer", id) }
func (d *deleter) DeleteTexture(id uint32)           { d.note("texture", id) }
func (d *deleter) DeleteSampler(id uint32)           { d.note("sampler", id) }
func (d *deleter) DeleteFramebuffer(id uint32)       { d.note("framebuffer", id) }
func (d *deleter) DeleteRenderbuffer(id uint32)      { d.note("renderbuffer", id) }
func (d *deleter) DeleteVertexArray(id uint32)       { d.note("vertexarray", id) }
func (d *deleter) DeleteProgram(id uint32)           { d.note("program", id) }
func (d *deleter) DeleteTransformFeedback(id uint32) { d.note("transformfeedback", id) }
func (d *deleter) DeleteQuery(id uint32)             { d.note("query", id) }

func TestHandles(t *testing.T) {
	assert := assert.To(t)
	f := trace.New()
	d := &deleter{}

	buf := native.NewBuffer(f, d)
	tex := native.NewTexture(f, d)
	prog := native.NewProgram(f, d)
	assert.For("buffer id").That(buf.NativeID()).Equals(uint32(1))
	assert.For("texture id").That(tex.NativeID()).Equals(uint32(2))
	assert.For("gen calls").ThatSlice(f.Calls.Names()).Equals([]string{"GenBuffer", "GenTexture", "CreateProgram"})

	tex.Release()
	tex.Release()
	buf.Release()
	assert.For("released id").That(tex.NativeID()).Equals(uint32(0))
	assert.For("deleted once").ThatSlice(d.deleted).Equals([]string{"texture:2", "buffer:1"})
	assert.For("not deleted").That(prog.NativeID()).Equals(uint32(3))
}

func TestAllKinds(t *testing.T) {
	assert := assert.To(t)
	f := trace.New()
	d := &deleter{}
	for _, h := range []interface {
		NativeID() uint32
		Release()
	}{
		native.NewSampler(f, d),
		native.NewFramebuffer(f, d),
		native.NewRenderbuffer(f, d),
		native.NewVertexArray(f, d),
		native.NewTransformFeedback(f, d),
		native.NewQuery(f, d),
	} {
		h.Release()
	}
	assert.For("deleted").ThatSlice(d.deleted).Equals([]string{
		"sampler:1", "framebuffer:2", "renderbuffer:3", "vertexarray:4", "transformfeedback:5", "query:6",
	})
}
