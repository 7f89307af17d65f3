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

package trace_test

import (
	"context"
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/core/log"
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/trace"
)

func TestRecorder(t *testing.T) {
	assert := assert.To(t)
	r := trace.New()
	r.BindTexture(gl.GLenum_GL_TEXTURE_2D, 7)
	r.BindTexture(gl.GLenum_GL_TEXTURE_3D, 8)
	r.Enable(gl.GLenum_GL_BLEND)
	assert.For("count").ThatInteger(r.Count("BindTexture")).Equals(2)
	assert.For("names").ThatSlice(r.Calls.Names()).Equals([]string{"BindTexture", "BindTexture", "Enable"})
	assert.For("string").ThatString(r.Calls[0]).Equals("BindTexture(0x0DE1, 7)")
	assert.For("filter").ThatSlice(r.Filter("Enable").Strings()).Equals([]string{"Enable(0x0BE2)"})

	r.Reset()
	assert.For("reset").ThatSlice(r.Calls).IsEmpty()

	a, b := r.GenBuffer(), r.GenBuffer()
	assert.For("ids").That(a).Equals(uint32(1))
	assert.For("ids").That(b).Equals(uint32(2))

	r.QueryResults[5] = 42
	assert.For("query").That(r.GetQueryObjectui64(5, gl.GLenum_GL_QUERY_RESULT)).Equals(uint64(42))
}

func TestWrap(t *testing.T) {
	assert := assert.To(t)
	inner := trace.New()
	inner.GenTexture()
	outer := trace.Wrap(inner)
	seen := []string{}
	outer.OnCall = func(c trace.Call) { seen = append(seen, c.Name) }

	id := outer.GenTexture()
	outer.Scissor(1, 2, 3, 4)
	assert.For("forwarded id").That(id).Equals(uint32(2))
	assert.For("inner").ThatSlice(inner.Calls.Strings()).Equals([]string{
		"GenTexture(1)", "GenTexture(2)", "Scissor(1, 2, 3, 4)",
	})
	assert.For("hook").ThatSlice(seen).Equals([]string{"GenTexture", "Scissor"})
}

func TestArrayCopies(t *testing.T) {
	assert := assert.To(t)
	r := trace.New()
	rects := []gl.Rectangle{{X: 1}, {X: 2}}
	r.ScissorArrayv(0, rects)
	rects[0].X = 9
	assert.For("copied").ThatSlice(r.Calls[0].Args[1]).Equals([]gl.Rectangle{{X: 1}, {X: 2}})
}

func TestLogCalls(t *testing.T) {
	assert := assert.To(t)
	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Brief.Handler(w))
	r := trace.New().LogCalls(ctx)
	r.Flush()
	assert.For("log").ThatString(buf.String()).Equals("V: Flush()\n")
}
