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
	"github.com/google/glsync/gl/state"
	"github.com/google/glsync/gl/statemanager"
	"github.com/google/glsync/gl/trace"
)

func queryCalls(r *trace.Recorder) []string {
	out := []string{}
	for _, c := range r.Calls {
		if c.Name == "BeginQuery" || c.Name == "EndQuery" {
			out = append(out, c.Name)
		}
	}
	return out
}

func TestQueryPauseResume(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{})
	r.QueryResults[1] = 3
	r.QueryResults[2] = 4

	q := statemanager.NewQuery(m, gl.QueryTypePrimitivesGenerated)
	q.Begin(ctx)
	assert.For("active").That(m.ActiveQuery(gl.QueryTypePrimitivesGenerated)).Equals(q)

	m.PauseQuery(ctx, gl.QueryTypePrimitivesGenerated)
	assert.For("paused slot").That(m.PausedQuery(gl.QueryTypePrimitivesGenerated)).Equals(q)
	assert.For("active slot").That(m.ActiveQuery(gl.QueryTypePrimitivesGenerated)).IsNil()

	m.ResumeQuery(ctx, gl.QueryTypePrimitivesGenerated)
	q.End(ctx)
	assert.For("calls").ThatSlice(queryCalls(r)).Equals([]string{"BeginQuery", "EndQuery", "BeginQuery", "EndQuery"})
	assert.For("active after").That(m.ActiveQuery(gl.QueryTypePrimitivesGenerated)).IsNil()
	assert.For("paused after").That(m.PausedQuery(gl.QueryTypePrimitivesGenerated)).IsNil()
	assert.For("available").ThatBoolean(q.IsResultAvailable(ctx)).IsTrue()
	assert.For("sum").That(q.Result(ctx)).Equals(uint64(7))
	assert.For("deleted").ThatInteger(r.Count("DeleteQuery")).Equals(2)

	// Beginning again starts from zero.
	r.QueryResults[3] = 5
	q.Begin(ctx)
	q.End(ctx)
	assert.For("restart").That(q.Result(ctx)).Equals(uint64(5))
}

func TestQueryAnySamples(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{})
	r.QueryResults[1] = 0
	r.QueryResults[2] = 12

	q := statemanager.NewQuery(m, gl.QueryTypeAnySamples)
	q.Begin(ctx)
	m.PauseAllQueries(ctx)
	m.ResumeAllQueries(ctx)
	q.End(ctx)
	assert.For("boolean").That(q.Result(ctx)).Equals(uint64(1))
	assert.For("targets").ThatSlice(r.Filter("BeginQuery").Strings()).Equals([]string{
		"BeginQuery(0x8C2F, 1)",
		"BeginQuery(0x8C2F, 2)",
	})
}

func TestQueryRelease(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{})
	q := statemanager.NewQuery(m, gl.QueryTypeTimeElapsed)
	q.Begin(ctx)
	q.Release(ctx)
	assert.For("ended").ThatInteger(r.Count("EndQuery")).Equals(1)
	assert.For("deleted").ThatInteger(r.Count("DeleteQuery")).Equals(1)
	assert.For("slot").That(m.ActiveQuery(gl.QueryTypeTimeElapsed)).IsNil()
}

func TestQueryInvariants(t *testing.T) {
	assert := assert.To(t)
	ctx, m, _ := newManager(t, statemanager.Config{})
	q := statemanager.NewQuery(m, gl.QueryTypeAnySamples)
	q.Begin(ctx)

	other := statemanager.NewQuery(m, gl.QueryTypeAnySamples)
	err := panics(func() { other.Begin(ctx) })
	assert.For("second begin").ThatError(err).HasCause(statemanager.ErrInvariant)

	err = panics(func() { m.EndQuery(gl.QueryTypeAnySamples, other, 9) })
	assert.For("end inactive").ThatError(err).HasCause(statemanager.ErrInvariant)
	assert.For("still active").That(m.ActiveQuery(gl.QueryTypeAnySamples)).Equals(q)
}

func TestDeleteRunningQuery(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{})
	q := statemanager.NewQuery(m, gl.QueryTypePrimitivesGenerated)
	q.Begin(ctx)
	err := panics(func() { m.DeleteQuery(1) })
	assert.For("running").ThatError(err).HasCause(statemanager.ErrInvariant)
	m.DeleteQuery(0)
	assert.For("kept").ThatInteger(r.Count("DeleteQuery")).Equals(0)

	q.End(ctx)
	assert.For("segment deleted").ThatSlice(r.Filter("DeleteQuery").Strings()).Equals([]string{"DeleteQuery(1)"})
}

func TestQueryResumeInvariants(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{})
	q := statemanager.NewQuery(m, gl.QueryTypeAnySamples)
	q.Begin(ctx)
	m.PauseQuery(ctx, gl.QueryTypeAnySamples)
	m.ResumeQuery(ctx, gl.QueryTypeAnySamples)

	err := panics(func() { m.ResumeQuery(ctx, gl.QueryTypeAnySamples) })
	assert.For("double resume").ThatError(err).HasCause(statemanager.ErrInvariant)
	err = panics(func() { q.Resume(ctx) })
	assert.For("resume running").ThatError(err).HasCause(statemanager.ErrInvariant)
	assert.For("begins").ThatInteger(r.Count("BeginQuery")).Equals(2)
	assert.For("still active").That(m.ActiveQuery(gl.QueryTypeAnySamples)).Equals(q)

	// Resuming everything with nothing paused is not a violation.
	m.ResumeAllQueries(ctx)
	assert.For("resume all").ThatInteger(r.Count("BeginQuery")).Equals(2)
}

func TestMakeCurrentWithPausedQuery(t *testing.T) {
	assert := assert.To(t)
	ctx, m, _ := newManager(t, statemanager.Config{})
	first, second := state.New(gl.DefaultCaps()), state.New(gl.DefaultCaps())
	first.ContextID, second.ContextID = 1, 2
	m.OnMakeCurrent(ctx, first)
	q := statemanager.NewQuery(m, gl.QueryTypeAnySamples)
	q.Begin(ctx)
	m.PauseAllQueries(ctx)
	err := panics(func() { m.OnMakeCurrent(ctx, second) })
	assert.For("strict").ThatError(err).HasCause(statemanager.ErrInvariant)

	w, buf := log.Buffer()
	lctx := log.PutHandler(context.Background(), log.Brief.Handler(w))
	r := trace.New()
	lenient, err := statemanager.New(lctx, r, statemanager.Config{Info: info(t, es32), Caps: gl.DefaultCaps()})
	assert.For("lenient").ThatError(err).Succeeded()
	lenient.OnMakeCurrent(lctx, first)
	parked := statemanager.NewQuery(lenient, gl.QueryTypeAnySamples)
	parked.Begin(lctx)
	lenient.PauseAllQueries(lctx)
	lenient.OnMakeCurrent(lctx, second)
	assert.For("dropped").That(lenient.PausedQuery(gl.QueryTypeAnySamples)).IsNil()
	assert.For("logged").ThatString(buf.String()).Contains("temporarily paused")

	// The parked query stays paused inside the second context.
	own := statemanager.NewQuery(lenient, gl.QueryTypeAnySamples)
	own.Begin(lctx)
	lenient.ResumeAllQueries(lctx)
	assert.For("own query").That(lenient.ActiveQuery(gl.QueryTypeAnySamples)).Equals(own)
	assert.For("begins").ThatInteger(r.Count("BeginQuery")).Equals(2)
}

func TestMakeCurrent(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{Info: info(t, desktop45)})
	first, second := state.New(gl.DefaultCaps()), state.New(gl.DefaultCaps())
	first.ContextID, second.ContextID = 1, 2

	m.OnMakeCurrent(ctx, first)
	q := statemanager.NewQuery(m, gl.QueryTypeAnySamples)
	q.Begin(ctx)
	first.SetActiveQuery(gl.QueryTypeAnySamples, &state.Query{Type: gl.QueryTypeAnySamples, Impl: q})

	m.OnMakeCurrent(ctx, second)
	assert.For("paused").That(m.ActiveQuery(gl.QueryTypeAnySamples)).IsNil()
	m.OnMakeCurrent(ctx, first)
	assert.For("resumed").That(m.ActiveQuery(gl.QueryTypeAnySamples)).Equals(q)
	assert.For("calls").ThatSlice(queryCalls(r)).Equals([]string{"BeginQuery", "EndQuery", "BeginQuery"})
	assert.For("seamless").ThatSlice(r.Filter("Enable").Strings()).Equals([]string{"Enable(0x884F)"})

	r.Reset()
	m.OnMakeCurrent(ctx, first)
	assert.For("same context").ThatSlice(r.Calls).IsEmpty()
}
