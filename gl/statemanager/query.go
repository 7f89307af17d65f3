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
	"github.com/google/glsync/gl/native"
	"github.com/google/glsync/gl/state"
)

// BeginQuery records q as the active query of type t and begins the native
// query id. At most one query of each type may be active.
func (m *Manager) BeginQuery(t gl.QueryType, q state.QueryImpl, id uint32) {
	if !m.invariant(m.queries[t] == nil, "A %v query is already active", t) ||
		!m.invariant(id != 0, "Beginning %v query with id 0", t) {
		return
	}
	m.queries[t] = q
	m.f.BeginQuery(t.GLenum(), id)
}

// EndQuery ends the active query q of type t.
func (m *Manager) EndQuery(t gl.QueryType, q state.QueryImpl, id uint32) {
	if !m.invariant(q != nil && m.queries[t] == q, "Ending %v query %d which is not active", t, id) {
		return
	}
	m.queries[t] = nil
	m.f.EndQuery(t.GLenum())
}

// ActiveQuery returns the active query of type t, or nil.
func (m *Manager) ActiveQuery(t gl.QueryType) state.QueryImpl { return m.queries[t] }

// PausedQuery returns the query of type t paused by PauseQuery, or nil.
func (m *Manager) PausedQuery(t gl.QueryType) state.QueryImpl { return m.tempPaused[t] }

// PauseQuery pauses the active query of type t, if any, until ResumeQuery.
func (m *Manager) PauseQuery(ctx context.Context, t gl.QueryType) {
	if q := m.queries[t]; q != nil {
		q.Pause(ctx)
		m.tempPaused[t] = q
		m.queries[t] = nil
	}
}

// PauseAllQueries pauses every active query.
func (m *Manager) PauseAllQueries(ctx context.Context) {
	for t := range m.queries {
		m.PauseQuery(ctx, gl.QueryType(t))
	}
}

// ResumeQuery resumes the query of type t paused by PauseQuery. The query
// must be paused.
func (m *Manager) ResumeQuery(ctx context.Context, t gl.QueryType) {
	q := m.tempPaused[t]
	if !m.invariant(q != nil, "Resuming %v query which is not paused", t) {
		return
	}
	m.tempPaused[t] = nil
	q.Resume(ctx)
}

// ResumeAllQueries resumes every query paused by PauseQuery.
func (m *Manager) ResumeAllQueries(ctx context.Context) {
	for t, q := range m.tempPaused {
		if q != nil {
			m.ResumeQuery(ctx, gl.QueryType(t))
		}
	}
}

// Query is the backend payload of a query object. A query that is paused and
// resumed spans several native queries, whose results are accumulated.
type Query struct {
	m       *Manager
	typ     gl.QueryType
	active  *native.Query
	pending []*native.Query
	result  uint64
}

var _ state.QueryImpl = (*Query)(nil)

// NewQuery returns a query of type t issuing its native calls through m.
func NewQuery(m *Manager, t gl.QueryType) *Query {
	return &Query{m: m, typ: t}
}

// Type returns the type of the query.
func (q *Query) Type() gl.QueryType { return q.typ }

// runningID returns the native id of the running segment, or 0.
func (q *Query) runningID() uint32 {
	if q.active == nil {
		return 0
	}
	return q.active.NativeID()
}

// Begin clears the result and starts counting.
func (q *Query) Begin(ctx context.Context) {
	q.result = 0
	q.Resume(ctx)
}

// End stops counting.
func (q *Query) End(ctx context.Context) {
	q.Pause(ctx)
}

// Pause ends the current native query, keeping it for the result.
func (q *Query) Pause(ctx context.Context) {
	if q.active == nil {
		return
	}
	q.m.EndQuery(q.typ, q, q.active.NativeID())
	q.pending = append(q.pending, q.active)
	q.active = nil
	q.flush(ctx, false)
}

// Resume starts a new native query. The query must not be running.
func (q *Query) Resume(ctx context.Context) {
	if !q.m.invariant(q.active == nil, "Resuming %v query %d which is running", q.typ, q.runningID()) {
		return
	}
	q.flush(ctx, false)
	q.active = native.NewQuery(q.m.f, q.m)
	q.m.BeginQuery(q.typ, q, q.active.NativeID())
}

// IsResultAvailable returns true when every segment of the query has
// produced its result.
func (q *Query) IsResultAvailable(ctx context.Context) bool {
	q.flush(ctx, false)
	return len(q.pending) == 0
}

// Result waits for every segment of the query and returns the accumulated
// result. Any-samples queries report 0 or 1.
func (q *Query) Result(ctx context.Context) uint64 {
	q.flush(ctx, true)
	return q.result
}

// Release deletes the native queries of q.
func (q *Query) Release(ctx context.Context) {
	q.Pause(ctx)
	for _, p := range q.pending {
		p.Release()
	}
	q.pending = nil
}

// flush folds the results of the finished segments into the result. With
// force it waits for every pending segment.
func (q *Query) flush(ctx context.Context, force bool) {
	f := q.m.f
	for len(q.pending) > 0 {
		p := q.pending[0]
		id := p.NativeID()
		if !force && f.GetQueryObjectui64(id, gl.GLenum_GL_QUERY_RESULT_AVAILABLE) == 0 {
			return
		}
		r := f.GetQueryObjectui64(id, gl.GLenum_GL_QUERY_RESULT)
		if q.typ.IsAnySamples() {
			if r != 0 {
				q.result = 1
			}
		} else {
			q.result += r
		}
		p.Release()
		q.pending = q.pending[1:]
		log.From(ctx).V("Query %d of type %v folded, result %d", id, q.typ, q.result)
	}
}
