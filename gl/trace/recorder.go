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

// Package trace provides a gl.Functions implementation that records every
// native call passing through it.
package trace

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/glsync/core/log"
	"github.com/google/glsync/gl"
)

// Call is a single recorded native call.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// CallList is a list of recorded calls.
type CallList []Call

// Names returns the name of every call in the list.
func (l CallList) Names() []string {
	out := make([]string, len(l))
	for i, c := range l {
		out[i] = c.Name
	}
	return out
}

// Strings returns the printed form of every call in the list.
func (l CallList) Strings() []string {
	out := make([]string, len(l))
	for i, c := range l {
		out[i] = c.String()
	}
	return out
}

// Recorder is a gl.Functions that records all the calls that pass through it,
// and forwards them to an optional inner implementation.
type Recorder struct {
	// Calls holds every call recorded since the last Reset.
	Calls CallList
	// QueryResults holds the query results returned when there is no inner
	// implementation, keyed by query id. Results are always available.
	QueryResults map[uint32]uint64
	// OnCall, if not nil, is called after each call is recorded.
	OnCall func(Call)

	inner  gl.Functions
	ctx    context.Context
	nextID uint32
}

// New returns a Recorder that only records. Generated object handles are
// allocated sequentially from 1.
func New() *Recorder {
	return &Recorder{QueryResults: map[uint32]uint64{}}
}

// Wrap returns a Recorder that forwards every call to inner.
func Wrap(inner gl.Functions) *Recorder {
	r := New()
	r.inner = inner
	return r
}

// LogCalls makes the recorder log every call to the logger of ctx at Verbose
// severity.
func (r *Recorder) LogCalls(ctx context.Context) *Recorder {
	r.ctx = log.PutTag(ctx, "gl")
	return r
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() { r.Calls = nil }

// Count returns the number of recorded calls with the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls with the given name.
func (r *Recorder) Filter(name string) CallList {
	out := CallList{}
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) record(name string, args ...interface{}) {
	c := Call{Name: name, Args: args}
	r.Calls = append(r.Calls, c)
	if r.ctx != nil {
		log.From(r.ctx).V("%v", c)
	}
	if r.OnCall != nil {
		r.OnCall(c)
	}
}

func (r *Recorder) gen(name string, inner func() uint32) uint32 {
	var id uint32
	if r.inner != nil {
		id = inner()
	} else {
		r.nextID++
		id = r.nextID
	}
	r.record(name, id)
	return id
}
