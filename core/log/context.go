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

package log

import (
	"context"
	"time"
)

type tagKeyTy string
type clockKeyTy string
type filterKeyTy string
type traceKeyTy string

const (
	tagKey    tagKeyTy    = "log.tagKey"
	clockKey  clockKeyTy  = "log.clockKey"
	filterKey filterKeyTy = "log.filterKey"
	traceKey  traceKeyTy  = "log.traceKey"
)

// PutTag returns a new context with the tag assigned to w.
func PutTag(ctx context.Context, w string) context.Context {
	return context.WithValue(ctx, tagKey, w)
}

// GetTag returns the tag assigned to ctx.
func GetTag(ctx context.Context) string {
	out, _ := ctx.Value(tagKey).(string)
	return out
}

// Clock is the interface implemented by types that tell the time.
type Clock interface {
	Time() time.Time
}

// FixedClock is a Clock that always returns the same time.
type FixedClock time.Time

// Time returns the fixed time.
func (c FixedClock) Time() time.Time { return time.Time(c) }

// PutClock returns a new context with the Clock assigned to w.
func PutClock(ctx context.Context, c Clock) context.Context {
	return context.WithValue(ctx, clockKey, c)
}

// GetClock returns the Clock assigned to ctx.
func GetClock(ctx context.Context) Clock {
	out, _ := ctx.Value(clockKey).(Clock)
	return out
}

// Filter is the filter of log messages.
type Filter interface {
	// ShowSeverity returns true if the message of severity s should be shown.
	ShowSeverity(s Severity) bool
}

// SeverityFilter is a Filter that shows messages at or above the severity.
type SeverityFilter Severity

// ShowSeverity returns true if s is at least as severe as the filter.
func (f SeverityFilter) ShowSeverity(s Severity) bool { return Severity(f) <= s }

// PutFilter returns a new context with the Filter assigned to w.
func PutFilter(ctx context.Context, w Filter) context.Context {
	return context.WithValue(ctx, filterKey, w)
}

// GetFilter returns the Filter assigned to ctx.
func GetFilter(ctx context.Context) Filter {
	out, _ := ctx.Value(filterKey).(Filter)
	return out
}

type trace struct {
	name   string
	parent *trace
}

// Enter returns a new context with the trace-stack pushed by name.
func Enter(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, traceKey, &trace{name: name, parent: getTrace(ctx)})
}

func getTrace(ctx context.Context) *trace {
	out, _ := ctx.Value(traceKey).(*trace)
	return out
}

// GetTrace returns the trace-stack, innermost first.
func GetTrace(ctx context.Context) []string {
	var out []string
	for t := getTrace(ctx); t != nil; t = t.parent {
		out = append(out, t.name)
	}
	return out
}
