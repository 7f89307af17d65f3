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

package log_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/core/log"
)

var testClock log.Clock

func init() {
	t, err := time.Parse("Mon Jan _2 15:04:05.999 2006", "Mon Jan 22 12:34:56.789 2000")
	if err != nil {
		panic(err)
	}
	testClock = log.FixedClock(t)
}

type testMessage struct {
	msg      string
	args     []interface{}
	values   log.V
	severity log.Severity
	tag      string

	raw      string
	brief    string
	normal   string
	detailed string
}

func (m testMessage) send(h log.Handler) {
	ctx := context.Background()
	ctx = log.PutHandler(ctx, h)
	ctx = log.PutTag(ctx, m.tag)
	ctx = log.PutClock(ctx, testClock)
	ctx = m.values.Bind(ctx)
	log.From(ctx).Logf(m.severity, false, m.msg, m.args...)
}

var testMessages = []testMessage{
	{
		msg:      "plain warning",
		severity: log.Warning,

		raw:      "plain warning",
		brief:    "W: plain warning",
		normal:   "12:34:56.789 W: plain warning",
		detailed: "12:34:56.789 Warning: plain warning",
	}, {
		msg:      "info with values",
		severity: log.Info,
		values:   log.V{"cat": "meow", "dog": "woof"},

		raw:      "info with values",
		brief:    "I: info with values",
		normal:   "12:34:56.789 I: info with values",
		detailed: "12:34:56.789 Info: info with values \n  cat: meow\n  dog: woof",
	}, {
		msg:      "bound %d to unit %d",
		args:     []interface{}{7, 2},
		severity: log.Debug,
		tag:      "statemanager",

		raw:      "bound 7 to unit 2",
		brief:    "D: bound 7 to unit 2",
		normal:   "12:34:56.789 D: [statemanager] bound 7 to unit 2",
		detailed: "12:34:56.789 Debug: [statemanager] bound 7 to unit 2",
	},
}

func TestStyles(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		style  log.Style
		expect func(testMessage) string
	}{
		{log.Raw, func(m testMessage) string { return m.raw }},
		{log.Brief, func(m testMessage) string { return m.brief }},
		{log.Normal, func(m testMessage) string { return m.normal }},
		{log.Detailed, func(m testMessage) string { return m.detailed }},
	} {
		for _, m := range testMessages {
			w, buf := log.Buffer()
			m.send(test.style.Handler(w))
			got := strings.TrimSuffix(buf.String(), "\n")
			assert.For("%v %q", test.style, m.msg).ThatString(got).Equals(test.expect(m))
		}
	}
}

func TestFilter(t *testing.T) {
	assert := assert.To(t)
	w, buf := log.Buffer()
	ctx := log.PutHandler(context.Background(), log.Raw.Handler(w))
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "hidden")
	log.I(ctx, "hidden")
	log.W(ctx, "shown")
	log.E(ctx, "also shown")
	assert.For("output").ThatString(buf.String()).Equals("shown\nalso shown\n")
}

func TestNoHandler(t *testing.T) {
	assert := assert.To(t)
	l := log.From(context.Background())
	assert.For("enabled").That(l.Enabled(log.Fatal)).Equals(false)
	l.E("dropped")
}

func TestValueShadowing(t *testing.T) {
	assert := assert.To(t)
	var got *log.Message
	ctx := log.PutHandler(context.Background(), log.NewHandler(func(m *log.Message) { got = m }, nil))
	ctx = log.V{"unit": 1, "target": "2D"}.Bind(ctx)
	ctx = log.V{"unit": 3}.Bind(ctx)
	log.I(ctx, "bind")
	assert.For("values").ThatInteger(len(got.Values)).Equals(2)
	assert.For("target").That(got.Values[0].Name).Equals("target")
	assert.For("unit").That(got.Values[1].Value).Equals(3)
}

func TestTrace(t *testing.T) {
	assert := assert.To(t)
	ctx := log.Enter(context.Background(), "SyncState")
	ctx = log.Enter(ctx, "updateProgramTextureBindings")
	assert.For("trace").ThatSlice(log.GetTrace(ctx)).Equals([]string{"updateProgramTextureBindings", "SyncState"})
}
