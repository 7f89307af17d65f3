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

package assert

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/glsync/core/log"
)

// Output matches the logging methods of the test host types.
type Output interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Manager builds assertions that report to a single Output, normally a
// *testing.T.
type Manager struct {
	out Output
}

// logOutput reports assertions through a log context. Without a test host
// there is nothing to stop, so Fatal panics after logging.
type logOutput struct {
	ctx  context.Context
	stop bool
}

// To returns a Manager reporting to t, which may be an Output, a
// context.Context carrying a log handler, or nil for stdout.
func To(t interface{}) Manager {
	switch t := t.(type) {
	case nil:
		ctx := log.PutHandler(context.Background(), log.Raw.Handler(log.Stdout()))
		return Manager{logOutput{ctx: ctx, stop: true}}
	case context.Context:
		return Manager{logOutput{ctx: t}}
	case Output:
		return Manager{t}
	default:
		panic(fmt.Errorf("Unsupported assertion target type %T", t))
	}
}

// For is shorthand for To(t).For(msg, args...).
func For(t interface{}, msg string, args ...interface{}) *Assertion {
	return To(t).For(msg, args...)
}

// For starts an assertion titled with the formatted msg.
func (m Manager) For(msg string, args ...interface{}) *Assertion {
	a := &Assertion{to: m.out, out: &bytes.Buffer{}, level: levelError}
	return a.Printf(msg, args...).newline()
}

func (o logOutput) Fatal(args ...interface{}) {
	msg := fmt.Sprint(args...)
	log.F(o.ctx, o.stop, "%s", msg)
	if o.stop {
		panic(msg)
	}
}

func (o logOutput) Error(args ...interface{}) { log.E(o.ctx, "%s", fmt.Sprint(args...)) }
func (o logOutput) Log(args ...interface{})   { log.I(o.ctx, "%s", fmt.Sprint(args...)) }
