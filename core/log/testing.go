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

import "context"

// TestingT matches the reporting methods of *testing.T and *testing.B.
type TestingT interface {
	Fatal(...interface{})
	Error(...interface{})
	Log(...interface{})
}

// Testing returns a context that logs to t. Error and Fatal messages fail the
// test. Verbose messages, such as individual native calls, are dropped.
func Testing(t TestingT) context.Context {
	ctx := PutHandler(context.Background(), TestHandler(t, Brief))
	return PutFilter(ctx, SeverityFilter(Debug))
}

// TestHandler returns a Handler that reports messages to t, formatted with s.
func TestHandler(t TestingT, s Style) Handler {
	if t == nil {
		panic("TestHandler requires a non-nil TestingT")
	}
	return NewHandler(func(m *Message) {
		text := s.Print(m)
		switch {
		case m.Severity >= Fatal:
			t.Fatal(text)
		case m.Severity >= Error:
			t.Error(text)
		default:
			t.Log(text)
		}
	}, nil)
}
