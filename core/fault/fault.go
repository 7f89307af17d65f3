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

// Package fault holds the error primitives shared by the state tracking
// packages.
package fault

import "strings"

// Const is the type for sentinel errors that callers test for with
// errors.Cause.
type Const string

func (e Const) Error() string { return string(e) }

// List accumulates independent errors, such as one per invalid field, so that
// they can be reported together.
type List []error

// Collect appends err to the list. Nil errors are ignored.
func (l *List) Collect(err error) {
	if err != nil {
		*l = append(*l, err)
	}
}

// Err returns nil for an empty list and the error itself for a list of one,
// so that its cause is preserved. Longer lists are returned as a List.
func (l List) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	}
	return l
}

// Error joins the messages of every collected error.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
