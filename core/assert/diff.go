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
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

const maxDiffs = 10

// Diff returns the paths that differ between got and expect, each formatted as
// "path ⟦got⟧ != ⟦expect⟧". Unexported fields are compared. With a positive
// limit at most limit entries are returned.
func Diff(got, expect interface{}, limit int) []string {
	r := &diffReporter{limit: limit}
	cmp.Equal(got, expect, cmp.Exporter(func(reflect.Type) bool { return true }), cmp.Reporter(r))
	return r.out
}

// diffReporter collects one line per unequal leaf of a cmp comparison.
type diffReporter struct {
	limit int
	path  cmp.Path
	out   []string
}

func (r *diffReporter) PushStep(s cmp.PathStep) { r.path = append(r.path, s) }
func (r *diffReporter) PopStep()                { r.path = r.path[:len(r.path)-1] }

func (r *diffReporter) Report(res cmp.Result) {
	if res.Equal() || (r.limit > 0 && len(r.out) >= r.limit) {
		return
	}
	got, expect := r.path.Last().Values()
	r.out = append(r.out, fmt.Sprintf("%s ⟦%v⟧ != ⟦%v⟧", r.pathString(), show(got), show(expect)))
}

// pathString renders the field, index and key steps below the root.
func (r *diffReporter) pathString() string {
	sb := strings.Builder{}
	for _, s := range r.path[1:] {
		switch s := s.(type) {
		case cmp.StructField:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.Name())
		case cmp.SliceIndex:
			k := s.Key()
			if k < 0 {
				if kx, ky := s.SplitKeys(); kx >= 0 {
					k = kx
				} else {
					k = ky
				}
			}
			fmt.Fprintf(&sb, "[%d]", k)
		case cmp.MapIndex:
			fmt.Fprintf(&sb, "[%#v]", show(s.Key()))
		}
	}
	if sb.Len() == 0 {
		return "value"
	}
	return sb.String()
}

func show(v reflect.Value) interface{} {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		return v.Interface()
	}
	return v.String()
}
