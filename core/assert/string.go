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
	"strings"
)

// OnString is the result of calling ThatString on an Assertion.
type OnString struct {
	Assertion
	value string
}

// ThatString returns an OnString for string based assertions.
// Byte slices are converted, anything else is printed with fmt.Sprint, so a
// recorded call or an enum can be checked against its printed form.
func (a Assertion) ThatString(value interface{}) OnString {
	switch v := value.(type) {
	case string:
		return OnString{Assertion: a, value: v}
	case []byte:
		return OnString{Assertion: a, value: string(v)}
	default:
		return OnString{Assertion: a, value: fmt.Sprint(value)}
	}
}

// Equals asserts that the string is expect. On failure the point where the
// strings diverge is logged.
func (o OnString) Equals(expect string) bool {
	ok := o.value == expect
	o.Compare(o.value, "==", expect)
	if !ok {
		o.divergence(expect)
	}
	return o.Test(ok)
}

func (o OnString) divergence(expect string) {
	i := 0
	for i < len(o.value) && i < len(expect) && o.value[i] == expect[i] {
		i++
	}
	switch {
	case i == len(expect):
		o.Printf("Longer\tby\t").Println(o.value[i:])
	case i == len(o.value):
		o.Printf("Shorter\tby\t").Println(expect[i:])
	default:
		o.Printf("Differs\tfrom\t").Println(o.value[i:])
	}
}

// Contains asserts that the string contains substr.
func (o OnString) Contains(substr string) bool {
	return o.Compare(o.value, "contains", substr).Test(strings.Contains(o.value, substr))
}

// DoesNotContain asserts that the string does not contain substr.
func (o OnString) DoesNotContain(substr string) bool {
	return o.Compare(o.value, "does not contain", substr).Test(!strings.Contains(o.value, substr))
}

// HasPrefix asserts that the string starts with prefix.
func (o OnString) HasPrefix(prefix string) bool {
	return o.Compare(o.value, "starts with", prefix).Test(strings.HasPrefix(o.value, prefix))
}

// HasSuffix asserts that the string ends with suffix.
func (o OnString) HasSuffix(suffix string) bool {
	return o.Compare(o.value, "ends with", suffix).Test(strings.HasSuffix(o.value, suffix))
}
