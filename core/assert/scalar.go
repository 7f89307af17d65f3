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

// OnBoolean is the result of calling ThatBoolean on an Assertion.
type OnBoolean struct {
	Assertion
	value bool
}

// ThatBoolean returns an OnBoolean for boolean based assertions.
func (a Assertion) ThatBoolean(value bool) OnBoolean {
	return OnBoolean{Assertion: a, value: value}
}

// Equals asserts that the value is expect.
func (o OnBoolean) Equals(expect bool) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

// IsTrue asserts that the value is true.
func (o OnBoolean) IsTrue() bool { return o.Equals(true) }

// IsFalse asserts that the value is false.
func (o OnBoolean) IsFalse() bool { return o.Equals(false) }

// OnInteger is the result of calling ThatInteger on an Assertion.
// Counts of native calls are the common case.
type OnInteger struct {
	Assertion
	value int
}

// ThatInteger returns an OnInteger for integer based assertions.
func (a Assertion) ThatInteger(value int) OnInteger {
	return OnInteger{Assertion: a, value: value}
}

// Equals asserts that the value is expect.
func (o OnInteger) Equals(expect int) bool {
	return o.Compare(o.value, "==", expect).Test(o.value == expect)
}

// IsAtLeast asserts that the value is min or more.
func (o OnInteger) IsAtLeast(min int) bool {
	return o.Compare(o.value, ">=", min).Test(o.value >= min)
}

// IsBetween asserts that min <= value <= max.
func (o OnInteger) IsBetween(min, max int) bool {
	return o.CompareRaw(o.value, "in", min, "to", max).Test(min <= o.value && o.value <= max)
}

// OnFloat is the result of calling ThatFloat on an Assertion.
// GL floats are float32, so comparisons take a tolerance.
type OnFloat struct {
	Assertion
	value float64
}

// ThatFloat returns an OnFloat for floating point assertions.
func (a Assertion) ThatFloat(value float64) OnFloat {
	return OnFloat{Assertion: a, value: value}
}

// Equals asserts that the value is within tolerance of v.
func (o OnFloat) Equals(v, tolerance float64) bool {
	lo, hi := v-tolerance, v+tolerance
	return o.CompareRaw(o.value, "in", lo, "to", hi).Test(lo <= o.value && o.value <= hi)
}
