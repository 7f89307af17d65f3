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

package assert_test

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/pkg/errors"
)

type fakeT struct {
	fatal bytes.Buffer
	error bytes.Buffer
	log   bytes.Buffer
}

func (f *fakeT) Fatal(args ...interface{}) { fmt.Fprintln(&f.fatal, args...) }
func (f *fakeT) Error(args ...interface{}) { fmt.Fprintln(&f.error, args...) }
func (f *fakeT) Log(args ...interface{})   { fmt.Fprintln(&f.log, args...) }

func TestManager(t *testing.T) {
	const (
		expectLog   = "Info:manager test\n    log to info\n"
		expectError = "Error:manager test\n    log to error\n"
		expectFatal = "Critical:manager test\n    log to fatal\n"
	)
	fake := &fakeT{}
	assert.To(fake).For("manager test").Log("log to info")
	assert.To(fake).For("manager test").Error("log to error")
	assert.To(fake).For("manager test").Fatal("log to fatal")
	if fake.log.String() != expectLog {
		t.Errorf("For info got %q expected %q", fake.log.String(), expectLog)
	}
	if fake.error.String() != expectError {
		t.Errorf("For error got %q expected %q", fake.error.String(), expectError)
	}
	if fake.fatal.String() != expectFatal {
		t.Errorf("For fatal got %q expected %q", fake.fatal.String(), expectFatal)
	}
}

func TestOutcomes(t *testing.T) {
	fake := &fakeT{}
	check := assert.To(fake)
	var typedNil *int
	err := errors.New("failure")
	for _, test := range []struct {
		name   string
		result bool
		expect bool
	}{
		{"value equals", check.For("v").That(3).Equals(3), true},
		{"value not equals", check.For("v").That(3).Equals(4), false},
		{"typed nil is nil", check.For("v").That(typedNil).IsNil(), true},
		{"untyped nil is not nil", check.For("v").That(nil).IsNotNil(), false},
		{"integer at least", check.For("i").ThatInteger(4).IsAtLeast(4), true},
		{"integer between", check.For("i").ThatInteger(9).IsBetween(1, 8), false},
		{"boolean", check.For("b").ThatBoolean(true).IsTrue(), true},
		{"float tolerance", check.For("f").ThatFloat(0.5).Equals(0.51, 0.02), true},
		{"string contains", check.For("s").ThatString("BindTexture").Contains("Texture"), true},
		{"string prefix", check.For("s").ThatString("BindTexture").HasPrefix("Active"), false},
		{"slice equals", check.For("s").ThatSlice([]int{1, 2}).Equals([]int{1, 2}), true},
		{"slice length", check.For("s").ThatSlice([]int{1, 2}).IsLength(3), false},
		{"slice empty", check.For("s").ThatSlice([]string{}).IsEmpty(), true},
		{"error succeeded", check.For("e").ThatError(nil).Succeeded(), true},
		{"error failed", check.For("e").ThatError(err).Failed(), true},
		{"error message", check.For("e").ThatError(err).HasMessage("failure"), true},
		{"deep equals", check.For("d").That([]int{1}).DeepEquals([]int{1}), true},
		{"deep not equals", check.For("d").That(map[int]int{1: 2}).DeepNotEquals(map[int]int{1: 2}), false},
	} {
		if test.result != test.expect {
			t.Errorf("%s: got %v expected %v", test.name, test.result, test.expect)
		}
	}
	if fake.fatal.Len() != 0 {
		t.Errorf("Unexpected fatal output: %s", fake.fatal.String())
	}
}

func TestDiff(t *testing.T) {
	type rect struct{ X, Y, W, H int }
	type snapshot struct {
		Viewports []rect
		Enabled   map[string]bool
		Name      string
	}
	a := snapshot{
		Viewports: []rect{{0, 0, 4, 4}, {1, 1, 2, 2}},
		Enabled:   map[string]bool{"scissor": true, "blend": false},
		Name:      "a",
	}
	b := a
	b.Viewports = []rect{{0, 0, 4, 4}, {1, 1, 2, 3}}
	b.Enabled = map[string]bool{"scissor": false, "blend": false}
	got := assert.Diff(a, b, 0)
	expect := []string{
		"Viewports[1].H ⟦2⟧ != ⟦3⟧",
		`Enabled["scissor"] ⟦true⟧ != ⟦false⟧`,
	}
	if strings.Join(got, "\n") != strings.Join(expect, "\n") {
		t.Errorf("Diff got %q expected %q", got, expect)
	}
	if d := assert.Diff(a, a, 0); len(d) != 0 {
		t.Errorf("Diff of identical values returned %q", d)
	}
	if d := assert.Diff(b, a, 1); len(d) != 1 {
		t.Errorf("Diff limit ignored: %q", d)
	}
}

func TestDiffKeysOfMixedTypes(t *testing.T) {
	got := map[interface{}]int{1: 2, "1": 2}
	expect := map[interface{}]int{1: 1, "1": 1}
	d := assert.Diff(got, expect, 0)
	sort.Strings(d)
	want := []string{
		`["1"] ⟦2⟧ != ⟦1⟧`,
		`[1] ⟦2⟧ != ⟦1⟧`,
	}
	if strings.Join(d, "\n") != strings.Join(want, "\n") {
		t.Errorf("Diff got %q expected %q", d, want)
	}
}

func TestDiffCycles(t *testing.T) {
	type node struct {
		Value int
		Next  *node
	}
	a := &node{Value: 1}
	a.Next = a
	b := &node{Value: 1}
	b.Next = b
	if d := assert.Diff(a, b, 0); len(d) != 0 {
		t.Errorf("Diff of identical cycles returned %q", d)
	}
	b.Value = 2
	if d := assert.Diff(a, b, 0); len(d) == 0 {
		t.Errorf("Diff of differing cycles returned nothing")
	}
}
