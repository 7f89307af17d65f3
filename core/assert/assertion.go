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
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode"
)

// Assertion accumulates the description of a single check.
// Nothing reaches the Output until the check fails or the assertion is
// explicitly committed with Log, Error or Fatal.
type Assertion struct {
	level level
	out   *bytes.Buffer
	to    Output
}

type level int

const (
	levelInfo = level(iota)
	levelError
	levelFatal
)

func (l level) String() string {
	switch l {
	case levelInfo:
		return "Info"
	case levelError:
		return "Error"
	case levelFatal:
		return "Critical"
	}
	return "Unknown"
}

// Log commits the assertion with args appended, at informational level.
func (a *Assertion) Log(args ...interface{}) { a.emit(levelInfo, args) }

// Error commits the assertion with args appended, failing the test.
func (a *Assertion) Error(args ...interface{}) { a.emit(levelError, args) }

// Fatal commits the assertion with args appended, stopping the test.
func (a *Assertion) Fatal(args ...interface{}) { a.emit(levelFatal, args) }

func (a *Assertion) emit(l level, args []interface{}) {
	fmt.Fprint(a.out, args...)
	a.level = l
	a.Commit()
}

// pretty quotes strings and errors so that blank or padded values are
// visible in the output.
func (a *Assertion) pretty(value interface{}) {
	switch value := value.(type) {
	case error:
		fmt.Fprintf(a.out, "`%v`", value)
	case string:
		fmt.Fprintf(a.out, "`%s`", value)
	default:
		fmt.Fprint(a.out, value)
	}
}

func (a *Assertion) write(quote bool, args []interface{}) *Assertion {
	for i, v := range args {
		if i > 0 {
			a.out.WriteByte('\t')
		}
		if quote {
			a.pretty(v)
		} else {
			fmt.Fprint(a.out, v)
		}
	}
	return a
}

func (a *Assertion) newline() *Assertion {
	a.out.WriteString("\n    ")
	return a
}

// Print writes the tab separated values, quoting strings and errors.
func (a *Assertion) Print(args ...interface{}) *Assertion { return a.write(true, args) }

// Raw writes the tab separated values as they format with %v.
func (a *Assertion) Raw(args ...interface{}) *Assertion { return a.write(false, args) }

// Println is Print followed by a new indented line.
func (a *Assertion) Println(args ...interface{}) *Assertion { return a.Print(args...).newline() }

// Rawln is Raw followed by a new indented line.
func (a *Assertion) Rawln(args ...interface{}) *Assertion { return a.Raw(args...).newline() }

// Printf writes an unquoted formatted string.
func (a *Assertion) Printf(format string, args ...interface{}) *Assertion {
	fmt.Fprintf(a.out, format, args...)
	return a
}

// Add writes a labelled line.
func (a *Assertion) Add(key string, values ...interface{}) *Assertion {
	a.out.WriteString(key + "\t\t")
	return a.Println(values...)
}

// Got writes the value under test.
func (a *Assertion) Got(values ...interface{}) *Assertion {
	return a.Add("Got", values...)
}

// Expect writes the expectation, preceded by the comparison operator.
func (a *Assertion) Expect(op string, values ...interface{}) *Assertion {
	a.out.WriteString("Expect\t" + op + "\t")
	return a.Println(values...)
}

// ExpectRaw is Expect without quoting.
func (a *Assertion) ExpectRaw(op string, values ...interface{}) *Assertion {
	a.out.WriteString("Expect\t" + op + "\t")
	return a.Rawln(values...)
}

// Compare writes both the value under test and the expectation.
func (a *Assertion) Compare(value interface{}, op string, expect ...interface{}) *Assertion {
	return a.Got(value).Expect(op, expect...)
}

// CompareRaw is Compare without quoting the expectation.
func (a *Assertion) CompareRaw(value interface{}, op string, expect ...interface{}) *Assertion {
	return a.Got(value).ExpectRaw(op, expect...)
}

// Test commits the assertion as a failure unless condition holds, and returns
// condition.
func (a *Assertion) Test(condition bool) bool {
	if condition {
		return true
	}
	if a.level < levelError {
		a.level = levelError
	}
	a.Commit()
	return false
}

// TestDeepNotEqual tests that value and expect are not deeply equal.
func (a *Assertion) TestDeepNotEqual(value, expect interface{}) bool {
	return a.Compare(value, "deep !=", expect).Test(len(Diff(value, expect, 1)) > 0)
}

// TestDeepDiff tests value and expect for deep equality, writing only the
// differing paths on failure.
func (a *Assertion) TestDeepDiff(value, expect interface{}) bool {
	diffs := Diff(value, expect, maxDiffs)
	for _, d := range diffs {
		a.Println(d)
	}
	return a.Test(len(diffs) == 0)
}

// Commit aligns the accumulated columns and sends them to the Output at the
// assertion's level.
func (a Assertion) Commit() {
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 1, 4, 1, ' ', tabwriter.StripEscape)
	tw.Write(a.out.Bytes())
	tw.Flush()
	msg := a.level.String() + ":" + strings.TrimRightFunc(buf.String(), unicode.IsSpace)
	switch a.level {
	case levelError:
		a.to.Error(msg)
	case levelFatal:
		a.to.Fatal(msg)
	default:
		a.to.Log(msg)
	}
}
