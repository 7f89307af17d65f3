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

import "reflect"

// OnSlice is the result of calling ThatSlice on an Assertion.
// Calling this with a non slice type will result in panics.
type OnSlice struct {
	Assertion
	slice reflect.Value
}

// ThatSlice returns an OnSlice for assertions on slices and arrays.
func (a Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{Assertion: a, slice: reflect.ValueOf(slice)}
}

// IsEmpty asserts that the slice has no elements.
func (o OnSlice) IsEmpty() bool {
	n := o.slice.Len()
	if n != 0 {
		o.listElements()
	}
	return o.CompareRaw(n, "is", "empty").Test(n == 0)
}

// IsLength asserts that the slice has exactly length elements.
func (o OnSlice) IsLength(length int) bool {
	n := o.slice.Len()
	return o.Compare(n, "length ==", length).Test(n == length)
}

// Equals asserts the slice matches expected element by element using ==.
func (o OnSlice) Equals(expected interface{}) bool {
	return o.slicesEqual(expected)
}

func (o OnSlice) listElements() {
	for i := 0; i < o.slice.Len(); i++ {
		o.Printf("+\t%d\t", i).Println(o.slice.Index(i).Interface())
	}
}

// slicesEqual prints one line per element, marking extra (+), missing (-)
// and differing (*) elements, and commits if any line is marked.
func (o OnSlice) slicesEqual(expected interface{}) bool {
	es := reflect.ValueOf(expected)
	got, want := o.slice.Len(), es.Len()
	n := got
	if want > n {
		n = want
	}
	equal := true
	for i := 0; i < n; i++ {
		switch {
		case i >= got:
			o.Printf("-\t%d\t\t\t==>\t", i).Println(es.Index(i).Interface())
			equal = false
		case i >= want:
			o.Printf("+\t%d\t", i).Println(o.slice.Index(i).Interface())
			equal = false
		default:
			g, e := o.slice.Index(i).Interface(), es.Index(i).Interface()
			if g == e {
				o.Printf("\t%d\t", i).Println(g)
			} else {
				o.Printf("*\t%d\t", i).Print(g).Printf("\t==>\t").Println(e)
				equal = false
			}
		}
	}
	return o.Test(equal)
}
