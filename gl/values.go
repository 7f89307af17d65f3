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

package gl

import "fmt"

// Rectangle is an integer window-space rectangle.
type Rectangle struct {
	X, Y          int32
	Width, Height int32
}

func (r Rectangle) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.Width, r.Height)
}

// Offset is a per-view viewport offset.
type Offset struct {
	X, Y int32
}

// ColorF is a floating point RGBA color.
type ColorF struct {
	Red, Green, Blue, Alpha float32
}

// VertexAttribCurrentValue is the constant value used by a vertex attribute
// that is not sourced from an array.
type VertexAttribCurrentValue struct {
	Type  VertexAttribType
	Float [4]float32
	Int   [4]int32
	Uint  [4]uint32
}

// DefaultVertexAttribCurrentValue is the initial current value of every
// attribute: (0, 0, 0, 1) as floats.
var DefaultVertexAttribCurrentValue = VertexAttribCurrentValue{
	Type:  VertexAttribTypeFloat,
	Float: [4]float32{0, 0, 0, 1},
}

// ApplyOffsets returns one copy of rect per offset, translated by that
// offset.
func ApplyOffsets(rect Rectangle, offsets []Offset) []Rectangle {
	out := make([]Rectangle, len(offsets))
	for i, o := range offsets {
		out[i] = Rectangle{
			X:      rect.X + o.X,
			Y:      rect.Y + o.Y,
			Width:  rect.Width,
			Height: rect.Height,
		}
	}
	return out
}

// PrimitiveRestartIndex returns the fixed restart index for the index type.
func PrimitiveRestartIndex(indexType GLenum) uint32 {
	switch indexType {
	case GLenum_GL_UNSIGNED_BYTE:
		return 0xFF
	case GLenum_GL_UNSIGNED_SHORT:
		return 0xFFFF
	case GLenum_GL_UNSIGNED_INT:
		return 0xFFFFFFFF
	default:
		panic(fmt.Errorf("Invalid index type %v", indexType))
	}
}
