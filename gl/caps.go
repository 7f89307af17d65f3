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

import (
	"github.com/google/glsync/core/fault"
	"github.com/pkg/errors"
)

// ErrInvalidCaps is returned by Caps.Validate.
const ErrInvalidCaps = fault.Const("Invalid caps")

// Caps holds the sizes of the binding point arrays of the native context.
type Caps struct {
	MaxCombinedTextureImageUnits        int
	MaxImageUnits                       int
	MaxUniformBufferBindings            int
	MaxShaderStorageBufferBindings      int
	MaxAtomicCounterBufferBindings      int
	MaxTransformFeedbackSeparateAttribs int
	MaxVertexAttributes                 int
	MaxSampleMaskWords                  int
	MaxViews                            int
}

// DefaultCaps returns the minimum limits of an ES 3.1 context.
func DefaultCaps() Caps {
	return Caps{
		MaxCombinedTextureImageUnits:        48,
		MaxImageUnits:                       4,
		MaxUniformBufferBindings:            36,
		MaxShaderStorageBufferBindings:      4,
		MaxAtomicCounterBufferBindings:      1,
		MaxTransformFeedbackSeparateAttribs: 4,
		MaxVertexAttributes:                 16,
		MaxSampleMaskWords:                  1,
		MaxViews:                            1,
	}
}

// Validate returns an error listing every limit that is out of range.
func (c Caps) Validate() error {
	var errs fault.List
	check := func(name string, v, min int) {
		if v < min {
			errs.Collect(errors.Wrapf(ErrInvalidCaps, "%s is %d, must be at least %d", name, v, min))
		}
	}
	check("MaxCombinedTextureImageUnits", c.MaxCombinedTextureImageUnits, 1)
	check("MaxImageUnits", c.MaxImageUnits, 0)
	check("MaxUniformBufferBindings", c.MaxUniformBufferBindings, 0)
	check("MaxShaderStorageBufferBindings", c.MaxShaderStorageBufferBindings, 0)
	check("MaxAtomicCounterBufferBindings", c.MaxAtomicCounterBufferBindings, 0)
	check("MaxTransformFeedbackSeparateAttribs", c.MaxTransformFeedbackSeparateAttribs, 0)
	check("MaxVertexAttributes", c.MaxVertexAttributes, 1)
	check("MaxSampleMaskWords", c.MaxSampleMaskWords, 0)
	check("MaxViews", c.MaxViews, 1)
	return errs.Err()
}

// IndexedBufferBindings returns the number of indexed binding points of b, or
// 0 for non-indexed targets.
func (c Caps) IndexedBufferBindings(b BufferBinding) int {
	switch b {
	case BufferBindingUniform:
		return c.MaxUniformBufferBindings
	case BufferBindingShaderStorage:
		return c.MaxShaderStorageBufferBindings
	case BufferBindingAtomicCounter:
		return c.MaxAtomicCounterBufferBindings
	case BufferBindingTransformFeedback:
		return c.MaxTransformFeedbackSeparateAttribs
	default:
		return 0
	}
}
