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

package statemanager

import (
	"reflect"
	"strings"

	"github.com/google/glsync/core/fault"
	"github.com/pkg/errors"
)

// ErrUnknownFeature is returned by Features.Override for a name that does not
// match any feature.
const ErrUnknownFeature = fault.Const("Unknown feature")

// Features is the set of driver workarounds applied by the Manager.
// Each field is tagged with the name used to override it.
type Features struct {
	// FlushOnFramebufferChange issues a flush after every framebuffer
	// binding change.
	FlushOnFramebufferChange bool `feature:"flush_on_framebuffer_change"`
	// ClearToZeroOrOneBroken pushes the alpha of clear colors whose
	// components are all 0 or 1 out of range, so the driver does not take a
	// broken fast path.
	ClearToZeroOrOneBroken bool `feature:"clear_to_zero_or_one_broken"`
	// EmulatePrimitiveRestartFixedIndex uses GL_PRIMITIVE_RESTART with an
	// explicit index derived from the index type of each draw.
	EmulatePrimitiveRestartFixedIndex bool `feature:"emulate_primitive_restart_fixed_index"`
	// AlwaysCallUseProgramAfterLink rebinds a program after each link.
	AlwaysCallUseProgramAfterLink bool `feature:"always_call_use_program_after_link"`
}

func (f *Features) fields() map[string]reflect.Value {
	out := map[string]reflect.Value{}
	v := reflect.ValueOf(f).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if name := t.Field(i).Tag.Get("feature"); name != "" {
			out[name] = v.Field(i)
		}
	}
	return out
}

// Override enables then disables the named features. Unknown names are
// reported together, and leave f unchanged.
func (f *Features) Override(enabled, disabled []string) error {
	out := *f
	fields := out.fields()
	var errs fault.List
	set := func(names []string, value bool) {
		for _, name := range names {
			field, ok := fields[name]
			if !ok {
				errs.Collect(errors.Wrapf(ErrUnknownFeature, "%q", name))
				continue
			}
			field.SetBool(value)
		}
	}
	set(enabled, true)
	set(disabled, false)
	if err := errs.Err(); err != nil {
		return err
	}
	*f = out
	return nil
}

// Names returns the names of the enabled features, in declaration order.
func (f Features) Names() []string {
	out := []string{}
	v := reflect.ValueOf(f)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if v.Field(i).Bool() {
			out = append(out, t.Field(i).Tag.Get("feature"))
		}
	}
	return out
}

func (f Features) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
