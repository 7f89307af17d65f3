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

package fault_test

import (
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/core/fault"
	"github.com/pkg/errors"
)

const (
	errTooSmall = fault.Const("too small")
	errUnknown  = fault.Const("unknown")
)

func TestConst(t *testing.T) {
	assert := assert.To(t)
	err := errors.Wrapf(errTooSmall, "MaxViews is %d", 0)
	assert.For("message").ThatError(err).HasMessage("MaxViews is 0: too small")
	assert.For("cause").ThatError(err).HasCause(errTooSmall)
}

func TestList(t *testing.T) {
	assert := assert.To(t)
	var l fault.List
	l.Collect(nil)
	assert.For("empty").ThatError(l.Err()).Succeeded()

	l.Collect(errors.Wrap(errTooSmall, "MaxImageUnits"))
	assert.For("single").ThatError(l.Err()).HasCause(errTooSmall)

	l.Collect(errUnknown)
	assert.For("length").ThatSlice(l).IsLength(2)
	assert.For("multiple").ThatError(l.Err()).HasMessage("MaxImageUnits: too small; unknown")
}
