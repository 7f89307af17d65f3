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
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/glsync/core/fault"
	"github.com/pkg/errors"
)

// ErrUnknownVersion is returned by ParseVersion for unrecognised strings.
const ErrUnknownVersion = fault.Const("Unknown GL_VERSION format")

// Version represents the GL version major and minor numbers, and whether its
// flavour is ES, as opposed to desktop GL.
type Version struct {
	Standard Standard
	Major    int
	Minor    int
}

// AtLeast returns true if the version is greater or equal to major.minor.
func (v Version) AtLeast(major, minor int) bool {
	if v.Major > major {
		return true
	}
	if v.Major < major {
		return false
	}
	return v.Minor >= minor
}

func (v Version) String() string {
	return v.Standard.String() + " " + strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

var versionRe = regexp.MustCompile(`^(OpenGL ES.*? )?(\d+)\.(\d+).*`)

// ParseVersion parses the GL version major, minor and flavour from the output
// of glGetString(GL_VERSION).
func ParseVersion(str string) (Version, error) {
	if match := versionRe.FindStringSubmatch(str); match != nil {
		std := StandardGL
		if len(match[1]) > 0 { // Desktop GL doesn't have a flavour prefix.
			std = StandardGLES
		}
		major, _ := strconv.Atoi(match[2])
		minor, _ := strconv.Atoi(match[3])
		return Version{Standard: std, Major: major, Minor: minor}, nil
	}
	return Version{}, errors.Wrapf(ErrUnknownVersion, "%q", str)
}

// Extensions is a set of native extension names.
type Extensions map[string]struct{}

// ParseExtensions splits the space separated output of
// glGetString(GL_EXTENSIONS).
func ParseExtensions(str string) Extensions {
	out := Extensions{}
	for _, e := range strings.Fields(str) {
		out[e] = struct{}{}
	}
	return out
}

// Names returns the sorted extension names.
func (e Extensions) Names() []string {
	out := make([]string, 0, len(e))
	for n := range e {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Info describes the native GL backend.
type Info struct {
	Version    Version
	Extensions Extensions
}

// NewInfo builds an Info from the native GL_VERSION and GL_EXTENSIONS strings.
func NewInfo(version, extensions string) (Info, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return Info{}, err
	}
	return Info{Version: v, Extensions: ParseExtensions(extensions)}, nil
}

// IsDesktop returns true for desktop GL backends.
func (i Info) IsDesktop() bool { return i.Version.Standard == StandardGL }

// IsAtLeastGL returns true if the backend is desktop GL major.minor or later.
func (i Info) IsAtLeastGL(major, minor int) bool {
	return i.Version.Standard == StandardGL && i.Version.AtLeast(major, minor)
}

// IsAtLeastGLES returns true if the backend is GLES major.minor or later.
func (i Info) IsAtLeastGLES(major, minor int) bool {
	return i.Version.Standard == StandardGLES && i.Version.AtLeast(major, minor)
}

// HasExtension returns true if the backend exposes the named extension.
func (i Info) HasExtension(name string) bool {
	_, ok := i.Extensions[name]
	return ok
}

// HasGLExtension returns true for a desktop backend exposing the extension.
func (i Info) HasGLExtension(name string) bool {
	return i.IsDesktop() && i.HasExtension(name)
}

// HasGLESExtension returns true for an ES backend exposing the extension.
func (i Info) HasGLESExtension(name string) bool {
	return !i.IsDesktop() && i.HasExtension(name)
}
