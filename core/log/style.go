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

package log

import (
	"fmt"
	"strings"
	"time"
)

// Style selects the parts of a Message that are printed.
type Style struct {
	Name      string
	Timestamp bool          // time of day, when the message has one
	Tag       bool          // the context tag, in brackets
	Trace     bool          // the trace stack, innermost first
	Severity  SeverityStyle // how the severity is printed, if at all
	Values    bool          // the bound values, one per line
}

// SeverityStyle selects how the severity of a message is printed.
type SeverityStyle int

const (
	// NoSeverity omits the severity.
	NoSeverity = SeverityStyle(iota)
	// SeverityShort prints the one letter form, such as "W".
	SeverityShort
	// SeverityLong prints the full name, such as "Warning".
	SeverityLong
)

func (ss SeverityStyle) print(s Severity) string {
	if ss == SeverityShort {
		return s.Short()
	}
	return s.String()
}

func (s Style) String() string { return s.Name }

// Handler returns a Handler that writes messages formatted with s to w.
func (s Style) Handler(w Writer) Handler {
	return NewHandler(func(msg *Message) { w(s.Print(msg), msg.Severity) }, nil)
}

// Print formats msg with s.
func (s Style) Print(msg *Message) string {
	parts := make([]string, 0, 6)
	if s.Timestamp && !msg.Time.IsZero() {
		parts = append(parts, HHMMSSsss(msg.Time))
	}
	if s.Severity != NoSeverity {
		parts = append(parts, s.Severity.print(msg.Severity)+":")
	}
	if s.Trace && len(msg.Trace) > 0 {
		parts = append(parts, fmt.Sprint(msg.Trace))
	}
	if s.Tag && msg.Tag != "" {
		parts = append(parts, "["+msg.Tag+"]")
	}
	parts = append(parts, msg.Text)
	if s.Values && len(msg.Values) > 0 {
		sb := strings.Builder{}
		for _, v := range msg.Values {
			fmt.Fprintf(&sb, "\n  %v: %v", v.Name, v.Value)
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, " ")
}

// HHMMSSsss formats the time of day of t as "hh:mm:ss.sss".
func HHMMSSsss(t time.Time) string {
	return fmt.Sprintf("%.2d:%.2d:%.2d.%.3d", t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1e6)
}

// Predefined styles, from least to most detailed.
var (
	// Raw prints the text alone.
	Raw = Style{Name: "raw"}

	// Brief prefixes the text with the single character severity.
	Brief = Style{Name: "brief", Severity: SeverityShort}

	// Normal adds the time, tag and trace to Brief.
	Normal = Style{
		Name:      "normal",
		Timestamp: true,
		Tag:       true,
		Trace:     true,
		Severity:  SeverityShort,
	}

	// Detailed spells out the severity and lists the bound values.
	Detailed = Style{
		Name:      "detailed",
		Timestamp: true,
		Tag:       true,
		Trace:     true,
		Severity:  SeverityLong,
		Values:    true,
	}
)
