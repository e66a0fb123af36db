/*
 * Copyright © 2026, the qrcode-micro authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import "fmt"

// ErrorKind enumerates the ways an encode call can fail. All failures are
// fatal to the call; there is no partial-output recovery.
type ErrorKind int8

const (
	// DataOverflow means the assembled bit stream does not fit in any
	// admissible version/level combination.
	DataOverflow ErrorKind = iota
	// InvalidVersion means a forced version is incompatible with other
	// options (a regular version forced alongside micro=true, or a micro one
	// alongside micro=false). Out-of-range version numbers are not reported
	// this way: RegularVersion and MicroVersion panic on them.
	InvalidVersion
	// InvalidMode means a forced mode rejects the given content, or an
	// option combination (ECI on a micro symbol, odd-length Shift-JIS) is
	// disallowed.
	InvalidMode
	// InvalidErrorLevel means the requested level is not admissible for the
	// chosen version (e.g. level H on any micro version).
	InvalidErrorLevel
	// InvalidMask means a forced mask value is out of range for the symbol
	// family (0..7 regular, 0..3 micro).
	InvalidMask
)

func (k ErrorKind) String() string {
	switch k {
	case DataOverflow:
		return "DataOverflow"
	case InvalidVersion:
		return "InvalidVersion"
	case InvalidMode:
		return "InvalidMode"
	case InvalidErrorLevel:
		return "InvalidErrorLevel"
	case InvalidMask:
		return "InvalidMask"
	default:
		panic("unknown ErrorKind")
	}
}

// Error is the single error type returned from this package's exported
// entry points. MinVersion is only meaningful for DataOverflow, and is the
// smallest version (or IsMicro/Version.String of it) that would have fit the
// assembled bit stream; it is the zero Version when no proposal exists.
type Error struct {
	Kind       ErrorKind
	Message    string
	MinVersion Version
	HasMin     bool
}

func (e *Error) Error() string {
	if e.HasMin {
		return fmt.Sprintf("%s: %s (smallest version that would fit: %s)", e.Kind, e.Message, e.MinVersion)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func newOverflowError(format string, minVersion Version, hasMin bool, args ...interface{}) *Error {
	return &Error{
		Kind:       DataOverflow,
		Message:    fmt.Sprintf(format, args...),
		MinVersion: minVersion,
		HasMin:     hasMin,
	}
}
