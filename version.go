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

// MicroSize names a Micro QR symbol family member, M1 through M4.
type MicroSize int8

// Micro symbol sizes.
const (
	M1 MicroSize = iota + 1
	M2
	M3
	M4
)

func (m MicroSize) String() string {
	switch m {
	case M1:
		return "M1"
	case M2:
		return "M2"
	case M3:
		return "M3"
	case M4:
		return "M4"
	default:
		panic("unknown MicroSize")
	}
}

// size returns the module width/height of this micro symbol: 11, 13, 15, 17
// for M1..M4.
func (m MicroSize) size() int {
	return 9 + 2*int(m)
}

// index returns a 0-based index (0..3) used to key the per-version tables.
func (m MicroSize) index() int {
	return int(m) - 1
}

// Version is the tagged (regular | micro) value described in spec §3.
// Regular versions are 1..40; micro versions are M1..M4. The zero Version is
// never valid on its own (IsMicro()==false, Regular()==0); build a Version
// with RegularVersion or MicroVersion.
type Version struct {
	micro   bool
	regular int       // valid when !micro, 1..40
	mVer    MicroSize // valid when micro
}

// MinVersion and MaxVersion bound the regular version range.
const (
	MinVersion = 1
	MaxVersion = 40
)

// RegularVersion constructs a regular (non-micro) Version. Panics if n is
// outside [1, 40]; no error value is returned for an out-of-range number.
func RegularVersion(n int) Version {
	if n < MinVersion || n > MaxVersion {
		panic("regular version out of range")
	}
	return Version{regular: n}
}

// MicroVersion constructs a Micro QR Version.
func MicroVersion(m MicroSize) Version {
	if m < M1 || m > M4 {
		panic("micro version out of range")
	}
	return Version{micro: true, mVer: m}
}

// IsMicro reports whether v names a Micro QR symbol.
func (v Version) IsMicro() bool {
	return v.micro
}

// IsZero reports whether v is the unset zero value.
func (v Version) IsZero() bool {
	return !v.micro && v.regular == 0
}

// Regular returns the regular version number. Panics if v is a micro
// version; callers must branch on IsMicro first.
func (v Version) Regular() int {
	if v.micro {
		panic("Regular called on a micro Version")
	}
	return v.regular
}

// Micro returns the MicroSize. Panics if v is a regular version.
func (v Version) Micro() MicroSize {
	if !v.micro {
		panic("Micro called on a regular Version")
	}
	return v.mVer
}

// Size returns the module width/height of the symbol: 4*V+17 for regular
// versions, 11/13/15/17 for M1..M4.
func (v Version) Size() int {
	if v.micro {
		return v.mVer.size()
	}
	return 4*v.regular + 17
}

func (v Version) String() string {
	if v.micro {
		return v.mVer.String()
	}
	return fmt.Sprintf("%d", v.regular)
}

// Equal reports whether v and o name the same version.
func (v Version) Equal(o Version) bool {
	return v.micro == o.micro && v.regular == o.regular && v.mVer == o.mVer
}

// versionOrder lists the auto-selection order when micro symbols are
// permitted: M1, M2, M3, M4, then 1..40 (spec §4.3).
func versionOrder(allowMicro bool) []Version {
	order := make([]Version, 0, 44)
	if allowMicro {
		for m := M1; m <= M4; m++ {
			order = append(order, MicroVersion(m))
		}
	}
	for n := MinVersion; n <= MaxVersion; n++ {
		order = append(order, RegularVersion(n))
	}
	return order
}
