/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
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

// ErrorLevel represents the error correction level of the QR code.
type ErrorLevel int8

// ErrorLevel values.
const (
	Low      ErrorLevel = iota // Low error correction level (recovers 7% of data).
	Medium                     // Medium error correction level (recovers 15% of data).
	Quartile                   // Quartile error correction level (recovers 25% of data).
	High                       // High error correction level (recovers 30% of data).
)

func (e ErrorLevel) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		panic("unknown ErrorLevel")
	}
}

// formatBits returns the 2-bit code for this level used in format
// information (spec §4.9). These are ISO/IEC 18004's own values, not the
// enum's declaration order.
func (e ErrorLevel) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unknown ErrorLevel")
	}
}

// next returns the next-higher error level. Panics on High; callers only
// call this after checking e < High.
func (e ErrorLevel) next() ErrorLevel {
	if e >= High {
		panic("no error level above High")
	}
	return e + 1
}

// allowedForVersion reports whether e is admissible for v (spec §3): M1
// admits only Low (its fixed EC layout), M2/M3 admit {L, M}, M4 admits
// {L, M, Q}, and regular versions admit all four.
func (e ErrorLevel) allowedForVersion(v Version) bool {
	if !v.IsMicro() {
		return true
	}
	switch v.Micro() {
	case M1:
		return e == Low
	case M2, M3:
		return e == Low || e == Medium
	case M4:
		return e == Low || e == Medium || e == Quartile
	default:
		panic("unknown MicroSize")
	}
}
