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

// Mode represents the mode (numeric, alphanumeric, byte, kanji, or ECI) of a
// segment.
type Mode int8

// Mode values for a segment.
const (
	Numeric Mode = iota
	Alphanumeric
	Byte
	Kanji
	ECI
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "Numeric"
	case Alphanumeric:
		return "Alphanumeric"
	case Byte:
		return "Byte"
	case Kanji:
		return "Kanji"
	case ECI:
		return "ECI"
	default:
		panic("unknown Mode")
	}
}

// indicatorBits is this mode's 4-bit indicator value on a regular-version
// symbol (spec §4.2).
func (m Mode) indicatorBits() int {
	switch m {
	case Numeric:
		return 0x1
	case Alphanumeric:
		return 0x2
	case Byte:
		return 0x4
	case Kanji:
		return 0x8
	case ECI:
		return 0x7
	default:
		panic("unknown Mode")
	}
}

// regularCharCountBits is the [3]int8 width table, indexed by version range
// (1-9, 10-26, 27-40), per spec §4.2's table.
var regularCharCountBits = map[Mode][3]int8{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
	ECI:          {0, 0, 0},
}

// numCharCountBits returns the width of the character-count indicator for a
// regular-version symbol.
func (m Mode) numCharCountBits(version int) int8 {
	widths := regularCharCountBits[m]
	var idx int
	switch {
	case version <= 9:
		idx = 0
	case version <= 26:
		idx = 1
	default:
		idx = 2
	}
	return widths[idx]
}

// microModeIndicatorWidth is the bit width of the mode indicator on a micro
// symbol: 0, 1, 2, 3 bits for M1..M4 (spec §4.2).
func microModeIndicatorWidth(micro MicroSize) int8 {
	return int8(micro.index())
}

// microModeIndicatorValues gives, per micro version, the indicator value of
// each supported mode within that version's indicator width. A mode absent
// from the inner map is not supported on that micro version.
var microModeIndicatorValues = map[MicroSize]map[Mode]int{
	M1: {Numeric: 0},
	M2: {Numeric: 0, Alphanumeric: 1},
	M3: {Numeric: 0, Alphanumeric: 1, Byte: 2, Kanji: 3},
	M4: {Numeric: 0, Alphanumeric: 1, Byte: 2, Kanji: 3},
}

// microIndicatorValue returns m's mode-indicator value on the given micro
// symbol, and whether m is supported there at all.
func (m Mode) microIndicatorValue(micro MicroSize) (int, bool) {
	v, ok := microModeIndicatorValues[micro][m]
	return v, ok
}

// microCharCountBits is the character-count indicator width table from
// spec §4.2, -1 where a mode is forbidden on that micro version.
var microCharCountBits = map[Mode][4]int{
	Numeric:      {3, 4, 5, 6},
	Alphanumeric: {-1, 3, 4, 5},
	Byte:         {-1, -1, 4, 5},
	Kanji:        {-1, -1, 3, 4},
}

// numMicroCharCountBits returns the character-count indicator width for mode
// m on micro symbol micro, or -1 if m is unsupported there.
func (m Mode) numMicroCharCountBits(micro MicroSize) int {
	widths, ok := microCharCountBits[m]
	if !ok {
		return -1
	}
	return widths[micro.index()]
}

// charCountBits dispatches to the regular or micro width table for version
// v, returning -1 if m is not supported on a micro v.
func (m Mode) charCountBits(v Version) int {
	if v.IsMicro() {
		return m.numMicroCharCountBits(v.Micro())
	}
	return int(m.numCharCountBits(v.Regular()))
}
