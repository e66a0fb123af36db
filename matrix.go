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

// module is a single QR code cell: 0 (light) or 1 (dark).
type module int8

// matrix is the mutable grid a symbol is built on: modules plus a parallel
// isFunction mask recording which cells are metadata (finder, timing,
// alignment, format/version info) rather than data, ported from the
// teacher's QRCode.Modules/IsFunction pair but split out of the top-level
// type so matrix construction can be shared between regular and Micro QR
// symbols (spec §4.5).
type matrix struct {
	version    Version
	size       int
	modules    [][]module
	isFunction [][]bool
}

func newMatrix(v Version) *matrix {
	size := v.Size()
	m := &matrix{
		version:    v,
		size:       size,
		modules:    make([][]module, size),
		isFunction: make([][]bool, size),
	}
	for i := 0; i < size; i++ {
		m.modules[i] = make([]module, size)
		m.isFunction[i] = make([]bool, size)
	}
	return m
}

func (m *matrix) setFunctionModule(x, y int, isBlack bool) {
	m.modules[y][x] = bToModule(isBlack)
	m.isFunction[y][x] = true
}

// drawFinderPattern draws a 9*9 finder pattern (7*7 core plus its white
// separator ring), with the center module at (x, y); cells that fall outside
// the matrix are silently skipped, as happens for the single Micro finder
// near the top-left corner.
func (m *matrix) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := max(abs(dx), abs(dy))
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < m.size && 0 <= yy && yy < m.size {
				m.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5*5 alignment pattern, with the center module
// at (x, y). Regular symbols only — Micro QR has none (spec §4.5).
func (m *matrix) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawFunctionPatterns draws every non-data module: finder pattern(s),
// timing pattern(s), alignment patterns, and reserves/draws the format and
// version info areas with placeholder bits (overwritten for real once a
// mask is chosen, same two-pass approach as the teacher's
// QRCode.drawFunctionPatterns).
func (m *matrix) drawFunctionPatterns() {
	if m.version.IsMicro() {
		m.drawMicroFunctionPatterns()
		return
	}

	for i := 0; i < m.size; i++ {
		m.setFunctionModule(6, i, i%2 == 0)
		m.setFunctionModule(i, 6, i%2 == 0)
	}

	m.drawFinderPattern(3, 3)
	m.drawFinderPattern(m.size-4, 3)
	m.drawFinderPattern(3, m.size-4)

	alignPatPos := alignmentPatternPositions[m.version.Regular()]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if !(i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0) {
				m.drawAlignmentPattern(int(alignPatPos[i]), int(alignPatPos[j]))
			}
		}
	}

	m.drawFormatBits(Low, 0)
	m.drawVersionInfo()
}

// drawMicroFunctionPatterns is the Micro QR analogue of
// drawFunctionPatterns (spec §4.9): a single finder pattern at the top-left
// corner, and a single L-shaped timing pattern running from just past the
// finder's separator to the symbol's far edge in each direction — there is
// no second finder to bound the line, and no alignment patterns at all.
// Unlike a regular symbol (whose timing pattern runs along column/row 6, the
// pair bounded by its two far finders), a Micro symbol has only the one
// top-left finder, so its timing pattern instead runs along the left column
// and top row, column/row 0 (spec §4.6 step 3).
func (m *matrix) drawMicroFunctionPatterns() {
	for i := 8; i < m.size; i++ {
		m.setFunctionModule(0, i, i%2 == 0)
		m.setFunctionModule(i, 0, i%2 == 0)
	}

	m.drawFinderPattern(3, 3)

	m.drawFormatBits(Low, 0)
}

// drawVersionInfo draws two copies of the version bits (with their own BCH
// error correction code), iff 7 <= version <= 40 (spec §4.6). Micro QR
// symbols never carry a version info block.
func (m *matrix) drawVersionInfo() {
	v := m.version.Regular()
	if v < 7 {
		return
	}

	bits := versionInfoBits(v)
	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := m.size - 11 + i%3
		b := i / 3
		m.setFunctionModule(a, b, bit)
		m.setFunctionModule(b, a, bit)
	}
}
