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

// versionInfoBits computes the 18-bit version info block (6 data bits,
// BCH(18,6), spec §4.6) for a regular symbol version v, 7 <= v <= 40.
func versionInfoBits(v int) int {
	rem := v
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ rem>>11*0x1F25
	}
	bits := v<<12 | rem
	if bits>>18 != 0 {
		panic("incorrect version info calculation")
	}
	return bits
}

// formatInfoBits computes the 15-bit format info block for a regular
// symbol (spec §4.9): 2 EC-level bits + 3 mask bits, BCH(15,5), XORed with
// the fixed mask pattern 0x5412.
func formatInfoBits(level ErrorLevel, mask int) int {
	data := level.formatBits()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	if bits>>15 != 0 {
		panic("incorrect format info calculation")
	}
	return bits
}

// microFormatInfoBits computes the 15-bit format info block for a Micro QR
// symbol: 2 EC-level bits + 3 mask bits (Micro masks are independently
// numbered 0-3, spec §4.9), same BCH(15,5) generator as regular symbols but
// XORed against 0x4445 — ISO/IEC 18004's distinct Micro mask constant.
func microFormatInfoBits(level ErrorLevel, mask int) int {
	data := level.formatBits()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ rem>>9*0x537
	}
	bits := data<<10 | rem ^ 0x4445
	if bits>>15 != 0 {
		panic("incorrect micro format info calculation")
	}
	return bits
}

// drawFormatBits draws the symbol's format info (spec §4.9): for a regular
// symbol, two redundant copies — one around the top-left finder, the other
// split between the top-right and bottom-left finders — or a single
// L-shaped copy for a Micro symbol (there is no room for a second).
func (m *matrix) drawFormatBits(level ErrorLevel, mask int) {
	if m.version.IsMicro() {
		m.drawMicroFormatBits(level, mask)
		return
	}

	bits := formatInfoBits(level, mask)

	for i := 0; i <= 5; i++ {
		m.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	m.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	m.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	m.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		m.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	for i := 0; i < 8; i++ {
		m.setFunctionModule(m.size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		m.setFunctionModule(8, m.size-15+i, getBitAsBool(bits, i))
	}
	m.setFunctionModule(8, m.size-8, true) // Always dark, regular symbols only.
}

// drawMicroFormatBits draws a Micro symbol's single copy of format info
// along the two edges of the finder's separator that aren't the timing
// pattern: column 8 for rows 1-8 (bits 0-7), then row 8 for columns 1-7
// (bits 8-14). A Micro symbol's timing pattern runs along column 0 and
// row 0 (spec §4.6 step 3), so this deliberately never touches either —
// unlike a regular symbol, whose timing pattern runs along column/row 6 and
// whose format layout instead routes around that (spec §4.9).
func (m *matrix) drawMicroFormatBits(level ErrorLevel, mask int) {
	bits := microFormatInfoBits(level, mask)

	for i := 0; i < 8; i++ {
		m.setFunctionModule(8, i+1, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		m.setFunctionModule(i-7, 8, getBitAsBool(bits, i))
	}
}
