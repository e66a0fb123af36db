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

// placeCodewords walks the canonical zig-zag module scan (spec §4.5) and
// assigns each non-function module the next bit from bits, in order; any
// leftover modules at the end of the scan (a regular symbol's 0-7 remainder
// bits) are left at their zero/light default. The same column-pair,
// direction-flipping walk places both regular and Micro symbols, but the
// column-6 realignment only applies to regular symbols: it exists solely to
// shift the walk's parity so the final column pair lands on (1, 0) instead
// of stopping at (2, 1) — column 6 itself is skipped for free by the
// isFunction check below, since it's the regular timing column. A Micro
// symbol's timing line runs along column 0 instead (matrix.go), so column 6
// there is an ordinary data column; applying the same realignment to it
// would shift real data out of its spec-mandated position.
func (m *matrix) placeCodewords(bits []bool) {
	i := 0 // Index into bits.

	for right := m.size - 1; right >= 1; right -= 2 {
		if right == 6 && !m.version.IsMicro() {
			right = 5
		}
		for vert := 0; vert < m.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = m.size - 1 - vert
				} else {
					y = vert
				}

				if !m.isFunction[y][x] && i < len(bits) {
					m.modules[y][x] = bToModule(bits[i])
					i++
				}
			}
		}
	}

	if i != len(bits) {
		panic("placed fewer bits than the codeword stream supplied")
	}
}
