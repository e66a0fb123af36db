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

import "math"

// Penalty weights for the regular-symbol scoring rule (spec §4.8).
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// regularMaskInvert evaluates mask pattern 0-7's predicate at (x, y) per
// ISO/IEC 18004's own numbering. Re-derived directly from the table rather
// than copied from the teacher, which collapsed patterns 5 and 7 onto the
// same predicate — a transcription bug that would silently halve the
// candidate mask set (spec §9's redesign note).
func regularMaskInvert(mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("illegal regular mask value")
	}
}

// microMaskInvert evaluates Micro QR mask pattern 0-3's predicate (spec
// §4.9): masks are independently numbered for Micro symbols, corresponding
// to regular patterns 1, 4, 6, and 7.
func microMaskInvert(mask, x, y int) bool {
	switch mask {
	case 0:
		return y%2 == 0
	case 1:
		return (y/2+x/3)%2 == 0
	case 2:
		return (x*y%2+x*y%3)%2 == 0
	case 3:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("illegal micro mask value")
	}
}

// applyMask XORs every non-function module with the given mask's predicate.
// Applying the same mask twice undoes it.
func (m *matrix) applyMask(mask int) {
	invert := regularMaskInvert
	if m.version.IsMicro() {
		invert = microMaskInvert
	}
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if !m.isFunction[y][x] && invert(mask, x, y) {
				m.modules[y][x] ^= 1
			}
		}
	}
}

// finderPenaltyAddHistory pushes currentRunLength to the front of runHistory
// and drops the oldest value, widening the first run by a white border.
func (m *matrix) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += m.size
	}
	copy(runHistory[1:], runHistory[0:])
	runHistory[0] = currentRunLength
}

func (m *matrix) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > m.size*3 {
		panic("bad run history")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return bToI(core && runHistory[0] >= n*4 && runHistory[6] >= n) + bToI(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

func (m *matrix) finderPenaltyTerminateAndCount(runColor module, runLength int, runHistory *[7]int) int {
	if runColor == 1 {
		m.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += m.size
	m.finderPenaltyAddHistory(runLength, runHistory)
	return m.finderPenaltyCountPatterns(runHistory)
}

// penaltyScore implements the regular-symbol N1-N4 scoring rule (spec §4.8).
func (m *matrix) penaltyScore() int {
	result := 0

	for y := 0; y < m.size; y++ {
		runColor := module(0)
		runX := 0
		var runHistory [7]int
		for x := 0; x < m.size; x++ {
			if m.modules[y][x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				m.finderPenaltyAddHistory(runX, &runHistory)
				if runColor == 0 {
					result += m.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = m.modules[y][x]
				runX = 1
			}
		}
		result += m.finderPenaltyTerminateAndCount(runColor, runX, &runHistory) * penaltyN3
	}

	for x := 0; x < m.size; x++ {
		runColor := module(0)
		runY := 0
		var runHistory [7]int
		for y := 0; y < m.size; y++ {
			if m.modules[y][x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				m.finderPenaltyAddHistory(runY, &runHistory)
				if runColor == 0 {
					result += m.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = m.modules[y][x]
				runY = 1
			}
		}
		result += m.finderPenaltyTerminateAndCount(runColor, runY, &runHistory) * penaltyN3
	}

	for y := 0; y < m.size-1; y++ {
		for x := 0; x < m.size-1; x++ {
			color := m.modules[y][x]
			if color == m.modules[y][x+1] && color == m.modules[y+1][x] && color == m.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	black := 0
	for _, row := range m.modules {
		for _, color := range row {
			if color == 1 {
				black++
			}
		}
	}
	total := m.size * m.size
	k := (abs(black*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// microPenaltyScore implements Micro QR's distinct scoring rule (spec
// §4.9): SUM1 is 16 times the smaller of the total dark-module counts along
// the right column and bottom row, SUM2 is the larger of the two — the rule
// resolves to 16*min+max regardless of which of S1/S2 it names larger in
// the spec's own branch-on-S1-vs-S2 phrasing. The timing row is excluded
// from the right-column count and the timing column is excluded from the
// bottom-row count, since those two cells are function modules, not part of
// either scored edge. Lower is better, same as the regular rule, despite
// the opposite-looking mechanics.
func (m *matrix) microPenaltyScore() int {
	right := m.size - 1
	bottom := m.size - 1

	darkRight, darkBottom := 0, 0
	for y := 1; y < m.size; y++ { // y == 0 is the timing row.
		if m.modules[y][right] == 1 {
			darkRight++
		}
	}
	for x := 1; x < m.size; x++ { // x == 0 is the timing column.
		if m.modules[bottom][x] == 1 {
			darkBottom++
		}
	}

	return 16*min(darkRight, darkBottom) + max(darkRight, darkBottom)
}

// handleConstructorMasking picks mask (or, for mask == -1, the best mask by
// penalty score) and leaves it applied with the matching format info drawn.
func (m *matrix) handleConstructorMasking(level ErrorLevel, mask int) int {
	numMasks := 8
	if m.version.IsMicro() {
		numMasks = 4
	}

	if mask == -1 {
		minPenalty := math.MaxInt32
		for i := 0; i < numMasks; i++ {
			m.applyMask(i)
			m.drawFormatBits(level, i)
			penalty := m.penaltyScore()
			if m.version.IsMicro() {
				penalty = m.microPenaltyScore()
			}
			if penalty < minPenalty {
				mask = i
				minPenalty = penalty
			}
			m.applyMask(i) // Undo — mask application is its own inverse.
		}
	}

	if mask < 0 || mask >= numMasks {
		panic("illegal mask value")
	}

	m.applyMask(mask)
	m.drawFormatBits(level, mask)
	return mask
}
