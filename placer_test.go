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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPlaceCodewordsRegularReachesColumnZero guards the realignment's parity
// shift for regular symbols: without the column-6 parity flip, the
// zig-zag walk's column pairs would never include (1, 0), stranding column
// 0's genuine data cells (e.g. V1 rows 8-12) unplaced.
func TestPlaceCodewordsRegularReachesColumnZero(t *testing.T) {
	v := RegularVersion(1)
	m := newMatrix(v)
	m.drawFunctionPatterns()

	total := 0
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if !m.isFunction[y][x] {
				total++
			}
		}
	}

	bits := make([]bool, total)
	for i := range bits {
		bits[i] = true
	}
	m.placeCodewords(bits)

	foundColumnZero := false
	for y := 0; y < m.size; y++ {
		if !m.isFunction[y][0] {
			foundColumnZero = true
			assert.Equal(t, module(1), m.modules[y][0], "row %d, column 0", y)
		}
	}
	assert.True(t, foundColumnZero, "expected at least one data cell in column 0")
}

// TestPlaceCodewordsMicroFillsColumnSix is the regression guard for the
// cascading bug: applying the regular symbol's column-6 realignment to a
// Micro symbol shifted real data out of column 6, which is an ordinary data
// column there (the Micro timing line runs along column 0 instead).
func TestPlaceCodewordsMicroFillsColumnSix(t *testing.T) {
	v := MicroVersion(M4)
	m := newMatrix(v)
	m.drawMicroFunctionPatterns()

	total := 0
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if !m.isFunction[y][x] {
				total++
			}
		}
	}

	bits := make([]bool, total)
	for i := range bits {
		bits[i] = true
	}
	m.placeCodewords(bits)

	foundColumnSix := false
	for y := 0; y < m.size; y++ {
		if !m.isFunction[y][6] {
			foundColumnSix = true
			assert.Equal(t, module(1), m.modules[y][6], "row %d, column 6", y)
		}
	}
	assert.True(t, foundColumnSix, "expected at least one data cell in column 6")
}
