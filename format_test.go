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

func TestVersionInfoBitsKnownValue(t *testing.T) {
	// ISO/IEC 18004 Table D.1: version 7 version-info block is 0x07C94.
	assert.Equal(t, 0x07C94, versionInfoBits(7))
}

func TestFormatInfoBitsKnownValue(t *testing.T) {
	// Hand-traced BCH(15,5) over data=01000 (level L=1, mask=0) XORed with
	// the fixed mask 0x5412.
	assert.Equal(t, 30660, formatInfoBits(Low, 0))
}

func TestMicroFormatInfoBitsKnownValue(t *testing.T) {
	assert.Equal(t, 26515, microFormatInfoBits(Low, 0))
}

func TestFormatBitsFitWithinWidth(t *testing.T) {
	for _, v := range []int{7, 1, 40} {
		assert.True(t, versionInfoBits(v) < 1<<18)
	}
	for mask := 0; mask < 8; mask++ {
		assert.True(t, formatInfoBits(High, mask) < 1<<15)
	}
	for mask := 0; mask < 4; mask++ {
		assert.True(t, microFormatInfoBits(Quartile, mask) < 1<<15)
	}
}

// TestMicroFormatBitsAvoidTimingCells is the regression guard for the
// collision this layout was built to avoid: the single Micro format copy
// must never touch either timing pattern cell.
func TestMicroFormatBitsAvoidTimingCells(t *testing.T) {
	v := MicroVersion(M4)
	m := newMatrix(v)
	m.drawMicroFunctionPatterns()

	// The timing pattern cells nearest the finder are at (0,8) and (8,0) — a
	// Micro symbol's timing pattern runs along column 0 and row 0, not
	// column/row 6 as in a regular symbol. drawMicroFunctionPatterns already
	// marked them as function modules with their own parity value, so
	// drawFormatBits (called a second time here) must not overwrite them
	// with format bits.
	beforeVert := m.modules[8][0]
	beforeHoriz := m.modules[0][8]

	m.drawFormatBits(Low, 2)

	assert.Equal(t, beforeVert, m.modules[8][0])
	assert.Equal(t, beforeHoriz, m.modules[0][8])
}

func TestDrawFormatBitsDispatchesToMicro(t *testing.T) {
	v := MicroVersion(M1)
	m := newMatrix(v)
	m.drawFunctionPatterns()

	// Should not panic and should mark (8,0)-(8,8) region as function cells.
	assert.True(t, m.isFunction[0][8])
	assert.True(t, m.isFunction[8][8])
}
