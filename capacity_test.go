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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumDataCodewords(t *testing.T) {
	cases := [][3]int{
		{3, 1, 44},
		{3, 2, 34},
		{3, 3, 26},
		{6, 0, 136},
		{7, 0, 156},
		{9, 0, 232},
		{9, 1, 182},
		{12, 3, 158},
		{15, 0, 523},
		{16, 2, 325},
		{40, 0, 2956},
		{40, 3, 1276},
	}
	for _, c := range cases {
		version, level, want := c[0], ErrorLevel(c[1]), c[2]
		assert.Equal(t, want, numDataCodewords[level][version], "version=%d level=%d", version, level)
	}
}

func TestNumRawDataModules(t *testing.T) {
	cases := map[int]int{
		1: 208, 2: 359, 3: 567, 7: 1568, 40: 29648,
	}
	for version, want := range cases {
		assert.Equal(t, want, numRawDataModules[version], "version=%d", version)
	}
}

func TestGetAlignmentPatternPositions(t *testing.T) {
	assert.Equal(t, []byte{}, getAlignmentPatternPositions(1))
	assert.Equal(t, []byte{6, 18}, getAlignmentPatternPositions(2))
	assert.Equal(t, []byte{6, 34, 60, 86, 112, 138}, getAlignmentPatternPositions(32))
}

func TestDataBitsForMicroNibbleLast(t *testing.T) {
	// M1 and M3's final data codeword is a 4-bit nibble (spec §4.9).
	assert.Equal(t, 20, dataBitsFor(MicroVersion(M1), Low)) // (3-1)*8 + 4
	assert.Equal(t, 40, dataBitsFor(MicroVersion(M2), Low)) // 5*8, no nibble
	assert.True(t, isNibbleLast(MicroVersion(M1), Low))
	assert.False(t, isNibbleLast(MicroVersion(M2), Low))
}

func TestSelectVersionPicksSmallestThatFits(t *testing.T) {
	totalBitsFor := func(v Version) int {
		if v.IsMicro() {
			return -1
		}
		if v.Regular() < 5 {
			return -1
		}
		return 100
	}
	v, err := selectVersion(totalBitsFor, Low, true)
	assert.NoError(t, err)
	assert.False(t, v.IsMicro())
	assert.Equal(t, 5, v.Regular())
}

func TestSelectVersionOverflowHasNoProposal(t *testing.T) {
	totalBitsFor := func(v Version) int { return 1 << 20 }
	_, err := selectVersion(totalBitsFor, Low, true)
	assert.Error(t, err)
	qrErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, DataOverflow, qrErr.Kind)
	assert.False(t, qrErr.HasMin)
}

func TestFindMinFittingVersionReturnsSmallestCandidate(t *testing.T) {
	totalBitsFor := func(v Version) int {
		if v.IsMicro() || v.Regular() < 5 {
			return -1
		}
		return 100
	}
	v, ok := findMinFittingVersion(totalBitsFor, Low, true)
	assert.True(t, ok)
	assert.False(t, v.IsMicro())
	assert.Equal(t, 5, v.Regular())
}

func TestFindMinFittingVersionNoCandidate(t *testing.T) {
	totalBitsFor := func(v Version) int { return 1 << 20 }
	_, ok := findMinFittingVersion(totalBitsFor, Low, true)
	assert.False(t, ok)
}
