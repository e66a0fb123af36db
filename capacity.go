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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted, reproducing ISO/IEC 18004's Annex capacity tables exactly
 * (spec §4.3).
 */

package qrcodegen

var (
	alignmentPatternPositions [41][]byte

	// eccCodeWordsPerBlock[level][version] is the number of EC codewords in
	// each block for a regular symbol.
	eccCodeWordsPerBlock = [4][41]int{
		// Version: (index 0 is padding, set to an illegal value)
		//       0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	numDataCodewords [4][41]int

	// numErrorCorrectionBlocks[level][version] is the total number of blocks
	// a regular symbol's data+EC codewords are split across.
	numErrorCorrectionBlocks = [4][41]int{
		//       0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	numRawDataModules [41]int
)

func init() {
	// numRawDataModules[v] is the number of data bits a regular symbol of
	// version v has once every function module is excluded, including
	// remainder bits (so it may not be a multiple of 8). Range [208, 29648].
	for v := 1; v <= 40; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55 // Subtract alignment patterns.
			if v >= 7 {
				result -= 36 // Subtract version information.
			}
		}
		if result < 208 || result > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := Low; e <= High; e++ {
		for v := 1; v <= 40; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodeWordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	for v := 1; v <= 40; v++ {
		alignmentPatternPositions[v] = getAlignmentPatternPositions(v)
	}
}

// getAlignmentPatternPositions returns an ascending list of alignment
// pattern center coordinates (shared by both axes) for a regular version.
func getAlignmentPatternPositions(version int) []byte {
	if version == 1 {
		return []byte{}
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // Special snowflake.
		step = 26
	} else { // step = ceil[(size - 13) / (numAlign*2 - 2)] * 2.
		step = (version*4+numAlign*2+1)/(numAlign*2-2) * 2
	}
	result := make([]byte, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, version*4+17-7; i >= 1; i-- {
		result[i] = byte(pos)
		pos -= step
	}

	return result
}

// microCapacityEntry is one (micro version, level) row of the Micro QR
// capacity table (spec §4.3/§4.9): only ever one block, so ecPerBlock is the
// symbol's total EC codeword count. nibbleLast marks M1/M3, whose final data
// codeword is a 4-bit nibble rather than a full byte.
type microCapacityEntry struct {
	dataCodewords int
	ecPerBlock    int
	nibbleLast    bool
}

var microCapacityTable = map[MicroSize]map[ErrorLevel]microCapacityEntry{
	M1: {
		Low: {dataCodewords: 3, ecPerBlock: 2, nibbleLast: true},
	},
	M2: {
		Low:    {dataCodewords: 5, ecPerBlock: 5, nibbleLast: false},
		Medium: {dataCodewords: 4, ecPerBlock: 6, nibbleLast: false},
	},
	M3: {
		Low:    {dataCodewords: 11, ecPerBlock: 6, nibbleLast: true},
		Medium: {dataCodewords: 9, ecPerBlock: 8, nibbleLast: true},
	},
	M4: {
		Low:      {dataCodewords: 16, ecPerBlock: 8, nibbleLast: false},
		Medium:   {dataCodewords: 14, ecPerBlock: 10, nibbleLast: false},
		Quartile: {dataCodewords: 10, ecPerBlock: 14, nibbleLast: false},
	},
}

func microEntry(size MicroSize, level ErrorLevel) microCapacityEntry {
	row, ok := microCapacityTable[size]
	if !ok {
		panic("unknown MicroSize")
	}
	entry, ok := row[level]
	if !ok {
		panic("error level not admissible for this micro version")
	}
	return entry
}

// dataCodewordsFor returns the number of data codewords (not counting EC)
// available to version v at error level level, and dataBitsFor the number of
// data bits that implies (accounting for M1/M3's trailing nibble).
func dataCodewordsFor(v Version, level ErrorLevel) int {
	if v.IsMicro() {
		return microEntry(v.Micro(), level).dataCodewords
	}
	return numDataCodewords[level][v.Regular()]
}

func dataBitsFor(v Version, level ErrorLevel) int {
	if v.IsMicro() {
		entry := microEntry(v.Micro(), level)
		if entry.nibbleLast {
			return (entry.dataCodewords-1)*8 + 4
		}
		return entry.dataCodewords * 8
	}
	return dataCodewordsFor(v, level) * 8
}

// isNibbleLast reports whether version v at the given level ends in a 4-bit
// terminal codeword (M1/M3 only).
func isNibbleLast(v Version, level ErrorLevel) bool {
	if !v.IsMicro() {
		return false
	}
	return microEntry(v.Micro(), level).nibbleLast
}

// ecCodewordsFor returns (numBlocks, ecPerBlock) for version v at level.
func ecCodewordsFor(v Version, level ErrorLevel) (numBlocks, ecPerBlock int) {
	if v.IsMicro() {
		return 1, microEntry(v.Micro(), level).ecPerBlock
	}
	return numErrorCorrectionBlocks[level][v.Regular()], eccCodeWordsPerBlock[level][v.Regular()]
}

// rawCodewordsFor returns the total codeword count (data+EC, floor of raw
// module capacity / 8) of version v — used to check the interleaved stream's
// total length.
func rawCodewordsFor(v Version, level ErrorLevel) int {
	if v.IsMicro() {
		entry := microEntry(v.Micro(), level)
		return entry.dataCodewords + entry.ecPerBlock
	}
	return numRawDataModules[v.Regular()] / 8
}

// findMinFittingVersion returns the smallest version (in versionOrder) whose
// data-codeword capacity accommodates totalBitsFor at the given level, and
// whether one was found at all. Shared by selectVersion's auto-selection
// path and by the forced-version overflow path (spec §7's "error message
// includes the minimal version that would fit").
func findMinFittingVersion(totalBitsFor func(v Version) int, level ErrorLevel, allowMicro bool) (Version, bool) {
	for _, v := range versionOrder(allowMicro) {
		if !level.allowedForVersion(v) {
			continue
		}
		bits := totalBitsFor(v)
		if bits >= 0 && bits <= dataBitsFor(v, level) {
			return v, true
		}
	}
	return Version{}, false
}

// selectVersion implements spec §4.3's version/level auto-selection: the
// smallest version (in versionOrder) whose data-codeword capacity
// accommodates totalBits, at the given level. Versions at which level is not
// admissible are skipped; if nothing fits, returns DataOverflow (with the
// proposed minimum version left unset, matching spec §8's "one additional
// byte -> DataOverflow with proposal = none").
func selectVersion(totalBitsFor func(v Version) int, level ErrorLevel, allowMicro bool) (Version, error) {
	if v, ok := findMinFittingVersion(totalBitsFor, level, allowMicro); ok {
		return v, nil
	}
	return Version{}, newError(DataOverflow, "data too long for any admissible version at level %s", level)
}
