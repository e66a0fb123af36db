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

// splitIntoBlocks groups a flat data-codeword stream into numBlocks blocks
// per spec §4.3: the first (rawCodewords%numBlocks) blocks are
// shortBlockLen+1 long (the "long" blocks), the rest shortBlockLen long.
// Always a single block for Micro symbols.
func splitIntoBlocks(data []byte, numBlocks int) [][]byte {
	blocks := make([][]byte, numBlocks)
	numShort := len(data) / numBlocks
	numLong := numShort + 1
	numLongBlocks := len(data) % numBlocks

	i := 0
	for b := 0; b < numBlocks; b++ {
		n := numShort
		if b < numLongBlocks {
			n = numLong
		}
		blocks[b] = data[i : i+n]
		i += n
	}
	return blocks
}

// bitsToBytes packs bb (a multiple of 8 bits, except for a Micro M1/M3
// symbol's final 4-bit nibble) into bytes, zero-extending a trailing nibble
// into a full byte purely so Reed-Solomon can operate on whole codewords;
// the caller must remember nibbleLast so the real nibble — not this
// zero-extension — is the only part written to the final bit stream.
func bitsToBytes(bb bitBuffer) []byte {
	numBytes := (len(bb) + 7) / 8
	result := make([]byte, numBytes)
	for i, bit := range bb {
		if bit != 0 {
			result[i/8] |= 1 << uint(7-i%8)
		}
	}
	return result
}

// interleaveCodewords implements spec §4.4's block split + EC append +
// column-wise interleave: split data into numBlocks blocks, compute each
// block's Reed-Solomon remainder, then emit data codewords column-by-column
// (shorter blocks simply contribute nothing once exhausted) followed by EC
// codewords column-by-column, ported from the teacher's
// QRCode.appendErrorCorrection loop structure.
func interleaveCodewords(v Version, level ErrorLevel, data []byte) []byte {
	if len(data) != dataCodewordsFor(v, level) {
		panic("data is not the correct length for this version/level")
	}

	numBlocks, ecPerBlock := ecCodewordsFor(v, level)
	blocks := splitIntoBlocks(data, numBlocks)

	divisor, ok := reedSolomonDivisors[ecPerBlock]
	if !ok {
		panic("no cached Reed-Solomon divisor for this EC codeword count")
	}

	ecBlocks := make([][]byte, numBlocks)
	maxDataLen := 0
	for i, block := range blocks {
		ecBlocks[i] = reedSolomonComputeRemainder(block, divisor)
		if len(block) > maxDataLen {
			maxDataLen = len(block)
		}
	}

	result := make([]byte, 0, len(data)+numBlocks*ecPerBlock)
	for i := 0; i < maxDataLen; i++ {
		for _, block := range blocks {
			if i < len(block) {
				result = append(result, block[i])
			}
		}
	}
	for i := 0; i < ecPerBlock; i++ {
		for _, ec := range ecBlocks {
			result = append(result, ec[i])
		}
	}

	if len(result) != rawCodewordsFor(v, level) {
		panic("interleave produced the wrong total codeword count")
	}

	return result
}

// assembleCodewordStream is the full spec §4.2-4.4 pipeline: assemble the
// pre-EC bit stream, byte-ize it (preserving a Micro M1/M3 trailing nibble
// for placement even though it's zero-extended for the RS computation),
// split/interleave with error correction, and return the final module bit
// sequence to place into the matrix (spec §4.5), MSB-first per codeword,
// with the trailing nibble (if any) placed as its 4 true bits rather than a
// full zero-extended byte.
func assembleCodewordStream(segs []*Segment, v Version, level ErrorLevel) []bool {
	bb := assembleBits(segs, v, level)
	nibbleLast := isNibbleLast(v, level)

	dataBytes := bitsToBytes(bb)
	interleaved := interleaveCodewords(v, level, dataBytes)

	// Micro symbols are always exactly 1 block, so the data codewords stay
	// in their original order at the front of the interleaved stream.
	lastDataIdx := len(dataBytes) - 1

	bits := make([]bool, 0, len(interleaved)*8)
	for i, b := range interleaved {
		lo := 0
		if nibbleLast && i == lastDataIdx {
			// Only the top 4 bits are real data; the bottom 4 are the
			// zero-extension bitsToBytes added purely for the EC computation.
			lo = 4
		}
		for j := 7; j >= lo; j-- {
			bits = append(bits, (b>>uint(j))&1 == 1)
		}
	}

	return bits
}
