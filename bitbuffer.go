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

type bitBuffer []byte

func (bb *bitBuffer) appendBits(value int, length int8) {
	if length > 31 || value>>length != 0 {
		panic("value out of range")
	}

	for i := length - 1; i >= 0; i-- { // Append data bit by bit.
		*bb = append(*bb, byte(value>>i&1))
	}
}

// padToAlignment appends zero bits until the buffer's length is a multiple
// of alignment, without growing past capacityBits. alignment is 8 for a
// regular symbol's byte boundary, or 4 for a Micro M1/M3 symbol, whose final
// codeword is a nibble rather than a full byte (spec §4.2 step 5, §4.9).
func (bb *bitBuffer) padToAlignment(alignment int, capacityBits int) {
	target := len(*bb) + (alignment-len(*bb)%alignment)%alignment
	if target > capacityBits {
		target = capacityBits
	}
	bb.appendBits(0, int8(target-len(*bb)))
}
