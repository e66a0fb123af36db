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

// terminatorBits returns T from spec §4.2 step 4: 4 for regular symbols,
// 3/5/7/9 for M1..M4.
func terminatorBits(v Version) int {
	if !v.IsMicro() {
		return 4
	}
	switch v.Micro() {
	case M1:
		return 3
	case M2:
		return 5
	case M3:
		return 7
	case M4:
		return 9
	default:
		panic("unknown MicroSize")
	}
}

// assembleBits builds the complete pre-EC bit stream for segs on version v
// at error level level (spec §4.2): per-segment mode+count headers and
// payload, a terminator, bit/nibble alignment padding, and alternating
// 0xEC/0x11 codeword padding up to the version's data-codeword capacity.
//
// Assumes totalBits(segs, v) has already been checked to fit
// dataBitsFor(v, level) — the caller (EncodeSegments) is responsible for
// the data-overflow check so it can report the smallest version that would
// fit; this function panics on a mismatch since that would be a bug in this
// package, not a caller error (spec §7).
func assembleBits(segs []*Segment, v Version, level ErrorLevel) bitBuffer {
	bb := make(bitBuffer, 0, dataBitsFor(v, level))

	for _, seg := range segs {
		if v.IsMicro() {
			value, ok := seg.Mode.microIndicatorValue(v.Micro())
			if !ok {
				panic("mode not supported on this micro version; should have been rejected earlier")
			}
			width := microModeIndicatorWidth(v.Micro())
			if width > 0 {
				bb.appendBits(value, width)
			}
		} else {
			bb.appendBits(seg.Mode.indicatorBits(), 4)
		}

		ccBits := seg.Mode.charCountBits(v)
		if ccBits < 0 {
			panic("mode has no char-count width on this version; should have been rejected earlier")
		}
		bb.appendBits(seg.NumChars, int8(ccBits))
		bb = append(bb, seg.Data...)
	}

	capacityBits := dataBitsFor(v, level)
	if len(bb) > capacityBits {
		panic("incorrect data size calculation: payload exceeds capacity after overflow check passed")
	}

	// Terminator: up to min(remaining, T) zero bits.
	t := terminatorBits(v)
	bb.appendBits(0, int8(min(t, capacityBits-len(bb))))

	// Bit-to-byte (or, for M1/M3, bit-to-nibble) alignment padding.
	alignment := 8
	if isNibbleLast(v, level) {
		alignment = 4
	}
	bb.padToAlignment(alignment, capacityBits)

	// Byte padding: alternate 0xEC, 0x11 for each full codeword of room
	// left; a final short (nibble) codeword — only possible for M1/M3 — is
	// 0x00 (spec §4.2 step 6).
	padByte := 0xEC
	for capacityBits-len(bb) >= 8 {
		bb.appendBits(padByte, 8)
		if padByte == 0xEC {
			padByte = 0x11
		} else {
			padByte = 0xEC
		}
	}
	if remaining := capacityBits - len(bb); remaining > 0 {
		bb.appendBits(0, int8(remaining))
	}

	if len(bb) != capacityBits {
		panic("incorrect data size calculation after padding")
	}

	return bb
}
