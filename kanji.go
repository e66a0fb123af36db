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

import "golang.org/x/text/encoding/japanese"

// MakeKanji creates a Kanji-mode segment from UTF-8 text (spec §4.1):
// re-encodes it into Shift-JIS, then remaps each double-byte pair v into QR's
// 13-bit kanji code, v-0x8140 for 0x8140..0x9FFC, v-0xC140 for
// 0xE040..0xEBBF. Transcoding follows the same approach as rsc.io/qr's Kanji
// segment, which also reaches for golang.org/x/text/encoding/japanese rather
// than a hand-rolled Shift-JIS table.
//
// Returns InvalidMode if text contains characters outside Shift-JIS's
// repertoire, or if (already being Shift-JIS bytes) the byte length is odd.
func MakeKanji(text string) (*Segment, error) {
	sjis, err := japanese.ShiftJIS.NewEncoder().String(text)
	if err != nil {
		return nil, newError(InvalidMode, "text is not representable in Shift-JIS: %v", err)
	}
	if len(sjis)%2 != 0 {
		return nil, newError(InvalidMode, "Shift-JIS encoding has odd byte length")
	}

	bb := make(bitBuffer, 0, len(sjis)/2*13)
	numChars := len(sjis) / 2
	for i := 0; i < len(sjis); i += 2 {
		v := int(sjis[i])<<8 | int(sjis[i+1])

		orig := v
		switch {
		case v >= 0x8140 && v <= 0x9FFC:
			v -= 0x8140
		case v >= 0xE040 && v <= 0xEBBF:
			v -= 0xC140
		default:
			return nil, newError(InvalidMode, "byte pair 0x%04X is outside the kanji double-byte ranges", orig)
		}
		r := (v>>8)*0xC0 + (v & 0xFF)
		bb.appendBits(r, 13)
	}

	return &Segment{Mode: Kanji, NumChars: numChars, Data: bb}, nil
}
