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
	"strconv"
	"strings"
	"unicode"
)

// Segment represents a single segment in a QR code (spec §3): an immutable
// (mode, char_count, encoded_bits) record. A symbol may carry more than one
// segment (numeric, alphanumeric, byte, kanji, or ECI).
type Segment struct {
	Mode     Mode
	NumChars int       // Count of source characters/bytes before bit-packing.
	Data     bitBuffer // Payload bits only — no mode indicator or count header.
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func isNumeric(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(text string) bool {
	for _, r := range text {
		if strings.IndexRune(alphanumericCharset, r) < 0 {
			return false
		}
	}
	return true
}

// totalBits returns the total pre-EC bit length of segs on symbol version v,
// or -1 if any segment's length doesn't fit its char-count field (spec §4.2)
// or the mode isn't supported on v at all (e.g. Kanji/Byte on M1/M2).
func totalBits(segs []*Segment, v Version) int {
	result := 0
	indicatorWidth := 4
	if v.IsMicro() {
		indicatorWidth = int(microModeIndicatorWidth(v.Micro()))
	}
	for _, seg := range segs {
		ccBits := seg.Mode.charCountBits(v)
		if ccBits < 0 {
			return -1
		}
		if seg.NumChars >= 1<<uint(ccBits) {
			return -1
		}
		result += indicatorWidth + ccBits + len(seg.Data)
	}
	return result
}

// MakeAlphanumeric creates an alphanumeric segment from the given text
// (uppercase letters, digits, and the symbols 0-9 A-Z ' $%*+-./:'). Returns
// InvalidMode if text contains characters outside that set — including
// lowercase letters, which auto mode selection uppercases before ever
// calling this (spec §8's boundary behavior).
func MakeAlphanumeric(text string) (*Segment, error) {
	if !isAlphanumeric(text) {
		return nil, newError(InvalidMode, "text contains characters outside the alphanumeric set")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 { // Process groups of 2 characters.
		temp := strings.IndexByte(alphanumericCharset, text[i]) * 45
		temp += strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(temp, 11)
	}
	if i < len(text) { // 1 character remaining.
		bb.appendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}

	return &Segment{Mode: Alphanumeric, NumChars: len(text), Data: bb}, nil
}

// MakeBytes encodes a byte slice into a Byte-mode segment (spec §4.1): each
// source byte becomes 8 bits, UTF-8 by default or whatever an emitted ECI
// names.
func MakeBytes(data []byte) *Segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}
	return &Segment{Mode: Byte, NumChars: len(data), Data: bb}
}

// MakeECI creates a segment representing an Extended Channel Interpretation
// designator with the specified assignment value (26 = UTF-8, spec §4.2
// step 1).
func MakeECI(assignValue int) (*Segment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return nil, newError(InvalidMode, "ECI assignment value out of range")
	}
	return &Segment{Mode: ECI, NumChars: 0, Data: bb}, nil
}

// MakeNumeric creates a numeric segment from the given digit string (spec
// §4.1): groups of 3 digits in 10 bits, then a trailing group of 2 (7 bits)
// or 1 (4 bits). Returns InvalidMode on any non-decimal character.
func MakeNumeric(digits string) (*Segment, error) {
	if !isNumeric(digits) {
		return nil, newError(InvalidMode, "text contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, err := strconv.Atoi(digits[i : i+n])
		if err != nil {
			panic("isNumeric confirmed digits but strconv.Atoi failed")
		}
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &Segment{Mode: Numeric, NumChars: len(digits), Data: bb}, nil
}

// MakeSegments encodes text into one segment, auto-selecting the most
// compact mode that admits every character: Numeric, then Alphanumeric
// (uppercasing first — lowercase is accepted in auto mode, spec §8), then
// Byte (UTF-8). Kanji is never auto-selected (spec §4.1): it must be
// requested explicitly via MakeKanji.
func MakeSegments(text string) ([]*Segment, error) {
	if len(text) == 0 {
		return nil, newError(DataOverflow, "empty input has no segments")
	}

	if isNumeric(text) {
		seg, err := MakeNumeric(text)
		if err != nil {
			return nil, err
		}
		return []*Segment{seg}, nil
	}

	upper := strings.Map(unicode.ToUpper, text)
	if isAlphanumeric(upper) {
		seg, err := MakeAlphanumeric(upper)
		if err != nil {
			return nil, err
		}
		return []*Segment{seg}, nil
	}

	return []*Segment{MakeBytes([]byte(text))}, nil
}
