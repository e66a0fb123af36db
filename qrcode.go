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
	"fmt"
	"strings"
)

// QRCode represents a QR code or Micro QR Code symbol, a type of
// two-dimensional barcode (spec §3).
type QRCode struct {
	Version              Version    // The symbol's version: a regular version 1-40, or a MicroSize M1-M4.
	Size                 int        // Width and height in modules.
	ErrorCorrectionLevel ErrorLevel // The error correction level used in this symbol.
	Mask                 int        // The mask pattern applied: 0-7 regular, 0-3 micro.
	Modules              [][]module // The modules ("pixels") that make up this symbol (dark = 1, light = 0).
}

// EncodeBinary encodes a byte slice as a single byte-mode segment (spec §6).
func EncodeBinary(data []byte, opts ...Option) (*QRCode, error) {
	return EncodeSegments([]*Segment{MakeBytes(data)}, opts...)
}

// EncodeText auto-selects segments for text (spec §4.1, §6) and encodes
// them.
func EncodeText(text string, opts ...Option) (*QRCode, error) {
	segs, err := MakeSegments(text)
	if err != nil {
		return nil, err
	}
	return EncodeSegments(segs, opts...)
}

// EncodeSegments is the core entry point (spec §6): it validates options,
// auto-selects a version and (if requested) a boosted error level, assembles
// the bit stream, splits/interleaves it with Reed-Solomon error correction,
// builds the module matrix, places the codewords, and picks (or forces) a
// mask.
func EncodeSegments(segs []*Segment, opts ...Option) (*QRCode, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.hasVersion {
		if !o.hasMicro {
			o.hasMicro = true
			o.micro = o.version.IsMicro()
		} else if o.micro != o.version.IsMicro() {
			return nil, newError(InvalidVersion, "forced version %s is incompatible with micro=%t", o.version, o.micro)
		}
	}

	if o.eci && o.hasMicro && o.micro {
		return nil, newError(InvalidMode, "ECI headers are not valid on micro symbols")
	}

	if !strings.EqualFold(o.encoding, "UTF-8") {
		return nil, newError(InvalidMode, "byte-mode encoding %q is not supported; only UTF-8 is implemented", o.encoding)
	}

	if o.hasMode {
		for _, seg := range segs {
			seg.Mode = o.mode
		}
	}

	if o.eci {
		eciSeg, err := MakeECI(26) // 26 = UTF-8.
		if err != nil {
			return nil, err
		}
		segs = append([]*Segment{eciSeg}, segs...)
	}

	totalBitsFor := func(v Version) int {
		return totalBits(segs, v)
	}

	var version Version
	var level ErrorLevel
	var err error
	if o.hasVersion {
		version = o.version
		level = o.level
		if !level.allowedForVersion(version) {
			return nil, newError(InvalidErrorLevel, "error level %s is not admissible on version %s", level, version)
		}
		bits := totalBitsFor(version)
		if bits < 0 || bits > dataBitsFor(version, level) {
			allowMicro := !o.hasMicro || o.micro
			minVersion, hasMin := findMinFittingVersion(totalBitsFor, level, allowMicro)
			return nil, newOverflowError("data does not fit in forced version %s at level %s", minVersion, hasMin, version, level)
		}
	} else {
		allowMicro := !o.hasMicro || o.micro
		if o.hasMicro && !o.micro {
			allowMicro = false
		}
		candidateBitsFor := totalBitsFor
		if o.hasMicro && o.micro {
			// Micro required: no regular version is a candidate.
			candidateBitsFor = func(v Version) int {
				if !v.IsMicro() {
					return -1
				}
				return totalBitsFor(v)
			}
		}
		version, err = selectVersion(candidateBitsFor, o.level, allowMicro)
		if err != nil {
			return nil, err
		}
		level = o.level
	}

	if o.mask != -1 {
		maxMask := 7
		if version.IsMicro() {
			maxMask = 3
		}
		if o.mask < 0 || o.mask > maxMask {
			return nil, newError(InvalidMask, "mask value %d out of range for version %s", o.mask, version)
		}
	}

	if o.boostError {
		for level < High {
			next := level.next()
			if !next.allowedForVersion(version) {
				break
			}
			bits := totalBitsFor(version)
			if bits < 0 || bits > dataBitsFor(version, next) {
				break
			}
			level = next
		}
	}

	bits := assembleCodewordStream(segs, version, level)

	m := newMatrix(version)
	m.drawFunctionPatterns()
	m.placeCodewords(bits)
	mask := m.handleConstructorMasking(level, o.mask)

	return &QRCode{
		Version:              version,
		Size:                 m.size,
		ErrorCorrectionLevel: level,
		Mask:                 mask,
		Modules:              m.modules,
	}, nil
}

func (q *QRCode) String() string {
	var sb strings.Builder
	sb.WriteString("QRCode\n")
	fmt.Fprintf(&sb, "\tVersion: %s\n", q.Version)
	fmt.Fprintf(&sb, "\tSize: %d\n", q.Size)
	fmt.Fprintf(&sb, "\tErrorCorrectionLevel: %s\n", q.ErrorCorrectionLevel)
	fmt.Fprintf(&sb, "\tMask: %d\n", q.Mask)
	sb.WriteString("\tModules\n")
	for y := 0; y < q.Size; y++ {
		sb.WriteString("\t\t")
		for x := 0; x < q.Size; x++ {
			if q.Modules[y][x] == 1 {
				sb.WriteString("░")
			} else {
				sb.WriteString("▓")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToSVGString returns a scalable vector graphics (SVG) representation of the
// symbol.
func (q *QRCode) ToSVGString(border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", newError(InvalidMode, "border must be non-negative")
	}

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", q.Size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if q.Modules[y][x] == 1 {
				if x != 0 && y != 0 {
					sb.WriteString(" ")
				}
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
			}
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
