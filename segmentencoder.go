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

// encodeOptions carries every knob from spec §6's option table. It is built
// with functional options, same shape as the teacher's segmentEncoder, just
// with more fields for the axes the expanded spec adds (mode, encoding, eci,
// micro).
type encodeOptions struct {
	level ErrorLevel

	hasVersion bool
	version    Version

	hasMode bool
	mode    Mode

	mask int // -1 = auto-select by penalty (spec default).

	encoding string // Byte-mode text encoding label; only "UTF-8" is implemented.
	eci      bool

	hasMicro bool // Whether Micro was explicitly requested/forbidden.
	micro    bool

	boostError bool
}

func defaultOptions() encodeOptions {
	return encodeOptions{
		level:      Low,
		mask:       -1,
		encoding:   "UTF-8",
		boostError: true,
	}
}

// Option configures an EncodeText/EncodeBinary/EncodeSegments call.
type Option func(*encodeOptions)

// WithErrorLevel sets the target error correction level (default Low).
func WithErrorLevel(level ErrorLevel) Option {
	return func(o *encodeOptions) {
		o.level = level
	}
}

// WithVersion forces a specific version (default: auto-select).
func WithVersion(version Version) Option {
	return func(o *encodeOptions) {
		o.hasVersion = true
		o.version = version
	}
}

// WithMode forces every auto-selected segment to a specific mode (default:
// auto-select per spec §4.1).
func WithMode(mode Mode) Option {
	return func(o *encodeOptions) {
		o.hasMode = true
		o.mode = mode
	}
}

// WithMask forces a specific mask pattern, 0..7 regular or 0..3 micro
// (default: best-by-penalty).
func WithMask(mask int) Option {
	return func(o *encodeOptions) {
		o.mask = mask
	}
}

// WithAutoMask restores automatic, best-by-penalty mask selection.
func WithAutoMask() Option {
	return func(o *encodeOptions) {
		o.mask = -1
	}
}

// WithEncoding sets the byte-mode text encoding label (default "UTF-8").
func WithEncoding(encoding string) Option {
	return func(o *encodeOptions) {
		o.encoding = encoding
	}
}

// WithECI requests an ECI header be emitted before byte-mode segments
// (default false; invalid on micro symbols).
func WithECI(eci bool) Option {
	return func(o *encodeOptions) {
		o.eci = eci
	}
}

// WithMicro requires (true) or forbids (false) a Micro QR symbol (default:
// inferred from a forced version, else both families are considered).
func WithMicro(micro bool) Option {
	return func(o *encodeOptions) {
		o.hasMicro = true
		o.micro = micro
	}
}

// WithBoostError enables or disables promoting the error level when the
// chosen version still has room (default true).
func WithBoostError(boost bool) Option {
	return func(o *encodeOptions) {
		o.boostError = boost
	}
}
