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

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("0123456789"))
	assert.False(t, isNumeric("01234a"))
	assert.True(t, isNumeric(""))
}

func TestIsAlphanumeric(t *testing.T) {
	assert.True(t, isAlphanumeric("ABC 123$%*+-./:"))
	assert.False(t, isAlphanumeric("abc"))
}

func TestMakeNumeric(t *testing.T) {
	seg, err := MakeNumeric("12345")
	assert.NoError(t, err)
	assert.Equal(t, Numeric, seg.Mode)
	assert.Equal(t, 5, seg.NumChars)
	assert.Equal(t, 17, len(seg.Data)) // 1 group of 3 digits (10 bits) + a trailing group of 2 digits (7 bits).
}

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	_, err := MakeNumeric("12a45")
	assert.Error(t, err)
	qrErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, InvalidMode, qrErr.Kind)
}

func TestMakeAlphanumeric(t *testing.T) {
	seg, err := MakeAlphanumeric("HELLO WORLD")
	assert.NoError(t, err)
	assert.Equal(t, Alphanumeric, seg.Mode)
	assert.Equal(t, 11, seg.NumChars)
}

func TestMakeAlphanumericRejectsLowercase(t *testing.T) {
	_, err := MakeAlphanumeric("hello")
	assert.Error(t, err)
}

func TestMakeBytes(t *testing.T) {
	seg := MakeBytes([]byte{0x41, 0x42})
	assert.Equal(t, Byte, seg.Mode)
	assert.Equal(t, 2, seg.NumChars)
	assert.Equal(t, 16, len(seg.Data))
}

func TestMakeECI(t *testing.T) {
	seg, err := MakeECI(26)
	assert.NoError(t, err)
	assert.Equal(t, ECI, seg.Mode)
	assert.Equal(t, 8, len(seg.Data))
}

func TestMakeECIOutOfRange(t *testing.T) {
	_, err := MakeECI(2_000_000)
	assert.Error(t, err)
}

func TestMakeSegmentsAutoSelectsNumeric(t *testing.T) {
	segs, err := MakeSegments("12345")
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, Numeric, segs[0].Mode)
}

func TestMakeSegmentsAutoUppercasesAlphanumeric(t *testing.T) {
	segs, err := MakeSegments("hello")
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, Alphanumeric, segs[0].Mode)
}

func TestMakeSegmentsFallsBackToByte(t *testing.T) {
	segs, err := MakeSegments("Hello, world!")
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, Byte, segs[0].Mode)
}

func TestMakeSegmentsEmptyIsOverflow(t *testing.T) {
	_, err := MakeSegments("")
	assert.Error(t, err)
	qrErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, DataOverflow, qrErr.Kind)
}

func TestTotalBits(t *testing.T) {
	seg, err := MakeNumeric("123")
	assert.NoError(t, err)
	bits := totalBits([]*Segment{seg}, RegularVersion(1))
	assert.Equal(t, 4+10+len(seg.Data), bits)
}
