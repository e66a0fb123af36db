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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeKanjiEncodesOneCharacter(t *testing.T) {
	// U+3042 (HIRAGANA LETTER A) is 0x82A0 in Shift-JIS, within the
	// 0x8140-0x9FFC double-byte range.
	seg, err := MakeKanji("あ")
	assert.NoError(t, err)
	assert.Equal(t, Kanji, seg.Mode)
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, 13, len(seg.Data))
}

func TestMakeKanjiRejectsUnrepresentableText(t *testing.T) {
	_, err := MakeKanji("\U0001F600") // An emoji has no Shift-JIS mapping.
	assert.Error(t, err)
	qrErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, InvalidMode, qrErr.Kind)
}
