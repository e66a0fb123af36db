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

func TestGfMultiplyZero(t *testing.T) {
	assert.Equal(t, byte(0), gfMultiply(0, 200))
	assert.Equal(t, byte(0), gfMultiply(200, 0))
}

func TestGfMultiplyIdentity(t *testing.T) {
	for x := 1; x < 256; x++ {
		assert.Equal(t, byte(x), gfMultiply(byte(x), 1))
	}
}

func TestGfMultiplyMatchesRussianPeasant(t *testing.T) {
	// Cross-check the table-driven multiply against the teacher's original
	// shift-and-reduce formulation for a spread of values.
	peasant := func(x, y byte) byte {
		z := 0
		for i := 7; i >= 0; i-- {
			z = z<<1 ^ z>>7*0x11D
			z ^= int(y >> uint(i) & 1 * x)
		}
		return byte(z)
	}

	for _, a := range []byte{0, 1, 2, 3, 17, 128, 200, 255} {
		for _, b := range []byte{0, 1, 2, 5, 64, 99, 254, 255} {
			assert.Equal(t, peasant(a, b), gfMultiply(a, b), "a=%d b=%d", a, b)
		}
	}
}
