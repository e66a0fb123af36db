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

func TestVersionSize(t *testing.T) {
	assert.Equal(t, 21, RegularVersion(1).Size())
	assert.Equal(t, 177, RegularVersion(40).Size())
	assert.Equal(t, 11, MicroVersion(M1).Size())
	assert.Equal(t, 13, MicroVersion(M2).Size())
	assert.Equal(t, 15, MicroVersion(M3).Size())
	assert.Equal(t, 17, MicroVersion(M4).Size())
}

func TestVersionRegularPanicsOnMicro(t *testing.T) {
	assert.Panics(t, func() { MicroVersion(M1).Regular() })
	assert.Panics(t, func() { RegularVersion(1).Micro() })
}

func TestRegularVersionPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { RegularVersion(0) })
	assert.Panics(t, func() { RegularVersion(41) })
}

func TestVersionOrderStartsWithMicroWhenAllowed(t *testing.T) {
	order := versionOrder(true)
	assert.True(t, order[0].IsMicro())
	assert.Equal(t, M1, order[0].Micro())
	assert.Equal(t, 44, len(order))
}

func TestVersionOrderExcludesMicroWhenDisallowed(t *testing.T) {
	order := versionOrder(false)
	assert.Equal(t, 40, len(order))
	for _, v := range order {
		assert.False(t, v.IsMicro())
	}
}

func TestErrorLevelAllowedForVersion(t *testing.T) {
	assert.True(t, Low.allowedForVersion(MicroVersion(M1)))
	assert.False(t, Medium.allowedForVersion(MicroVersion(M1)))
	assert.True(t, Quartile.allowedForVersion(MicroVersion(M4)))
	assert.False(t, High.allowedForVersion(MicroVersion(M4)))
	assert.True(t, High.allowedForVersion(RegularVersion(1)))
}
