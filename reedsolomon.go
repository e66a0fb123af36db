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

// reedSolomonDivisors caches generator polynomials by EC codeword count,
// built once at init time for every (version, level) table entry (spec §5:
// "Precomputed ... tables are read-only and may be shared process-wide").
var reedSolomonDivisors = make(map[int][]byte)

func init() {
	degrees := make(map[int]bool)
	for _, row := range eccCodeWordsPerBlock {
		for _, d := range row {
			if d > 0 {
				degrees[d] = true
			}
		}
	}
	for _, row := range microCapacityTable {
		for _, entry := range row {
			degrees[entry.ecPerBlock] = true
		}
	}
	for d := range degrees {
		reedSolomonDivisors[d] = reedSolomonComputeDivisor(d)
	}
}

// reedSolomonComputeDivisor creates the Reed-Solomon generator polynomial of
// the given degree: the product ∏_{i=0..degree-1}(x - α^i) (spec §4.4).
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("degree out of range")
	}

	// Polynomial coefficients are stored from highest to lowest power,
	// excluding the leading term, which is always 1. For example, the
	// polynomial x^3 + 255*x^2 + 8x + 93 is stored as the byte array
	// [255, 8, 93].
	result := make([]byte, degree)
	result[degree-1] = 1 // Start off with the monomial x^0.

	// Compute the product polynomial (x - r^0) * (x - r^1) * ... *
	// (x - r^(degree-1)), dropping the highest monomial term (always
	// 1*x^degree). r = 0x02 is a generator element of GF(2^8/0x11D).
	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = gfMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = gfMultiply(root, 0x02)
	}

	return result
}

// reedSolomonComputeRemainder returns the Reed-Solomon error correction
// codewords for data, as the remainder of data·x^deg(divisor) divided by
// divisor (spec §4.4).
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result[0:], result[1:])
		result[len(result)-1] = 0
		for i := 0; i < len(result); i++ {
			result[i] ^= gfMultiply(divisor[i], factor)
		}
	}
	return result
}
