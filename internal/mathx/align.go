/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mathx

import "math/bits"

// AlignSize rounds size up to the next multiple of alignment.
// alignment must be positive, it does not need to be a power of two.
func AlignSize(size, alignment int) int {
	if IsPowerOfTwo(alignment) {
		mask := alignment - 1
		return (size + mask) &^ mask
	}
	if r := size % alignment; r != 0 {
		return size + alignment - r
	}
	return size
}

// NextPowerOfTwo returns the smallest power of two >= n.
// NextPowerOfTwo(0) is 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
