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

package arena

import "fmt"

func Example() {
	a := NewArena(1024)
	defer a.Release()

	c1, _ := a.RequestChunk(512)
	copy(c1.Bytes(), "hello")
	fmt.Printf("c1: cap=%d blocks=%d\n", c1.Capacity(), a.NumBlocks())

	a.ReleaseChunk(c1)
	c2, _ := a.RequestChunk(512)
	fmt.Printf("reused: %v\n", c1 == c2)

	c3, _ := a.RequestChunk(800) // does not fit in the first block
	fmt.Printf("c3: cap=%d blocks=%d\n", c3.Capacity(), a.NumBlocks())

	// Output:
	// c1: cap=512 blocks=1
	// reused: true
	// c3: cap=800 blocks=2
}
