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

// Package arena implements a chunk allocator over bulk memory blocks.
//
// An Arena grabs memory from a BlockSource in large blocks and carves
// variable sized chunks out of them. A released chunk is only marked free,
// it is never merged with its neighbours nor given back to the source
// before the Arena itself is released. Later requests reuse free chunks
// of the same block (best fit) before carving new ones.
//
// Arena and MemoryBlock are not safe for concurrent use. Use one Arena per
// goroutine, or serialize RequestChunk and ReleaseChunk externally.
//
// Chunk memory is raw bytes. Do not store Go pointers in it: depending on
// the BlockSource it is either invisible to the GC or not Go memory at all.
package arena
