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

import "unsafe"

// ChunkHeaderSize is the number of bytes reserved right after the usable bytes
// of every carved chunk, where its header sits in the block layout.
const ChunkHeaderSize = 40

// chunkHeader is the bookkeeping of one carved chunk.
// Headers are stored in the header table of the owning MemoryBlock and are
// linked into a circular list by index.
type chunkHeader struct {
	offset   int // start of the usable bytes within the block
	capacity int
	next     int32
	prev     int32
	used     bool
}

// Chunk is a handle of a byte range carved from a MemoryBlock.
// The zero value is the nil chunk.
//
// A Chunk is only valid between the request returning it and its release,
// or the release of its Arena. Using it afterwards is undefined.
type Chunk struct {
	block *MemoryBlock
	index int32
}

// IsNil reports whether c is the nil chunk.
func (c Chunk) IsNil() bool {
	return c.block == nil
}

// Data returns the address of the first usable byte.
func (c Chunk) Data() unsafe.Pointer {
	if c.block == nil {
		return nil
	}
	return unsafe.Add(c.block.start, c.header().offset)
}

// Bytes returns the usable bytes of the chunk. len and cap are both Capacity().
func (c Chunk) Bytes() []byte {
	if c.block == nil {
		return nil
	}
	h := c.header()
	end := h.offset + h.capacity
	return c.block.buf[h.offset:end:end]
}

// Capacity returns the number of usable bytes,
// header span and alignment padding excluded.
func (c Chunk) Capacity() int {
	if c.block == nil {
		return 0
	}
	return c.header().capacity
}

// Reset is a no-op extension point.
func (c Chunk) Reset() {}

func (c Chunk) header() *chunkHeader {
	return &c.block.headers[c.index]
}

func (c Chunk) isUsed() bool {
	return c.header().used
}
