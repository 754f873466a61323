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

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/cloudwego/arena/internal/mathx"
)

// chunkAlignment is the alignment of every carved span (usable bytes + header).
const chunkAlignment = 64

// CalcTotalAllocationSize returns the number of bytes carved from a block for a
// chunk of the given size: the size plus ChunkHeaderSize, rounded up to 64 bytes.
func CalcTotalAllocationSize(size int) int {
	return mathx.AlignSize(size+ChunkHeaderSize, chunkAlignment)
}

// MemoryBlock is one bulk allocation subdivided into chunks.
//
// Chunks are carved from the unused tail of the block and are never given
// back to it. Every header, used or free, stays in a circular list which
// RequestEmptyChunk scans for reuse.
type MemoryBlock struct {
	src   BlockSource
	buf   []byte // as returned by src, passed back to src.Free as is
	start unsafe.Pointer

	capacity int
	offset   int // bytes carved so far, never decreases

	headers []chunkHeader
	head    int32 // index of the first header, -1 if none
}

// NewMemoryBlock allocates a block of capacity bytes from the heap.
func NewMemoryBlock(capacity int) (*MemoryBlock, error) {
	return newMemoryBlock(HeapSource{}, capacity)
}

func newMemoryBlock(src BlockSource, capacity int) (*MemoryBlock, error) {
	buf, err := src.Alloc(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: size=%d: %w", ErrAllocationFailure, capacity, err)
	}
	if len(buf) < capacity {
		err = fmt.Errorf("%w: size=%d: source returned %d bytes", ErrAllocationFailure, capacity, len(buf))
		return nil, errors.Join(err, src.Free(buf))
	}
	return &MemoryBlock{
		src:      src,
		buf:      buf,
		start:    unsafe.Pointer(unsafe.SliceData(buf)),
		capacity: capacity,
		head:     -1,
	}, nil
}

// Capacity returns the size of the block in bytes.
func (b *MemoryBlock) Capacity() int {
	return b.capacity
}

// Offset returns the number of bytes carved from the block so far.
func (b *MemoryBlock) Offset() int {
	return b.offset
}

// RemainingSize returns the number of bytes not yet carved.
func (b *MemoryBlock) RemainingSize() int {
	return b.capacity - b.offset
}

// NumChunks returns the number of chunks carved from the block.
func (b *MemoryBlock) NumChunks() int {
	return len(b.headers)
}

// CanFit reports whether a chunk of size bytes can still be carved from the block.
func (b *MemoryBlock) CanFit(size int) bool {
	return b.RemainingSize() >= CalcTotalAllocationSize(size)
}

// CreateNewChunk carves a chunk of size bytes from the tail of the block and
// appends its header to the header list.
//
// The caller must check CanFit first, it is not checked here.
func (b *MemoryBlock) CreateNewChunk(size int, used bool) Chunk {
	total := CalcTotalAllocationSize(size)
	idx := int32(len(b.headers))
	b.headers = append(b.headers, chunkHeader{
		offset:   b.offset,
		capacity: size,
		used:     used,
	})
	b.offset += total

	h := &b.headers[idx]
	if b.head < 0 {
		h.next, h.prev = idx, idx
		b.head = idx
	} else {
		first := &b.headers[b.head]
		last := first.prev
		b.headers[last].next = idx
		h.prev = last
		h.next = b.head
		first.prev = idx
	}
	return Chunk{block: b, index: idx}
}

// RequestEmptyChunk finds the free chunk with the smallest capacity that still
// holds size bytes, marks it used and returns it. Among equal capacities the one
// carved first wins. It returns false if no free chunk is large enough.
func (b *MemoryBlock) RequestEmptyChunk(size int) (Chunk, bool) {
	if b.head < 0 {
		return Chunk{}, false
	}
	best, bestCap := int32(-1), math.MaxInt
	i := b.head
	for {
		h := &b.headers[i]
		if !h.used && h.capacity >= size && h.capacity < bestCap {
			best, bestCap = i, h.capacity
		}
		i = h.next
		if i == b.head {
			break
		}
	}
	if best < 0 {
		return Chunk{}, false
	}
	b.headers[best].used = true
	return Chunk{block: b, index: best}, true
}

// Release gives the block memory back to its source and clears all bookkeeping.
// Chunks of the block must not be used afterwards.
func (b *MemoryBlock) Release() error {
	if b.buf == nil {
		return nil
	}
	err := b.src.Free(b.buf)
	b.buf, b.start = nil, nil
	b.capacity, b.offset = 0, 0
	b.headers, b.head = nil, -1
	return err
}

func (b *MemoryBlock) stats() (s Stats) {
	s.Blocks = 1
	s.Capacity = b.capacity
	s.Carved = b.offset
	s.Chunks = len(b.headers)
	for i := range b.headers {
		if h := &b.headers[i]; h.used {
			s.ChunksInUse++
			s.BytesInUse += h.capacity
		}
	}
	return s
}
