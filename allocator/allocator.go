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

// Package allocator provides byte allocators for containers, backed by an
// arena or by the heap, plus a debug allocator tracking live allocations.
//
// Allocators only deal with raw bytes. Constructing values in them is up to
// the caller, and the bytes must not hold Go pointers.
package allocator

import (
	"unsafe"

	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/cloudwego/arena/arena"
	"github.com/cloudwego/arena/internal/mathx"
)

// Allocator hands out byte buffers.
type Allocator interface {
	// Allocate returns a buffer of size bytes.
	Allocate(size int) ([]byte, error)

	// Deallocate gives back a buffer returned by Allocate.
	// buf must not be resliced to a different start.
	Deallocate(buf []byte)

	// NewCapacity returns the capacity a container holding numElems elements
	// should grow to.
	NewCapacity(numElems int) int
}

// StartingCapacity is the capacity of an empty container.
const StartingCapacity = 1

func growCapacity(numElems int) int {
	return mathx.NextPowerOfTwo(numElems + 1)
}

// dataOf returns the address identifying buf. Allocators hand out buffers with
// cap >= 1, so it is only nil for buffers they did not allocate.
func dataOf(buf []byte) *byte {
	if cap(buf) == 0 {
		return nil
	}
	return unsafe.SliceData(buf)
}

// ArenaAllocator allocates buffers from chunks of an Arena.
// Like the Arena, it is not safe for concurrent use.
type ArenaAllocator struct {
	arena  *arena.Arena
	chunks map[*byte]arena.Chunk
}

var _ Allocator = (*ArenaAllocator)(nil)

// NewArenaAllocator returns an allocator using a.
func NewArenaAllocator(a *arena.Arena) *ArenaAllocator {
	return &ArenaAllocator{arena: a, chunks: make(map[*byte]arena.Chunk)}
}

// Allocate requests a chunk of size bytes from the arena.
// A zero size still takes a chunk of one byte, so every buffer keeps its own address.
func (a *ArenaAllocator) Allocate(size int) ([]byte, error) {
	c, err := a.arena.RequestChunk(max(size, 1))
	if err != nil {
		return nil, err
	}
	buf := c.Bytes()[:size]
	a.chunks[dataOf(buf)] = c
	return buf, nil
}

// Deallocate releases the chunk of buf back to the arena.
// Buffers not allocated by a are ignored.
func (a *ArenaAllocator) Deallocate(buf []byte) {
	p := dataOf(buf)
	c, ok := a.chunks[p]
	if !ok {
		return
	}
	delete(a.chunks, p)
	a.arena.ReleaseChunk(c)
}

func (a *ArenaAllocator) NewCapacity(numElems int) int {
	return growCapacity(numElems)
}

// HeapAllocator allocates buffers from mcache.
type HeapAllocator struct{}

var _ Allocator = HeapAllocator{}

func (HeapAllocator) Allocate(size int) ([]byte, error) {
	return mcache.Malloc(size, max(size, 1)), nil
}

func (HeapAllocator) Deallocate(buf []byte) {
	mcache.Free(buf)
}

func (HeapAllocator) NewCapacity(numElems int) int {
	return growCapacity(numElems)
}
