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

	"github.com/bytedance/gopkg/util/logger"

	"github.com/cloudwego/arena/internal/mathx"
)

// Arena hands out chunks carved from a growing list of memory blocks.
//
// Blocks are only appended. They are given back to their BlockSource all at once
// by Release.
type Arena struct {
	defaultAllocationSize int
	src                   BlockSource
	blocks                []*MemoryBlock
}

// NewArena creates an Arena using DefaultOption.
// New blocks are at least minAllocationSize bytes, rounded up to DefaultPageSize.
func NewArena(minAllocationSize int) *Arena {
	return NewArenaWithOption(minAllocationSize, nil)
}

// NewArenaWithOption creates an Arena with the given option.
// Zero fields of opt fall back to the values of DefaultOption.
func NewArenaWithOption(minAllocationSize int, opt *Option) *Arena {
	def := DefaultOption()
	if opt == nil {
		opt = def
	}
	pageSize := opt.PageSize
	if pageSize <= 0 {
		pageSize = def.PageSize
	}
	src := opt.Source
	if src == nil {
		src = def.Source
	}
	return &Arena{
		defaultAllocationSize: mathx.AlignSize(minAllocationSize, pageSize),
		src:                   src,
	}
}

// DefaultAllocationSize returns the size of blocks created for requests
// smaller than it.
func (a *Arena) DefaultAllocationSize() int {
	return a.defaultAllocationSize
}

// NumBlocks returns the number of memory blocks held by the arena.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// RequestChunk returns a chunk of at least size bytes.
//
// Blocks are tried in creation order, first for a free chunk to reuse
// (best fit within a block), then for room to carve a new chunk.
// Only if both fail a new block is allocated, of
// max(DefaultAllocationSize(), CalcTotalAllocationSize(size)) bytes.
//
// The only error is one wrapping ErrAllocationFailure, in which case the
// arena is left unchanged. size must be positive, it is not checked.
func (a *Arena) RequestChunk(size int) (Chunk, error) {
	for _, b := range a.blocks {
		if c, ok := b.RequestEmptyChunk(size); ok {
			return c, nil
		}
	}
	for _, b := range a.blocks {
		if b.CanFit(size) {
			return b.CreateNewChunk(size, true), nil
		}
	}
	return a.grow(size)
}

func (a *Arena) grow(size int) (Chunk, error) {
	n := max(a.defaultAllocationSize, CalcTotalAllocationSize(size))
	b, err := newMemoryBlock(a.src, n)
	if err != nil {
		logger.Warnf("ARENA: grow for chunk size=%d failed: %v", size, err)
		return Chunk{}, err
	}
	c := b.CreateNewChunk(size, true)
	a.blocks = append(a.blocks, b)
	return c, nil
}

// ReleaseChunk marks c free so that a later request may reuse it. It is O(1).
//
// Releasing the nil chunk is a no-op. Nothing else is checked:
// c must come from this arena, and releasing it twice goes unnoticed.
func (a *Arena) ReleaseChunk(c Chunk) {
	if c.block == nil {
		return
	}
	c.header().used = false
}

// Release gives every block back to its source. All chunks ever returned by
// the arena become invalid. The arena is empty and usable again afterwards.
func (a *Arena) Release() error {
	var errs []error
	for i, b := range a.blocks {
		if err := b.Release(); err != nil {
			logger.Warnf("ARENA: release block %d failed: %v", i, err)
			errs = append(errs, err)
		}
		a.blocks[i] = nil
	}
	a.blocks = a.blocks[:0]
	return errors.Join(errs...)
}

// Stats returns a snapshot of the arena usage.
func (a *Arena) Stats() Stats {
	var s Stats
	for _, b := range a.blocks {
		s.add(b.stats())
	}
	return s
}
