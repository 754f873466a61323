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
	"fmt"

	"github.com/bytedance/gopkg/lang/dirtmake"
	"github.com/bytedance/gopkg/lang/mcache"
)

// BlockSource provides the memory of memory blocks.
type BlockSource interface {
	// Alloc returns a buffer of at least size bytes (len(buf) >= size).
	Alloc(size int) ([]byte, error)

	// Free takes back a buffer returned by Alloc.
	Free(buf []byte) error
}

// HeapSource allocates blocks from the Go heap without zeroing them.
// Free is a no-op, the GC reclaims a block once nothing refers to it.
type HeapSource struct{}

func (HeapSource) Alloc(size int) ([]byte, error) {
	return dirtmake.Bytes(size, size), nil
}

func (HeapSource) Free([]byte) error {
	return nil
}

// PoolSource allocates blocks from mcache.
// Released blocks go back to mcache and may back later arenas.
type PoolSource struct{}

func (PoolSource) Alloc(size int) ([]byte, error) {
	return mcache.Malloc(size), nil
}

func (PoolSource) Free(buf []byte) error {
	mcache.Free(buf)
	return nil
}

// LimitSource caps the number of bytes allocated from Source and not yet freed.
// Allocations beyond Limit fail with ErrLimitExceeded.
// Like Arena, it is not safe for concurrent use.
type LimitSource struct {
	Source BlockSource
	Limit  int

	inuse int
}

// NewLimitSource returns a LimitSource allowing limit bytes from src.
func NewLimitSource(src BlockSource, limit int) *LimitSource {
	return &LimitSource{Source: src, Limit: limit}
}

// InUse returns the number of bytes allocated and not yet freed.
func (s *LimitSource) InUse() int {
	return s.inuse
}

func (s *LimitSource) Alloc(size int) ([]byte, error) {
	if s.inuse+size > s.Limit {
		return nil, fmt.Errorf("%w: inuse=%d size=%d limit=%d", ErrLimitExceeded, s.inuse, size, s.Limit)
	}
	buf, err := s.Source.Alloc(size)
	if err != nil {
		return nil, err
	}
	s.inuse += len(buf)
	return buf, nil
}

func (s *LimitSource) Free(buf []byte) error {
	s.inuse -= len(buf)
	return s.Source.Free(buf)
}
