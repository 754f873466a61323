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

package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwego/arena/arena"
)

func TestNewCapacity(t *testing.T) {
	for _, a := range []Allocator{HeapAllocator{}, NewArenaAllocator(arena.NewArena(1024))} {
		assert.Equal(t, 1, a.NewCapacity(0))
		assert.Equal(t, 2, a.NewCapacity(1))
		assert.Equal(t, 4, a.NewCapacity(2))
		assert.Equal(t, 4, a.NewCapacity(3))
		assert.Equal(t, 8, a.NewCapacity(4))
		assert.Equal(t, 1024, a.NewCapacity(1000))
	}
	assert.Equal(t, 1, StartingCapacity)
}

func TestArenaAllocator(t *testing.T) {
	ar := arena.NewArena(4096)
	defer ar.Release()
	a := NewArenaAllocator(ar)

	b1, err := a.Allocate(100)
	require.NoError(t, err)
	require.Len(t, b1, 100)
	b2, err := a.Allocate(200)
	require.NoError(t, err)
	require.Len(t, b2, 200)
	assert.NotSame(t, &b1[0], &b2[0])
	assert.Equal(t, 2, ar.Stats().ChunksInUse)

	a.Deallocate(b1)
	assert.Equal(t, 1, ar.Stats().ChunksInUse)

	// the released chunk is reused
	b3, err := a.Allocate(50)
	require.NoError(t, err)
	assert.Same(t, &b1[0], &b3[0])
	assert.Equal(t, 1, ar.NumBlocks())

	// unknown buffers are ignored
	a.Deallocate(make([]byte, 10))
	a.Deallocate(nil)
	assert.Equal(t, 2, ar.Stats().ChunksInUse)

	a.Deallocate(b2)
	a.Deallocate(b3)
	assert.Equal(t, 0, ar.Stats().ChunksInUse)
}

func TestArenaAllocatorZeroSize(t *testing.T) {
	ar := arena.NewArena(1024)
	defer ar.Release()
	a := NewArenaAllocator(ar)

	b1, err := a.Allocate(0)
	require.NoError(t, err)
	b2, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Len(t, b1, 0)
	assert.Len(t, b2, 0)
	assert.NotSame(t, dataOf(b1), dataOf(b2))
	assert.Equal(t, 2, ar.Stats().ChunksInUse)

	a.Deallocate(b1)
	a.Deallocate(b2)
	assert.Equal(t, 0, ar.Stats().ChunksInUse)
	assert.Empty(t, a.chunks)
}

func TestArenaAllocatorGrowth(t *testing.T) {
	ar := arena.NewArena(1024)
	defer ar.Release()
	a := NewArenaAllocator(ar)

	// container-style growth: allocate the new buffer, copy, drop the old one
	capacity := StartingCapacity
	buf, err := a.Allocate(capacity)
	require.NoError(t, err)
	n := 0
	for i := 0; i < 1000; i++ {
		if n == capacity {
			capacity = a.NewCapacity(n)
			nbuf, err := a.Allocate(capacity)
			require.NoError(t, err)
			copy(nbuf, buf[:n])
			a.Deallocate(buf)
			buf = nbuf
		}
		buf[n] = byte(i)
		n++
	}
	for i := 0; i < n; i++ {
		require.Equal(t, byte(i), buf[i])
	}
	assert.Equal(t, 1, ar.Stats().ChunksInUse)
}

func TestArenaAllocatorFailure(t *testing.T) {
	ar := arena.NewArenaWithOption(1024, &arena.Option{
		Source: arena.NewLimitSource(arena.HeapSource{}, 1024),
	})
	defer ar.Release()
	a := NewArenaAllocator(ar)

	_, err := a.Allocate(2000)
	assert.ErrorIs(t, err, arena.ErrAllocationFailure)
}

func TestHeapAllocator(t *testing.T) {
	var a HeapAllocator
	for _, sz := range []int{1, 100, 4096, 10000} {
		buf, err := a.Allocate(sz)
		require.NoError(t, err)
		require.Len(t, buf, sz)
		buf[sz-1] = 1
		a.Deallocate(buf)
	}
}

func TestDebugAllocator(t *testing.T) {
	ar := arena.NewArena(4096)
	defer ar.Release()
	d := NewDebugAllocator(NewArenaAllocator(ar))

	b1, err := d.Allocate(100)
	require.NoError(t, err)
	b2, err := d.Allocate(300)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Live())
	assert.Equal(t, 400, d.LiveBytes())

	d.Deallocate(b1)
	assert.Equal(t, 1, d.Live())
	assert.Equal(t, 300, d.LiveBytes())

	// double and unknown deallocations are dropped
	d.Deallocate(b1)
	d.Deallocate(make([]byte, 8))
	allocs, frees := d.Counts()
	assert.Equal(t, 2, allocs)
	assert.Equal(t, 1, frees)
	assert.Equal(t, 1, ar.Stats().ChunksInUse)

	assert.Equal(t, 1, d.ReportLeaks())
	d.Deallocate(b2)
	assert.Equal(t, 0, d.ReportLeaks())
	assert.Equal(t, 0, ar.Stats().ChunksInUse)
}

func TestDebugAllocatorZeroSize(t *testing.T) {
	for _, inner := range []Allocator{HeapAllocator{}, NewArenaAllocator(arena.NewArena(1024))} {
		d := NewDebugAllocator(inner)
		b1, err := d.Allocate(0)
		require.NoError(t, err)
		b2, err := d.Allocate(0)
		require.NoError(t, err)
		assert.Equal(t, 2, d.Live())

		d.Deallocate(b1)
		d.Deallocate(b2)
		assert.Equal(t, 0, d.Live())
		_, frees := d.Counts()
		assert.Equal(t, 2, frees)
	}
}

func TestDebugAllocatorFailure(t *testing.T) {
	ar := arena.NewArenaWithOption(1024, &arena.Option{
		Source: arena.NewLimitSource(arena.HeapSource{}, 0),
	})
	d := NewDebugAllocator(NewArenaAllocator(ar))

	_, err := d.Allocate(10)
	assert.Error(t, err)
	assert.Equal(t, 0, d.Live())
	allocs, _ := d.Counts()
	assert.Equal(t, 0, allocs)
}
