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
	"github.com/bytedance/gopkg/util/logger"
)

// DebugAllocator wraps an Allocator and keeps track of live buffers,
// so that leaks and bad deallocations can be reported.
type DebugAllocator struct {
	Allocator

	live   map[*byte]int
	allocs int
	frees  int
}

// NewDebugAllocator returns a DebugAllocator wrapping a.
func NewDebugAllocator(a Allocator) *DebugAllocator {
	return &DebugAllocator{Allocator: a, live: make(map[*byte]int)}
}

func (d *DebugAllocator) Allocate(size int) ([]byte, error) {
	buf, err := d.Allocator.Allocate(size)
	if err != nil {
		return nil, err
	}
	d.allocs++
	d.live[dataOf(buf)] = size
	return buf, nil
}

// Deallocate forwards buf to the wrapped allocator.
// Unknown buffers and double deallocations are logged and dropped.
func (d *DebugAllocator) Deallocate(buf []byte) {
	p := dataOf(buf)
	if _, ok := d.live[p]; !ok {
		logger.Warnf("ALLOCATOR: deallocate of unknown buffer %p (len=%d)", p, len(buf))
		return
	}
	delete(d.live, p)
	d.frees++
	d.Allocator.Deallocate(buf)
}

// Live returns the number of buffers allocated and not deallocated.
func (d *DebugAllocator) Live() int {
	return len(d.live)
}

// LiveBytes returns the total size of live buffers.
func (d *DebugAllocator) LiveBytes() int {
	n := 0
	for _, sz := range d.live {
		n += sz
	}
	return n
}

// Counts returns the number of successful Allocate and Deallocate calls.
func (d *DebugAllocator) Counts() (allocs, frees int) {
	return d.allocs, d.frees
}

// ReportLeaks logs every live buffer and returns how many there are.
func (d *DebugAllocator) ReportLeaks() int {
	for p, sz := range d.live {
		logger.Warnf("ALLOCATOR: leaked buffer %p of %d bytes", p, sz)
	}
	return len(d.live)
}
