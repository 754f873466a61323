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

//go:build linux || darwin || freebsd || netbsd || openbsd

package arena

import "golang.org/x/sys/unix"

// MmapSource allocates blocks as anonymous private mappings.
// Blocks are unmapped when released.
type MmapSource struct{}

func (MmapSource) Alloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func (MmapSource) Free(buf []byte) error {
	return unix.Munmap(buf)
}

// SystemPageSize returns the page size of the OS.
func SystemPageSize() int {
	return unix.Getpagesize()
}
