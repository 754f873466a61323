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

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package arena

import "os"

// MmapSource is not available on this platform, Alloc always fails.
type MmapSource struct{}

func (MmapSource) Alloc(int) ([]byte, error) {
	return nil, ErrUnsupported
}

func (MmapSource) Free([]byte) error {
	return ErrUnsupported
}

// SystemPageSize returns the page size of the OS.
func SystemPageSize() int {
	return os.Getpagesize()
}
