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

// DefaultPageSize is the default granularity of the arena block size.
const DefaultPageSize = 1024

// Option configures an Arena.
type Option struct {
	// PageSize is the granularity of the default block size.
	// The minimum allocation size passed to NewArena is rounded up to it.
	// Use SystemPageSize() to follow the page size of the OS.
	PageSize int

	// Source provides the memory of new blocks.
	Source BlockSource
}

// DefaultOption returns the default values of Option.
func DefaultOption() *Option {
	return &Option{
		PageSize: DefaultPageSize,
		Source:   HeapSource{},
	}
}
