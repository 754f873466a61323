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

import "errors"

var (
	// ErrAllocationFailure is returned when a new memory block cannot be obtained
	// from its BlockSource. The request that needed the block fails as a whole.
	ErrAllocationFailure = errors.New("arena: memory block allocation failed")

	// ErrLimitExceeded is returned by LimitSource when its byte budget is used up.
	ErrLimitExceeded = errors.New("arena: block source limit exceeded")

	// ErrUnsupported is returned by block sources not available on this platform.
	ErrUnsupported = errors.New("arena: block source not supported on this platform")
)
