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

// Stats is a snapshot of arena usage.
type Stats struct {
	Blocks      int // memory blocks
	Capacity    int // bytes held by all blocks
	Carved      int // bytes carved from blocks, headers and padding included
	Chunks      int // chunks carved, used or free
	ChunksInUse int
	BytesInUse  int // usable bytes of chunks in use
}

// Utilization returns BytesInUse / Capacity, or 0 for an empty arena.
func (s Stats) Utilization() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.BytesInUse) / float64(s.Capacity)
}

func (s *Stats) add(o Stats) {
	s.Blocks += o.Blocks
	s.Capacity += o.Capacity
	s.Carved += o.Carved
	s.Chunks += o.Chunks
	s.ChunksInUse += o.ChunksInUse
	s.BytesInUse += o.BytesInUse
}
