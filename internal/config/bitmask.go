// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

// flags is the set of unsigned types usable as a bitmask payload.
type flags interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitMask holds a set of binary options of flag type T.
// The zero value is a mask with every option disabled.
type BitMask[T flags] struct {
	value T
}

// NewBitMask returns a [BitMask] with the given options enabled.
func NewBitMask[T flags](enabled ...T) BitMask[T] {
	var m BitMask[T]
	for _, flag := range enabled {
		m.value |= flag
	}

	return m
}

// Set enables or disables one option.
func (m *BitMask[T]) Set(flag T, value bool) {
	if value {
		m.value |= flag
	} else {
		m.value &^= flag
	}
}

// Enabled reports whether the option is set.
func (m BitMask[T]) Enabled(flag T) bool {
	return m.value&flag != 0
}
