// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package simd provides fixed-width lane-vector types and elementwise
// operations; the 8- and 16-lane avalanche mixes in package mix, which the
// cipher's wide tiers call, are built from them. The
// vectors are emulated in portable Go rather than backed by hardware
// intrinsics: each "tier" is just a different lane width, and correctness
// of a tier depends only on every lane computing the same scalar function
// independently, which a Go loop already guarantees.
package simd

import "fmt"

// Vec8x64 is the 512-bit byte-wise view of a Vec32x16.
type Vec8x64 [64]uint8

// Vec32x16 is a 16-lane vector of uint32, the 512-bit integer tier.
type Vec32x16 [16]uint32

func (v Vec32x16) String() string {
	return fmt.Sprintf("{%08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x, %08x}",
		v[15], v[14], v[13], v[12], v[11], v[10], v[9], v[8],
		v[7], v[6], v[5], v[4], v[3], v[2], v[1], v[0])
}

func (v Vec8x64) String() string {
	return fmt.Sprintf("{%02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x, %02x}",
		v[63], v[62], v[61], v[60], v[59], v[58], v[57], v[56],
		v[55], v[54], v[53], v[52], v[51], v[50], v[49], v[48],
		v[47], v[46], v[45], v[44], v[43], v[42], v[41], v[40],
		v[39], v[38], v[37], v[36], v[35], v[34], v[33], v[32],
		v[31], v[30], v[29], v[28], v[27], v[26], v[25], v[24],
		v[23], v[22], v[21], v[20], v[19], v[18], v[17], v[16],
		v[15], v[14], v[13], v[12], v[11], v[10], v[9], v[8],
		v[7], v[6], v[5], v[4], v[3], v[2], v[1], v[0])
}
