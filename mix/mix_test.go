package mix_test

import (
	"testing"

	"github.com/umitkrkmz/chaoticengine/internal/simd"
	"github.com/umitkrkmz/chaoticengine/mix"
)

func TestAvalancheSliceMatchesScalar(t *testing.T) {
	in := []uint32{0, 1, 0xFFFFFFFF, 0x12345678, 0x9E3779B9}
	got := append([]uint32(nil), in...)
	mix.AvalancheSlice(got)
	for i, v := range in {
		want := mix.Avalanche(v)
		if got[i] != want {
			t.Errorf("lane %d: AvalancheSlice=%#x Avalanche=%#x", i, got[i], want)
		}
	}
}

func TestAvalancheW16MatchesScalar(t *testing.T) {
	var v simd.Vec32x16
	var want [16]uint32
	for i := range v {
		v[i] = uint32(i)*0x1000001 + 7
		want[i] = mix.Avalanche(v[i])
	}
	mix.AvalancheW16(&v)
	for i := range v {
		if v[i] != want[i] {
			t.Errorf("lane %d: AvalancheW16=%#x Avalanche=%#x", i, v[i], want[i])
		}
	}
}

func TestAvalancheW8MatchesScalar(t *testing.T) {
	var v simd.Vec32x8
	var want [8]uint32
	for i := range v {
		v[i] = uint32(i)*0x2000003 + 11
		want[i] = mix.Avalanche(v[i])
	}
	mix.AvalancheW8(&v)
	for i := range v {
		if v[i] != want[i] {
			t.Errorf("lane %d: AvalancheW8=%#x Avalanche=%#x", i, v[i], want[i])
		}
	}
}

func TestAvalancheIsNotIdentity(t *testing.T) {
	if mix.Avalanche(12345) == 12345 {
		t.Error("avalanche mix returned its input unchanged")
	}
}

func TestAvalancheTierRoutesByWidth(t *testing.T) {
	mk := func(n int) []uint32 {
		k := make([]uint32, n)
		for i := range k {
			k[i] = uint32(i)*0x1000001 + 7
		}
		return k
	}

	for _, n := range []int{1, 8, 16} {
		k := mk(n)
		want := make([]uint32, n)
		for i, v := range k {
			want[i] = mix.Avalanche(v)
		}
		mix.AvalancheTier(k)
		for i := range k {
			if k[i] != want[i] {
				t.Errorf("n=%d lane %d: AvalancheTier=%#x want=%#x", n, i, k[i], want[i])
			}
		}
	}
}
