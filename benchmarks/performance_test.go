// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-list components.

package benchmarks

import (
	"testing"

	"github.com/momentics/hioload-list/adapters"
	"github.com/momentics/hioload-list/list"
	"github.com/momentics/hioload-list/region"
	"github.com/momentics/hioload-list/seq"
)

// BenchmarkPushPop measures the single-value hot path.
func BenchmarkPushPop(b *testing.B) {
	l := list.New[int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !l.Push(i) {
			l.Clear()
		}
	}
}

// BenchmarkAppendBulk measures sized bulk insertion throughput.
func BenchmarkAppendBulk(b *testing.B) {
	l := list.New[int](4096)
	vals := make([]int, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.Append(vals...) != 0 {
			l.Clear()
		}
	}
}

// BenchmarkPushManySized measures the source-based bulk path against
// the plain variadic one.
func BenchmarkPushManySized(b *testing.B) {
	l := list.New[int](4096)
	vals := make([]int, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.PushMany(seq.FromSlice(vals)) != 0 {
			l.Clear()
		}
	}
}

// BenchmarkExternalRegionPush measures pushes into an mmap-backed list.
func BenchmarkExternalRegionPush(b *testing.B) {
	r, err := region.Alloc(1<<20, region.Options{})
	if err != nil {
		b.Fatal(err)
	}
	defer r.Release()
	l := list.WrapBytes[int64](r.Bytes())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !l.Push(int64(i)) {
			l.Clear()
		}
	}
}

// BenchmarkSpillOverflow measures the adapter path under constant
// overflow pressure.
func BenchmarkSpillOverflow(b *testing.B) {
	s := adapters.NewSpillList[int](list.New[int](256))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		if s.Pending() > 256 {
			s.List().Clear()
			s.Drain()
		}
	}
}
