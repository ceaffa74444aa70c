// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go — Randomized invariant checks for bounded lists.
package list_test

import (
	"math/rand"
	"testing"

	"github.com/momentics/hioload-list/list"
	"github.com/momentics/hioload-list/seq"
)

// TestListPropertyBased performs randomized operations and checks the
// used-length invariant and a shadow model after every step.
func TestListPropertyBased(t *testing.T) {
	const capacity = 64
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		l := list.New[int](capacity)
		model := make([]int, 0, capacity)

		for i := 0; i < 5000; i++ {
			val := rng.Intn(100000)
			switch rng.Intn(5) {
			case 0: // single push
				if l.Push(val) {
					model = append(model, val)
				}
			case 1: // sized bulk push
				vals := make([]int, rng.Intn(8))
				for j := range vals {
					vals[j] = rng.Intn(100000)
				}
				rem := l.PushMany(seq.FromSlice(vals))
				fit := len(vals) - rem
				model = append(model, vals[:fit]...)
			case 2: // single pop
				l.Pop()
				if len(model) > 0 {
					model = model[:len(model)-1]
				}
			case 3: // clamped bulk pop
				n := rng.Intn(10)
				l.PopN(n)
				if n > len(model) {
					n = len(model)
				}
				model = model[:len(model)-n]
			case 4: // indexed write
				if l.Len() > 0 {
					idx := rng.Intn(l.Len())
					l.Set(idx, val)
					model[idx] = val
				}
			}

			if l.Len() < 0 || l.Len() > capacity {
				t.Fatalf("Length out of bounds: %d", l.Len())
			}
			if l.Len()+l.Free() != l.Cap() {
				t.Fatalf("Capacity arithmetic broken: %d + %d != %d", l.Len(), l.Free(), l.Cap())
			}
			if len(model) != l.Len() {
				t.Fatalf("Model length %d, list length %d", len(model), l.Len())
			}
		}

		view := l.View()
		for i := range model {
			if view[i] != model[i] {
				t.Fatalf("Seed %d: content diverged at %d: %d != %d", seed, i, view[i], model[i])
			}
		}
	}
}
