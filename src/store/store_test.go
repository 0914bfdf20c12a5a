package store

import (
	"testing"

	"xiangqi/src/base"
)

func TestAddGet(t *testing.T) {
	s := NewStore()
	h1 := s.Add(base.Chariot, base.Red, base.Cell{Row: 0, Column: 0})
	h2 := s.Add(base.General, base.Black, base.Cell{Row: 9, Column: 4})
	if h1 == h2 {
		t.Fatalf("handles must differ: %v %v", h1, h2)
	}
	p, ok := s.Get(h2)
	if !ok || p.Kind != base.General || p.Side != base.Black || p.Cell != (base.Cell{Row: 9, Column: 4}) {
		t.Errorf("Get(h2) = %+v, %v", p, ok)
	}
	if _, ok := s.Get(99); ok {
		t.Error("Get of unknown handle must fail")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestEachOrderAndMutation(t *testing.T) {
	s := NewStore()
	hs := []Handle{
		s.Add(base.Pawn, base.Red, base.Cell{Row: 3, Column: 0}),
		s.Add(base.Horse, base.Red, base.Cell{Row: 0, Column: 1}),
		s.Add(base.Cannon, base.Black, base.Cell{Row: 2, Column: 1}),
	}
	i := 0
	s.Each(func(h Handle, cell base.Cell, highlighted *bool) {
		if h != hs[i] {
			t.Errorf("scan %d: got %v want %v", i, h, hs[i])
		}
		*highlighted = i == 1
		i++
	})
	got := s.Highlighted()
	if len(got) != 1 || got[0] != hs[1] {
		t.Errorf("Highlighted = %v", got)
	}
}

func TestResetKeepsHandlesUnique(t *testing.T) {
	s := NewStore()
	h1 := s.Add(base.Pawn, base.Red, base.Cell{})
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len after reset = %d", s.Len())
	}
	h2 := s.Add(base.Pawn, base.Red, base.Cell{})
	if h1 == h2 {
		t.Error("handle reused after reset")
	}
}

func TestAt(t *testing.T) {
	s := NewStore()
	h := s.Add(base.Scholar, base.Red, base.Cell{Row: 0, Column: 3})
	got, p, ok := s.At(base.Cell{Row: 0, Column: 3})
	if !ok || got != h || p.Kind != base.Scholar {
		t.Errorf("At = %v %+v %v", got, p, ok)
	}
	if _, _, ok := s.At(base.Cell{Row: 5, Column: 5}); ok {
		t.Error("empty cell must not match")
	}
}
