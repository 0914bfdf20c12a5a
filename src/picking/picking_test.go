package picking

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"xiangqi/src/base"
	"xiangqi/src/geometry"
	"xiangqi/src/logx"
	"xiangqi/src/store"
)

type fakePointer struct {
	x, y float64
	ok   bool
}

func (p *fakePointer) CursorPosition() (float64, float64, bool) {
	return p.x, p.y, p.ok
}

// topDown shoots every ray straight down at the screen point, so the board
// point equals the pointer sample.
type topDown struct{}

func (topDown) ScreenPointToRay(x, y, _, _ float64) Ray {
	return Ray{Origin: Vec3{x, y, 1}, Dir: Vec3{0, 0, -1}}
}

type parallel struct{}

func (parallel) ScreenPointToRay(x, y, _, _ float64) Ray {
	return Ray{Origin: Vec3{x, y, 1}, Dir: Vec3{1, 0, 0}}
}

func canonicalStore() (*store.Store, map[store.Handle]base.Cell) {
	s := store.NewStore()
	cells := map[store.Handle]base.Cell{}
	add := func(k base.PieceKind, side base.Side, r, c int) {
		cell := base.Cell{Row: r, Column: c}
		cells[s.Add(k, side, cell)] = cell
	}
	add(base.Chariot, base.Red, 0, 0)
	add(base.Horse, base.Red, 0, 1)
	add(base.General, base.Red, 0, 4)
	add(base.Pawn, base.Red, 3, 0)
	add(base.Pawn, base.Black, 6, 0)
	add(base.General, base.Black, 9, 4)
	return s, cells
}

func newTestEngine(p Pointer, proj Projector, s *store.Store) *Engine {
	return NewEngine(geometry.Default(), p, proj, s, logx.NewNop())
}

func handleAt(t *testing.T, s *store.Store, r, c int) store.Handle {
	t.Helper()
	h, _, ok := s.At(base.Cell{Row: r, Column: c})
	if !ok {
		t.Fatalf("no piece at (%d,%d)", r, c)
	}
	return h
}

func TestPickHighlightsGeneral(t *testing.T) {
	s, _ := canonicalStore()
	x, y := geometry.Default().CellToWorld(0, 4)
	e := newTestEngine(&fakePointer{x: x, y: y, ok: true}, topDown{}, s)

	res, err := e.Pick(800, 600)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	general := handleAt(t, s, 0, 4)
	if len(res.Highlighted) != 1 || res.Highlighted[0] != general {
		t.Fatalf("highlighted = %v, want [%v]", res.Highlighted, general)
	}
	for _, h := range s.Handles() {
		p, _ := s.Get(h)
		if p.Highlighted != (h == general) {
			t.Errorf("piece %v at %+v highlighted=%v", h, p.Cell, p.Highlighted)
		}
	}
}

func TestHitboxBoundary(t *testing.T) {
	s, _ := canonicalStore()
	general := handleAt(t, s, 0, 4)
	// column 4 sits exactly on the arena centre line, x = 400
	x, y := geometry.Default().CellToWorld(0, 4)
	tests := []struct {
		name string
		px   float64
		want bool
	}{
		{"centre", x, true},
		{"just inside", x + geometry.HitboxHalfWidth - 0.5, true},
		{"edge", x + geometry.HitboxHalfWidth, false},
		{"left edge", x - geometry.HitboxHalfWidth, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(&fakePointer{x: tt.px, y: y, ok: true}, topDown{}, s)
			if _, err := e.Pick(800, 600); err != nil {
				t.Fatalf("Pick: %v", err)
			}
			p, _ := s.Get(general)
			if p.Highlighted != tt.want {
				t.Errorf("highlighted = %v, want %v", p.Highlighted, tt.want)
			}
		})
	}
}

func TestPickMissClearsAll(t *testing.T) {
	s, _ := canonicalStore()
	for _, h := range s.Handles() {
		s.SetHighlighted(h, true)
	}
	// centre of the river, far from every piece of this layout
	e := newTestEngine(&fakePointer{x: 400, y: 330, ok: true}, topDown{}, s)
	res, err := e.Pick(800, 600)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if len(res.Highlighted) != 0 {
		t.Errorf("highlighted = %v", res.Highlighted)
	}
	if got := s.Highlighted(); len(got) != 0 {
		t.Errorf("store still has highlighted pieces: %v", got)
	}
}

func TestNoPointerSampleKeepsState(t *testing.T) {
	s, _ := canonicalStore()
	marked := handleAt(t, s, 3, 0)
	s.SetHighlighted(marked, true)

	e := newTestEngine(&fakePointer{ok: false}, topDown{}, s)
	if _, err := e.Pick(800, 600); !errors.Is(err, ErrNoPointerSample) {
		t.Fatalf("err = %v, want ErrNoPointerSample", err)
	}
	if _, ran := e.Update(800, 600); ran {
		t.Error("Update must report a skipped pass")
	}
	got := s.Highlighted()
	if len(got) != 1 || got[0] != marked {
		t.Errorf("highlight changed: %v", got)
	}

	e.SetPointer(nil)
	if _, err := e.Pick(800, 600); !errors.Is(err, ErrNoPointerSample) {
		t.Errorf("nil pointer: err = %v", err)
	}
}

func TestDegenerateProjectionSkipsTick(t *testing.T) {
	s, _ := canonicalStore()
	marked := handleAt(t, s, 9, 4)
	s.SetHighlighted(marked, true)

	x, y := geometry.Default().CellToWorld(0, 0)
	e := newTestEngine(&fakePointer{x: x, y: y, ok: true}, parallel{}, s)
	if _, err := e.Pick(800, 600); !errors.Is(err, ErrDegenerateProjection) {
		t.Fatalf("err = %v, want ErrDegenerateProjection", err)
	}
	if _, ran := e.Update(800, 600); ran {
		t.Error("Update must skip the tick")
	}
	got := s.Highlighted()
	if len(got) != 1 || got[0] != marked {
		t.Errorf("highlight changed: %v", got)
	}
}

func TestSkippedPassesAreLogged(t *testing.T) {
	tests := []struct {
		name string
		ptr  *fakePointer
		proj Projector
		want string
	}{
		{"no pointer", &fakePointer{ok: false}, topDown{}, "skip pick: no pointer sample"},
		{"parallel ray", &fakePointer{x: 400, y: 300, ok: true}, parallel{}, "skip pick: pointer ray does not cross the board plane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logx.NewLogx(&buf, logx.Options{Level: zapcore.DebugLevel})
			s, _ := canonicalStore()
			e := NewEngine(geometry.Default(), tt.ptr, tt.proj, s, l)
			if _, ran := e.Update(800, 600); ran {
				t.Fatal("pass must be skipped")
			}
			_ = l.Sync()
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestOverlappingPiecesAllHighlighted(t *testing.T) {
	s := store.NewStore()
	// both cannons start on (2,1)
	a := s.Add(base.Cannon, base.Red, base.Cell{Row: 2, Column: 1})
	b := s.Add(base.Cannon, base.Black, base.Cell{Row: 2, Column: 1})
	c := s.Add(base.Chariot, base.Red, base.Cell{Row: 0, Column: 0})

	x, y := geometry.Default().CellToWorld(2, 1)
	e := newTestEngine(&fakePointer{x: x, y: y, ok: true}, topDown{}, s)
	res, err := e.Pick(800, 600)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if len(res.Highlighted) != 2 || res.Highlighted[0] != a || res.Highlighted[1] != b {
		t.Errorf("highlighted = %v, want [%v %v]", res.Highlighted, a, b)
	}
	if p, _ := s.Get(c); p.Highlighted {
		t.Error("chariot must not be highlighted")
	}
}

func TestNoMemoryBetweenTicks(t *testing.T) {
	s, _ := canonicalStore()
	g := geometry.Default()
	ptr := &fakePointer{ok: true}
	e := newTestEngine(ptr, topDown{}, s)

	ptr.x, ptr.y = g.CellToWorld(0, 0)
	e.Update(800, 600)
	first := s.Highlighted()

	ptr.x, ptr.y = g.CellToWorld(9, 4)
	e.Update(800, 600)
	second := s.Highlighted()

	if len(first) != 1 || len(second) != 1 || first[0] == second[0] {
		t.Fatalf("first=%v second=%v", first, second)
	}
	if second[0] != handleAt(t, s, 9, 4) {
		t.Errorf("second pick = %v", second)
	}
}

func TestNoProjectorUsesScreenAsWorld(t *testing.T) {
	s, _ := canonicalStore()
	x, y := geometry.Default().CellToWorld(3, 0)
	e := newTestEngine(&fakePointer{x: x, y: y, ok: true}, nil, s)
	res, ran := e.Update(800, 600)
	if !ran {
		t.Fatal("pass skipped")
	}
	if res.WorldX != x || res.WorldY != y {
		t.Errorf("world = (%v,%v), want (%v,%v)", res.WorldX, res.WorldY, x, y)
	}
	if len(res.Highlighted) != 1 || res.Highlighted[0] != handleAt(t, s, 3, 0) {
		t.Errorf("highlighted = %v", res.Highlighted)
	}

	e.SetProjector(parallel{})
	if _, err := e.Pick(800, 600); !errors.Is(err, ErrDegenerateProjection) {
		t.Errorf("after SetProjector err = %v", err)
	}
}
