package layout

import (
	"errors"
	"strings"
	"testing"

	"xiangqi/src/base"
	"xiangqi/src/store"
)

func TestPrototype(t *testing.T) {
	l := Prototype()
	if len(l) != 1 {
		t.Fatalf("len = %d", len(l))
	}
	if l[0].Kind != base.Chariot || l[0].Side != base.Red || l[0].Cell != (base.Cell{Row: 0, Column: 0}) {
		t.Errorf("prototype = %+v", l[0])
	}
}

func TestCanonical(t *testing.T) {
	l := Canonical()
	if len(l) != 14 {
		t.Fatalf("len = %d, want 14", len(l))
	}
	seen := map[[2]int]bool{}
	for _, p := range l {
		key := [2]int{int(p.Kind), int(p.Side)}
		if seen[key] {
			t.Errorf("duplicate %v %v", p.Side, p.Kind)
		}
		seen[key] = true
		if !base.IsValidCell(p.Cell) {
			t.Errorf("%v %v outside board: %+v", p.Side, p.Kind, p.Cell)
		}
	}
	if c := StartingCell(base.General, base.Red); c != (base.Cell{Row: 0, Column: 4}) {
		t.Errorf("red general at %+v", c)
	}
	if c := StartingCell(base.General, base.Black); c != (base.Cell{Row: 9, Column: 4}) {
		t.Errorf("black general at %+v", c)
	}
}

func TestApplyAndFromStore(t *testing.T) {
	s := store.NewStore()
	s.Add(base.Pawn, base.Black, base.Cell{Row: 6, Column: 2})
	Canonical().Apply(s)
	if s.Len() != 14 {
		t.Fatalf("Len = %d", s.Len())
	}
	back := FromStore(s)
	want := Canonical()
	for i := range want {
		if back[i] != want[i] {
			t.Errorf("placement %d: %+v want %+v", i, back[i], want[i])
		}
	}
}

func TestParse(t *testing.T) {
	src := `
pieces:
  - {kind: chariot, side: red, row: 0, column: 0}
  - {kind: General, side: black, row: 9, column: 4}
`
	l, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(l) != 2 || l[1].Kind != base.General || l[1].Side != base.Black {
		t.Errorf("layout = %+v", l)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"kind", "pieces: [{kind: queen, side: red, row: 0, column: 0}]", base.ErrUnknownKind},
		{"side", "pieces: [{kind: pawn, side: white, row: 0, column: 0}]", base.ErrUnknownSide},
		{"row", "pieces: [{kind: pawn, side: red, row: 10, column: 0}]", base.ErrCellOutOfRange},
		{"column", "pieces: [{kind: pawn, side: red, row: 0, column: -1}]", base.ErrCellOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := Parse([]byte("pieces: [")); err == nil {
		t.Error("broken yaml must fail")
	}
}

func TestMarshalParse(t *testing.T) {
	data, err := Canonical().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "kind: elephant") {
		t.Errorf("unexpected output:\n%s", data)
	}
	l, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(l) != 14 {
		t.Errorf("len = %d", len(l))
	}
}
