package tinytowns

import (
	"strings"
	"testing"
)

func TestNewPatternPadsShortRows(t *testing.T) {
	p := NewPattern([][]Resource{
		{Stone, Wood},
		{Stone, Wood, Brick},
	})

	if p.Width() != 3 || p.Height() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", p.Width(), p.Height())
	}
	if p.At(2, 0) != None {
		t.Errorf("expected padded cell to be None, got %s", p.At(2, 0))
	}
	if p.At(2, 1) != Brick {
		t.Errorf("expected Brick at (2,1), got %s", p.At(2, 1))
	}
}

func TestPatternAtOutOfRange(t *testing.T) {
	p := NewPattern([][]Resource{{Wood, Stone}})

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 1}} {
		if p.At(pt[0], pt[1]) != None {
			t.Errorf("expected None at (%d,%d)", pt[0], pt[1])
		}
	}
}

func TestPatternEquals(t *testing.T) {
	a := NewPattern([][]Resource{{Wood, Stone}})
	b := NewPattern([][]Resource{{Wood, Stone}})
	c := NewPattern([][]Resource{{Stone, Wood}})
	d := NewPattern([][]Resource{{Wood}, {Stone}})

	if !a.Equals(b) {
		t.Errorf("expected identical patterns to be equal")
	}
	if a.Key() != b.Key() {
		t.Errorf("expected identical patterns to share a key")
	}
	if a.Equals(c) {
		t.Errorf("expected mirrored pattern to differ")
	}
	if a.Equals(d) {
		t.Errorf("expected rotated pattern to differ")
	}
	if a.Equals(nil) {
		t.Errorf("expected nil to never be equal")
	}
}

func TestPatternEqualsRespectsGaps(t *testing.T) {
	a := NewPattern([][]Resource{{None, Stone}})
	b := NewPattern([][]Resource{{Stone, None}})

	if a.Equals(b) {
		t.Errorf("expected gap position to matter")
	}
}

func TestOrientationsCounts(t *testing.T) {
	cases := []struct {
		name string
		give [][]Resource
		want int
	}{
		{
			name: "no-symmetry",
			give: [][]Resource{
				{Stone, Wood, None},
				{Stone, Wood, Brick},
			},
			want: 8,
		},
		{
			name: "domino",
			give: [][]Resource{{Wood, Stone}},
			want: 4,
		},
		{
			name: "mirror-symmetric",
			give: [][]Resource{
				{None, Stone, None},
				{Wood, Glass, Wood},
			},
			want: 4,
		},
		{
			name: "single-cell",
			give: [][]Resource{{Wood}},
			want: 1,
		},
		{
			name: "uniform-square",
			give: [][]Resource{
				{Wood, Wood},
				{Wood, Wood},
			},
			want: 1,
		},
		{
			name: "uniform-rectangle",
			give: [][]Resource{
				{Wood, Wood},
				{Wood, Wood},
				{Wood, Wood},
			},
			want: 2,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPattern(tt.give).Orientations()
			if len(got) != tt.want {
				t.Errorf("expected %d orientations, got %d", tt.want, len(got))
			}
		})
	}
}

func TestOrientationsIncludeSelf(t *testing.T) {
	p := NewPattern([][]Resource{
		{Stone, Wood},
		{Stone, Wood, Brick},
	})

	found := false
	for _, o := range p.Orientations() {
		if o.Equals(p) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected orientations to include the pattern itself")
	}
}

func TestOrientationsPreserveSize(t *testing.T) {
	p := NewPattern([][]Resource{
		{Stone, Wood},
		{Stone, Wood, Brick},
	})

	for _, o := range p.Orientations() {
		if o.Size() != p.Size() {
			t.Errorf("expected size %d, got %d (%dx%d)", p.Size(), o.Size(), o.Width(), o.Height())
		}
	}
}

func TestOrientationsClosure(t *testing.T) {
	// regenerating from any orientation yields the same set
	p := NewPattern([][]Resource{
		{Stone, Wood},
		{Stone, Wood, Brick},
	})

	want := map[string]bool{}
	for _, o := range p.Orientations() {
		want[o.Key()] = true
	}

	for _, o := range p.Orientations() {
		got := map[string]bool{}
		for _, oo := range o.Orientations() {
			got[oo.Key()] = true
		}

		if len(got) != len(want) {
			t.Fatalf("expected %d orientations, got %d", len(want), len(got))
		}
		for k := range want {
			if !got[k] {
				t.Errorf("expected orientation set to be closed under regeneration")
			}
		}
	}
}

func TestOrientationsDeterministicOrder(t *testing.T) {
	p := NewPattern([][]Resource{
		{Stone, Wood},
		{Stone, Wood, Brick},
	})

	a := p.Orientations()
	b := p.Orientations()

	if len(a) != len(b) {
		t.Fatalf("expected stable length, got %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			t.Errorf("expected stable order at %d", i)
		}
	}
}

func TestPatternString(t *testing.T) {
	p := NewPattern([][]Resource{
		{None, Stone, None},
		{Wood, Glass, Wood},
	})

	want := ".. St .. \nWd Gs Wd \n"
	if p.String() != want {
		t.Errorf("expected %q, got %q", want, p.String())
	}
	if !strings.Contains(p.String(), "St") {
		t.Errorf("expected short codes in output")
	}
}
