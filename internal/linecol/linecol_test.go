package linecol

import "testing"

func TestPositionLess(t *testing.T) {
	cases := []struct {
		name string
		a, b Position
		want bool
	}{
		{"earlier line", Position{Line: 1, Column: 5}, Position{Line: 2, Column: 0}, true},
		{"same line, earlier column", Position{Line: 1, Column: 1}, Position{Line: 1, Column: 2}, true},
		{"equal", Position{Line: 1, Column: 1}, Position{Line: 1, Column: 1}, false},
		{"later line", Position{Line: 3, Column: 0}, Position{Line: 2, Column: 9}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Less(c.b); got != c.want {
				t.Errorf("(%v).Less(%v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestRangeContainsPosition(t *testing.T) {
	r := Range{Begin: Position{Line: 1, Column: 2}, End: Position{Line: 1, Column: 5}}
	if !r.ContainsPosition(Position{Line: 1, Column: 2}) {
		t.Errorf("range should contain its own begin (half-open, inclusive of Begin)")
	}
	if r.ContainsPosition(Position{Line: 1, Column: 5}) {
		t.Errorf("range should not contain its End (half-open, exclusive)")
	}
	if !r.ContainsPosition(Position{Line: 1, Column: 4}) {
		t.Errorf("range should contain a position strictly inside it")
	}
}

func TestRangeIntersection(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Range
		wantBeg  Position
		wantEnd  Position
		wantZero bool
	}{
		{
			name:    "overlapping",
			a:       Range{Begin: Position{Line: 0, Column: 0}, End: Position{Line: 0, Column: 10}},
			b:       Range{Begin: Position{Line: 0, Column: 5}, End: Position{Line: 0, Column: 15}},
			wantBeg: Position{Line: 0, Column: 5},
			wantEnd: Position{Line: 0, Column: 10},
		},
		{
			name:    "a contains b",
			a:       Range{Begin: Position{Line: 0, Column: 0}, End: Position{Line: 0, Column: 20}},
			b:       Range{Begin: Position{Line: 0, Column: 5}, End: Position{Line: 0, Column: 15}},
			wantBeg: Position{Line: 0, Column: 5},
			wantEnd: Position{Line: 0, Column: 15},
		},
		{
			name:     "disjoint",
			a:        Range{Begin: Position{Line: 0, Column: 0}, End: Position{Line: 0, Column: 5}},
			b:        Range{Begin: Position{Line: 0, Column: 10}, End: Position{Line: 0, Column: 15}},
			wantZero: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.a.Intersection(c.b)
			if c.wantZero {
				if !got.Empty() {
					t.Errorf("Intersection(%v, %v) = %v, want empty", c.a, c.b, got)
				}
				return
			}
			if got.Begin != c.wantBeg || got.End != c.wantEnd {
				t.Errorf("Intersection(%v, %v) = %v, want [%v, %v)", c.a, c.b, got, c.wantBeg, c.wantEnd)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	outer := Range{Begin: Position{Line: 0, Column: 0}, End: Position{Line: 5, Column: 0}}
	inner := Range{Begin: Position{Line: 1, Column: 0}, End: Position{Line: 3, Column: 0}}
	if !outer.Contains(inner) {
		t.Errorf("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Errorf("did not expect inner to contain outer")
	}
}

func TestLineRange(t *testing.T) {
	r := LineRange(2, 4)
	want := Range{Begin: Position{Line: 2}, End: Position{Line: 4}}
	if r != want {
		t.Errorf("LineRange(2, 4) = %v, want %v", r, want)
	}
}
