package extrude

import "testing"

func TestPoint2Arithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)

	tests := []struct {
		name string
		got  Point2
		want Point2
	}{
		{"Add", p.Add(q), Pt(4, 2)},
		{"Sub", p.Sub(q), Pt(2, 6)},
		{"Mul", p.Mul(2), Pt(6, 8)},
		{"Div", p.Div(2), Pt(1.5, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPoint2Products(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, -2)
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot() = %v, want -5", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Cross() = %v, want -10", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared() = %v, want 25", got)
	}
}

func TestPoint2Lift(t *testing.T) {
	if got, want := Pt(1, 2).Lift(-0.5), Pt3(1, 2, -0.5); got != want {
		t.Errorf("Lift() = %v, want %v", got, want)
	}
}
