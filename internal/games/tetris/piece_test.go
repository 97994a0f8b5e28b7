package tetris

import "testing"

// seqRand returns a fixed sequence of values, wrapping around.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

func TestRotationIdentity(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			orig := NewPiece(k, 10).Shape
			s := orig
			for i := 0; i < 4; i++ {
				s = s.Rotated()
			}
			if !s.Equal(orig) {
				t.Errorf("four rotations = %s, want %s", s, orig)
			}
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindI, "#/#/#/#"},
		{KindO, "##/##"},
		{KindT, ".#/##/.#"},
		{KindL, "##/.#/.#"},
		{KindJ, ".#/.#/##"},
		{KindS, "#./##/.#"},
		{KindZ, ".#/##/#."},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := NewPiece(tt.kind, 10).RotatedShape().String()
			if got != tt.want {
				t.Errorf("rotated %s = %s, want %s", tt.kind, got, tt.want)
			}
		})
	}
}

func TestRotatedShapeDoesNotMutate(t *testing.T) {
	p := NewPiece(KindT, 10)
	before := p.Shape.String()

	rotated := p.RotatedShape()
	rotated[0][0] = !rotated[0][0]

	if got := p.Shape.String(); got != before {
		t.Errorf("piece shape changed to %s, want %s", got, before)
	}
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{10, 3},
		{12, 4},
		{4, 0},
		{7, 1},
	}

	for _, tt := range tests {
		if got := SpawnColumn(tt.width); got != tt.want {
			t.Errorf("SpawnColumn(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestSpawnUsesRandomizer(t *testing.T) {
	rng := &seqRand{vals: []int{0, 1, 2, 3, 4, 5, 6}}
	for want := Kind(0); want < KindCount; want++ {
		p := Spawn(rng, 10)
		if p.Kind != want {
			t.Errorf("Spawn kind = %s, want %s", p.Kind, want)
		}
		if p.Color != shapeDefs[want].color {
			t.Errorf("%s color = %v, want %v", want, p.Color, shapeDefs[want].color)
		}
		if p.X != 3 || p.Y != 0 {
			t.Errorf("%s spawned at (%d,%d), want (3,0)", want, p.X, p.Y)
		}
	}
}

func TestSpawnedShapesAreIndependent(t *testing.T) {
	a := NewPiece(KindI, 10)
	a.Shape[0][0] = false

	b := NewPiece(KindI, 10)
	if !b.Shape[0][0] {
		t.Error("mutating one piece changed the shared shape definition")
	}
}
