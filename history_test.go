package easel

import "testing"

func TestStrokeStackLIFO(t *testing.T) {
	var s strokeStack
	if _, ok := s.pop(); ok {
		t.Error("pop on an empty stack reported ok")
	}

	s.push(Stroke{ID: "a"})
	s.push(Stroke{ID: "b"})
	s.push(Stroke{ID: "c"})
	if s.len() != 3 {
		t.Fatalf("len = %d, want 3", s.len())
	}

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.pop()
		if !ok || got.ID != want {
			t.Errorf("pop = %q (ok=%v), want %q", got.ID, ok, want)
		}
	}

	s.push(Stroke{ID: "d"})
	s.clear()
	if s.len() != 0 {
		t.Errorf("len after clear = %d, want 0", s.len())
	}
}

func TestStrokeStackSnapshotIsDeep(t *testing.T) {
	var s strokeStack
	s.push(Stroke{ID: "a", Points: []Point{Pt(1, 2), Pt(3, 4)}})

	snap := s.snapshot()
	snap[0].Points[0] = Pt(-9, -9)

	again := s.snapshot()
	if again[0].Points[0] != Pt(1, 2) {
		t.Error("mutating a snapshot leaked into the stack")
	}
}
