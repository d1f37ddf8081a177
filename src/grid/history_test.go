package grid

import "testing"

func TestHistory(t *testing.T) {
	h := NewHistory(-5)
	if h.Limit() != 0 {
		t.Fatalf("negative limit = %d, want 0", h.Limit())
	}
	if _, ok := h.Pop(); ok {
		t.Fatal("pop on empty history")
	}

	h = NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(createArea(i, 1))
	}
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	for _, want := range []int{5, 4, 3} {
		a, ok := h.Pop()
		if !ok || a.Rows != want {
			t.Fatalf("pop = %d rows, want %d", a.Rows, want)
		}
	}
	if _, ok := h.Peek(); ok {
		t.Fatal("peek after draining")
	}

	h.Push(createArea(1, 1))
	h.Reset()
	if h.Len() != 0 {
		t.Fatal("reset kept snapshots")
	}
}
