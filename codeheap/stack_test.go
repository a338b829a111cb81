package codeheap

import (
	"testing"

	"zimvm/value"
)

func TestValueStackStartsAtBottom(t *testing.T) {
	s := NewValueStack()
	if !s.AtBottom() {
		t.Error("a freshly created stack should be at bottom")
	}
}

func TestValueStackPushPop(t *testing.T) {
	s := NewValueStack()
	s.Push(value.Int64(1))
	s.Push(value.Int64(2))
	if s.AtBottom() {
		t.Error("stack should not be at bottom after pushes")
	}
	if got := s.Pop(); got != value.Int64(2) {
		t.Errorf("Pop() = %v, want 2 (LIFO)", got)
	}
	if got := s.Pop(); got != value.Int64(1) {
		t.Errorf("Pop() = %v, want 1", got)
	}
	if !s.AtBottom() {
		t.Error("stack should be back at bottom after popping everything pushed")
	}
}

func TestValueStackReserveFillsUndef(t *testing.T) {
	s := NewValueStack()
	if err := s.Reserve(3); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		idx := s.StackPtr() + i
		if _, ok := s.At(idx).(value.Undef); !ok {
			t.Errorf("reserved slot %d = %v, want value.Undef", i, s.At(idx))
		}
	}
}

func TestValueStackReserveExceedsLimit(t *testing.T) {
	s := NewValueStack()
	if err := s.Reserve(initialStackSize + 1); err == nil {
		t.Error("Reserve past the stack limit should error")
	}
}

func TestValueStackAtSetAt(t *testing.T) {
	s := NewValueStack()
	// stackBottom is one past the end, so reserve a slot before addressing it.
	if err := s.Reserve(1); err != nil {
		t.Fatal(err)
	}
	s.SetBasePtr(s.StackPtr())
	s.SetAt(s.BasePtr(), value.Int64(9))
	if got := s.At(s.BasePtr()); got != value.Int64(9) {
		t.Errorf("At(BasePtr()) = %v, want 9", got)
	}
}
