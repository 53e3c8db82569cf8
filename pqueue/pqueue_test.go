package pqueue

import "testing"

func TestIncreaseAndPopMaxOrdersByPriority(t *testing.T) {
	pq := New[string]()
	pq.Increase("a", 3)
	pq.Increase("b", 7)
	pq.Increase("c", 1)
	pq.Increase("a", 5) // a: 3+5=8, now highest

	key, priority, ok := pq.PopMax()
	if !ok || key != "a" || priority != 8 {
		t.Fatalf("PopMax = (%q,%d,%v), want (a,8,true)", key, priority, ok)
	}

	key, priority, ok = pq.PopMax()
	if !ok || key != "b" || priority != 7 {
		t.Fatalf("PopMax = (%q,%d,%v), want (b,7,true)", key, priority, ok)
	}
}

func TestPopMaxEmpty(t *testing.T) {
	pq := New[int]()
	if _, _, ok := pq.PopMax(); ok {
		t.Fatal("PopMax on an empty queue returned ok=true")
	}
}

func TestDecreaseToZeroRemovesKey(t *testing.T) {
	pq := New[string]()
	pq.Increase("x", 4)
	pq.Decrease("x", 4)
	if _, ok := pq.Peek("x"); ok {
		t.Fatal("key with priority 0 should have been removed")
	}
	if pq.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", pq.Len())
	}
}

func TestDecreasePartial(t *testing.T) {
	pq := New[string]()
	pq.Increase("x", 10)
	pq.Decrease("x", 4)
	p, ok := pq.Peek("x")
	if !ok || p != 6 {
		t.Fatalf("Peek(x) = (%d,%v), want (6,true)", p, ok)
	}
}

func TestDecreaseAbsentKeyPanics(t *testing.T) {
	defer func() {
		err := recover()
		if err == nil {
			t.Fatal("Decrease on an absent key did not panic")
		}
		if _, ok := err.(*InvariantViolationError); !ok {
			t.Fatalf("panic value = %v (%T), want *InvariantViolationError", err, err)
		}
	}()
	pq := New[string]()
	pq.Decrease("ghost", 1)
}

func TestDecreaseUnderflowPanics(t *testing.T) {
	defer func() {
		err := recover()
		if err == nil {
			t.Fatal("Decrease underflow did not panic")
		}
		if _, ok := err.(*InvariantViolationError); !ok {
			t.Fatalf("panic value = %v (%T), want *InvariantViolationError", err, err)
		}
	}()
	pq := New[string]()
	pq.Increase("x", 2)
	pq.Decrease("x", 5)
}

func TestFixReordersOnIncrease(t *testing.T) {
	pq := New[int]()
	pq.Increase(1, 1)
	pq.Increase(2, 2)
	pq.Increase(3, 3)
	pq.Increase(1, 10) // 1 now has priority 11, should pop first

	key, _, ok := pq.PopMax()
	if !ok || key != 1 {
		t.Fatalf("PopMax key = %d, want 1", key)
	}
}
