package cobra

import "testing"

func TestNewIntervalBounds(t *testing.T) {
	m := NewModel()
	iv := m.NewInterval("Task", 5, 10, 50)
	if iv.Est() != 5 {
		t.Errorf("Est() = %d, want 5", iv.Est())
	}
	if iv.Lst() != 40 {
		t.Errorf("Lst() = %d, want 40 (lct-duration)", iv.Lst())
	}
	if iv.Ect() != 15 {
		t.Errorf("Ect() = %d, want 15", iv.Ect())
	}
	if iv.Lct() != 50 {
		t.Errorf("Lct() = %d, want 50", iv.Lct())
	}
}

func TestIntervalPrecedenceHelpers(t *testing.T) {
	m := NewModel()
	a := m.NewInterval("A", 0, 5, 100)
	b := m.NewInterval("B", 0, 3, 100)
	m.trail.Push()

	if _, err := StartBeforeStart(a, b, 2); err != nil {
		t.Fatalf("StartBeforeStart = %v, want nil", err)
	}
	if b.Start.Inf < a.Start.Inf+2 {
		t.Fatalf("a.start+2 <= b.start not enforced: a.Est=%d b.Est=%d", a.Est(), b.Est())
	}
}

func TestIntervalEndBeforeStart(t *testing.T) {
	m := NewModel()
	a := m.NewInterval("A", 0, 5, 100)
	b := m.NewInterval("B", 0, 3, 100)
	m.trail.Push()
	if _, err := EndBeforeStart(a, b, 1); err != nil {
		t.Fatalf("EndBeforeStart = %v, want nil", err)
	}
	if b.Start.Inf < a.Ect()+1 {
		t.Fatalf("a.end+1 <= b.start not enforced: a.Ect=%d b.Est=%d", a.Ect(), b.Est())
	}
}

func TestIntervalStartAtEnd(t *testing.T) {
	m := NewModel()
	a := m.NewInterval("A", 0, 5, 100)
	b := m.NewInterval("B", 0, 3, 100)
	m.trail.Push()
	if _, err := StartAtEnd(a, b, 0); err != nil {
		t.Fatalf("StartAtEnd = %v, want nil", err)
	}
	if err := b.Start.IsEQ(4); err != nil {
		t.Fatal(err)
	}
	if !a.Start.IsFixed() || a.Start.Inf != 4+b.Duration {
		t.Fatalf("a.start == b.start+b.duration not enforced: a=%v", a)
	}
}

func TestIntervalEndAtEnd(t *testing.T) {
	m := NewModel()
	a := m.NewInterval("A", 0, 5, 100)
	b := m.NewInterval("B", 0, 3, 100)
	m.trail.Push()
	if _, err := EndAtEnd(a, b, 0); err != nil {
		t.Fatalf("EndAtEnd = %v, want nil", err)
	}
	if err := b.Start.IsEQ(10); err != nil {
		t.Fatal(err)
	}
	wantAStart := 10 + b.Duration - a.Duration
	if !a.Start.IsFixed() || a.Start.Inf != wantAStart {
		t.Fatalf("a.end == b.end not enforced: a.Start=%d, want %d", a.Start.Inf, wantAStart)
	}
}
