package cobra

import "testing"

func TestDisjunctionEntailsOtherSideWhenOneSideFails(t *testing.T) {
	m := NewModel()
	u := m.NewVariable("U", 0, 10)
	v := m.NewVariable("V", 0, 10)
	m.trail.Push()

	// Ordering(m, u, 3, v, 4) posts u>=v+4 (Const[0]) XOR v>=u+3 (Const[1]).
	d, err := Ordering(m, u, 3, v, 4)
	if err != nil {
		t.Fatalf("Ordering = %v, want nil", err)
	}
	if d.Active != True {
		t.Fatalf("Active = %v, want True before either side is settled", d.Active)
	}

	// Raising U's lower bound to 8 makes v>=u+3 (Const[1]) impossible, since
	// v can never exceed 10 and 8+3=11: the disjunction should constructively
	// tell the other side, u>=v+4.
	if err := u.IsGE(8); err != nil {
		t.Fatal(err)
	}
	if d.Right != False {
		t.Fatalf("Right = %v, want False once v>=u+3 became impossible", d.Right)
	}
	if d.Left != True {
		t.Fatalf("Left = %v, want True (constructively told)", d.Left)
	}
	if d.Active != False {
		t.Fatalf("Active = %v, want False once settled", d.Active)
	}
	if u.Inf < v.Inf+4 {
		t.Fatalf("U.Inf=%d, V.Inf=%d: u >= v+4 was not enforced", u.Inf, v.Inf)
	}
}

func TestDisjunctionSettledLeft(t *testing.T) {
	m := NewModel()
	u := m.NewVariable("U", 0, 10)
	v := m.NewVariable("V", 0, 10)
	m.trail.Push()
	d, err := Ordering(m, u, 3, v, 4)
	if err != nil {
		t.Fatal(err)
	}
	m.trail.Push()
	if err := d.Settled(true); err != nil {
		t.Fatalf("Settled(true) = %v, want nil", err)
	}
	if d.Left != True || d.Right != False {
		t.Fatalf("Left=%v Right=%v, want True/False", d.Left, d.Right)
	}
	if u.Inf < v.Inf+4 {
		t.Fatalf("left side (u >= v+4) not enforced: U.Inf=%d V.Inf=%d", u.Inf, v.Inf)
	}
}

func TestDisjunctionSettledRight(t *testing.T) {
	m := NewModel()
	u := m.NewVariable("U", 0, 10)
	v := m.NewVariable("V", 0, 10)
	m.trail.Push()
	d, err := Ordering(m, u, 3, v, 4)
	if err != nil {
		t.Fatal(err)
	}
	m.trail.Push()
	if err := d.Settled(false); err != nil {
		t.Fatalf("Settled(false) = %v, want nil", err)
	}
	if d.Left != False || d.Right != True {
		t.Fatalf("Left=%v Right=%v, want False/True", d.Left, d.Right)
	}
	if v.Inf < u.Inf+3 {
		t.Fatalf("right side (v >= u+3) not enforced: U.Inf=%d V.Inf=%d", u.Inf, v.Inf)
	}
}

func TestDisjunctionBacktrackUndoesSettled(t *testing.T) {
	m := NewModel()
	u := m.NewVariable("U", 0, 10)
	v := m.NewVariable("V", 0, 10)
	m.trail.Push()
	d, err := Ordering(m, u, 3, v, 4)
	if err != nil {
		t.Fatal(err)
	}
	m.trail.Push()
	if err := d.Settled(true); err != nil {
		t.Fatal(err)
	}
	m.trail.Back()
	if d.Left != Unknown || d.Right != Unknown || d.Active != True {
		t.Fatalf("Left=%v Right=%v Active=%v after Back, want Unknown/Unknown/True", d.Left, d.Right, d.Active)
	}
	if u.Inf != 0 || v.Inf != 0 {
		t.Fatalf("domains not restored: U.Inf=%d V.Inf=%d", u.Inf, v.Inf)
	}
}

func TestDisjunctionAskReflectsUndecidedChildren(t *testing.T) {
	m := NewModel()
	u := m.NewVariable("U", 0, 10)
	v := m.NewVariable("V", 0, 10)
	m.trail.Push()
	d, err := Ordering(m, u, 3, v, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Ask(); got != Unknown {
		t.Fatalf("Ask() = %v, want Unknown while both sides remain undecided", got)
	}
}
