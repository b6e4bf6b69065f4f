package cobra

import "testing"

func TestVariableIsGE(t *testing.T) {
	tests := []struct {
		name    string
		inf     int
		sup     int
		x       int
		wantErr bool
		wantInf int
	}{
		{"no-op below inf", 3, 10, 1, false, 3},
		{"tightens", 3, 10, 5, false, 5},
		{"exact sup still ok", 3, 10, 10, false, 10},
		{"above sup fails", 3, 10, 11, true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			v := m.NewVariable("X", tt.inf, tt.sup)
			m.trail.Push()
			err := v.IsGE(tt.x)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("IsGE(%d) on [%d,%d] = nil, want error", tt.x, tt.inf, tt.sup)
				}
				return
			}
			if err != nil {
				t.Fatalf("IsGE(%d) on [%d,%d] = %v, want nil", tt.x, tt.inf, tt.sup, err)
			}
			if v.Inf != tt.wantInf {
				t.Errorf("Inf = %d, want %d", v.Inf, tt.wantInf)
			}
		})
	}
}

func TestVariableIsLE(t *testing.T) {
	m := NewModel()
	v := m.NewVariable("X", 0, 10)
	m.trail.Push()
	if err := v.IsLE(4); err != nil {
		t.Fatalf("IsLE(4) = %v, want nil", err)
	}
	if v.Sup != 4 {
		t.Errorf("Sup = %d, want 4", v.Sup)
	}
	if err := v.IsLE(-1); err == nil {
		t.Fatal("IsLE(-1) below Inf should fail")
	}
}

func TestVariableIsEQ(t *testing.T) {
	m := NewModel()
	v := m.NewVariable("X", 0, 10)
	m.trail.Push()
	if err := v.IsEQ(7); err != nil {
		t.Fatalf("IsEQ(7) = %v, want nil", err)
	}
	if !v.IsFixed() || v.Inf != 7 {
		t.Fatalf("v = %v, want fixed at 7", v)
	}
	if err := v.IsEQ(3); err == nil {
		t.Fatal("IsEQ(3) on a variable fixed at 7 should fail")
	}
}

func TestVariableIsNEQ(t *testing.T) {
	m := NewModel()
	v := m.NewVariable("X", 0, 10)
	m.trail.Push()

	if err := v.IsNEQ(5); err != nil {
		t.Fatalf("IsNEQ(5) (interior value) = %v, want nil", err)
	}
	if v.Inf != 0 || v.Sup != 10 {
		t.Fatalf("interior exclusion should be a no-op, got [%d,%d]", v.Inf, v.Sup)
	}

	if err := v.IsNEQ(0); err != nil {
		t.Fatalf("IsNEQ(0) = %v, want nil", err)
	}
	if v.Inf != 1 {
		t.Errorf("Inf = %d, want 1 after excluding the lower bound", v.Inf)
	}

	if err := v.IsNEQ(10); err != nil {
		t.Fatalf("IsNEQ(10) = %v, want nil", err)
	}
	if v.Sup != 9 {
		t.Errorf("Sup = %d, want 9 after excluding the upper bound", v.Sup)
	}
}

func TestVariableBacktrackRestoresDomain(t *testing.T) {
	m := NewModel()
	v := m.NewVariable("X", 0, 10)

	m.trail.Push()
	if err := v.IsGE(4); err != nil {
		t.Fatalf("IsGE(4) = %v, want nil", err)
	}
	if v.Inf != 4 {
		t.Fatalf("Inf = %d, want 4", v.Inf)
	}
	m.trail.Back()
	if v.Inf != 0 || v.Sup != 10 {
		t.Fatalf("after Back, v = [%d,%d], want [0,10]", v.Inf, v.Sup)
	}
}

// notingConstraint records every notification it receives, for asserting
// that Variable's bound changes propagate to subscribers in the expected
// order and with the expected method.
type notingConstraint struct {
	calls []string
}

func (c *notingConstraint) IncMin(slot int) error { c.calls = append(c.calls, "IncMin"); return nil }
func (c *notingConstraint) DecMax(slot int) error { c.calls = append(c.calls, "DecMax"); return nil }
func (c *notingConstraint) SetVal(slot int) error { c.calls = append(c.calls, "SetVal"); return nil }
func (c *notingConstraint) Ask() Tri              { return Unknown }
func (c *notingConstraint) Tell() error           { return nil }
func (c *notingConstraint) ComputeWeight() int    { return 0 }
func (c *notingConstraint) ComputeProximity() int { return 0 }

func TestVariableNotifiesSubscribersOnBoundChange(t *testing.T) {
	m := NewModel()
	v := m.NewVariable("X", 0, 10)
	c := &notingConstraint{}
	v.subscribe(c, 1)

	m.trail.Push()
	if err := v.IsGE(3); err != nil {
		t.Fatalf("IsGE(3) = %v, want nil", err)
	}
	if len(c.calls) != 1 || c.calls[0] != "IncMin" {
		t.Fatalf("calls = %v, want [IncMin]", c.calls)
	}

	if err := v.IsLE(7); err != nil {
		t.Fatalf("IsLE(7) = %v, want nil", err)
	}
	if len(c.calls) != 2 || c.calls[1] != "DecMax" {
		t.Fatalf("calls = %v, want [IncMin DecMax]", c.calls)
	}

	if err := v.IsEQ(5); err != nil {
		t.Fatalf("IsEQ(5) = %v, want nil", err)
	}
	if len(c.calls) != 3 || c.calls[2] != "SetVal" {
		t.Fatalf("calls = %v, want [IncMin DecMax SetVal]", c.calls)
	}
}

func TestVariableQueryHelpers(t *testing.T) {
	m := NewModel()
	v := m.NewVariable("X", 2, 8)

	if v.canNotBe(1) != true {
		t.Error("canNotBe(1) = false, want true")
	}
	if v.canBe(5) != true {
		t.Error("canBe(5) = false, want true")
	}
	if v.canBeLess(1) != false {
		t.Error("canBeLess(1) = true, want false")
	}
	if v.canBeMore(9) != false {
		t.Error("canBeMore(9) = true, want false")
	}
	if v.isIt(5) != false {
		t.Error("isIt(5) on an unfixed variable = true, want false")
	}
}
