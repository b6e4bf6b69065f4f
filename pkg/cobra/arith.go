package cobra

import "fmt"

// NEQXYConstraint enforces U != V + C over bounds: it forbids a value on one
// side only once the other side becomes fixed (forbidding a single interior
// value is otherwise a no-op, per the bound-only domain representation).
type NEQXYConstraint struct {
	U, V *Variable
	C    int
}

func newNEQXY(u, v *Variable, c int) *NEQXYConstraint { return &NEQXYConstraint{U: u, V: v, C: c} }

// NEQXY posts U != V + C, subscribing both variables.
func NEQXY(u, v *Variable, c int) (*NEQXYConstraint, error) {
	n := newNEQXY(u, v, c)
	u.subscribe(n, 1)
	v.subscribe(n, 2)
	if err := n.Tell(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *NEQXYConstraint) String() string {
	return fmt.Sprintf("%s != %s + %d", n.U.Name, n.V.Name, n.C)
}
func (n *NEQXYConstraint) participantVars() []*Variable { return []*Variable{n.U, n.V} }

func (n *NEQXYConstraint) recheck() error {
	if n.U.Inf == n.U.Sup {
		return n.V.IsNEQ(n.U.Inf - n.C)
	}
	if n.V.Inf == n.V.Sup {
		return n.U.IsNEQ(n.V.Inf + n.C)
	}
	return nil
}

func (n *NEQXYConstraint) IncMin(slot int) error { return n.recheck() }
func (n *NEQXYConstraint) DecMax(slot int) error { return n.recheck() }

func (n *NEQXYConstraint) SetVal(slot int) error {
	if slot == 1 {
		return n.V.IsNEQ(n.U.Inf - n.C)
	}
	return n.U.IsNEQ(n.V.Inf + n.C)
}

func (n *NEQXYConstraint) ComputeWeight() int    { return absInt(n.C) }
func (n *NEQXYConstraint) ComputeProximity() int { return absInt(n.C) }

func (n *NEQXYConstraint) Ask() Tri {
	if n.U.Sup < n.V.Inf+n.C || n.V.Sup < n.U.Inf-n.C {
		return True
	}
	if n.U.Inf == n.U.Sup && n.V.Inf == n.V.Sup && n.U.Inf == n.V.Inf+n.C {
		return False
	}
	return Unknown
}

func (n *NEQXYConstraint) Tell() error { return n.recheck() }

// GEXYConstraint enforces U >= V + C over bounds.
type GEXYConstraint struct {
	U, V *Variable
	C    int
}

func newGEXY(u, v *Variable, c int) *GEXYConstraint { return &GEXYConstraint{U: u, V: v, C: c} }

// GEXY posts U >= V + C, subscribing both variables.
func GEXY(u, v *Variable, c int) (*GEXYConstraint, error) {
	g := newGEXY(u, v, c)
	u.subscribe(g, 1)
	v.subscribe(g, 2)
	if err := g.Tell(); err != nil {
		return nil, err
	}
	return g, nil
}

// StrictGEXY posts U > V + C, i.e. U >= V + C + 1.
func StrictGEXY(u, v *Variable, c int) (*GEXYConstraint, error) { return GEXY(u, v, c+One) }

// StrictLEXY posts U < V + C, i.e. V >= U - C + 1.
func StrictLEXY(u, v *Variable, c int) (*GEXYConstraint, error) { return GEXY(v, u, -c+One) }

func (g *GEXYConstraint) String() string {
	return fmt.Sprintf("%s >= %s + %d", g.U.Name, g.V.Name, g.C)
}
func (g *GEXYConstraint) participantVars() []*Variable { return []*Variable{g.U, g.V} }

func (g *GEXYConstraint) IncMin(slot int) error {
	if slot == 2 {
		return g.U.IsGE(g.V.Inf + g.C)
	}
	return nil
}

func (g *GEXYConstraint) DecMax(slot int) error {
	if slot == 1 {
		return g.V.IsLE(g.U.Sup - g.C)
	}
	return nil
}

func (g *GEXYConstraint) SetVal(slot int) error {
	if slot == 1 {
		return g.V.IsLE(g.U.Inf - g.C)
	}
	return g.U.IsGE(g.V.Inf + g.C)
}

func (g *GEXYConstraint) ComputeWeight() int    { return absInt(g.C) }
func (g *GEXYConstraint) ComputeProximity() int { return absInt(g.U.Inf - g.V.Inf) }

func (g *GEXYConstraint) Ask() Tri {
	if g.U.Sup < g.V.Inf+g.C {
		return False
	}
	if g.U.Inf >= g.V.Sup+g.C {
		return True
	}
	return Unknown
}

func (g *GEXYConstraint) Tell() error {
	if err := g.U.IsGE(g.V.Inf + g.C); err != nil {
		return err
	}
	return g.V.IsLE(g.U.Sup - g.C)
}

// LEXYConstraint enforces U <= V + C over bounds.
type LEXYConstraint struct {
	U, V *Variable
	C    int
}

func newLEXY(u, v *Variable, c int) *LEXYConstraint { return &LEXYConstraint{U: u, V: v, C: c} }

// LEXY posts U <= V + C, subscribing both variables.
func LEXY(u, v *Variable, c int) (*LEXYConstraint, error) {
	l := newLEXY(u, v, c)
	u.subscribe(l, 1)
	v.subscribe(l, 2)
	if err := l.Tell(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *LEXYConstraint) String() string {
	return fmt.Sprintf("%s <= %s + %d", l.U.Name, l.V.Name, l.C)
}
func (l *LEXYConstraint) participantVars() []*Variable { return []*Variable{l.U, l.V} }

func (l *LEXYConstraint) IncMin(slot int) error {
	if slot == 1 {
		return l.V.IsGE(l.U.Inf - l.C)
	}
	return nil
}

func (l *LEXYConstraint) DecMax(slot int) error {
	if slot == 2 {
		return l.U.IsLE(l.V.Sup + l.C)
	}
	return nil
}

func (l *LEXYConstraint) SetVal(slot int) error {
	if slot == 1 {
		return l.V.IsGE(l.U.Inf - l.C)
	}
	return l.U.IsLE(l.V.Sup + l.C)
}

func (l *LEXYConstraint) ComputeWeight() int    { return absInt(l.C) }
func (l *LEXYConstraint) ComputeProximity() int { return absInt(l.U.Inf - l.V.Inf) }

func (l *LEXYConstraint) Ask() Tri {
	if l.V.Inf >= l.U.Sup+l.C {
		return True
	}
	if l.V.Sup < l.U.Inf+l.C {
		return False
	}
	return Unknown
}

func (l *LEXYConstraint) Tell() error {
	if err := l.U.IsLE(l.V.Sup + l.C); err != nil {
		return err
	}
	return l.V.IsGE(l.U.Inf - l.C)
}

// EQXYConstraint enforces U == V + C over bounds.
type EQXYConstraint struct {
	U, V *Variable
	C    int
}

func newEQXY(u, v *Variable, c int) *EQXYConstraint { return &EQXYConstraint{U: u, V: v, C: c} }

// EQXY posts U == V + C, subscribing both variables.
func EQXY(u, v *Variable, c int) (*EQXYConstraint, error) {
	e := newEQXY(u, v, c)
	u.subscribe(e, 1)
	v.subscribe(e, 2)
	if err := e.Tell(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *EQXYConstraint) String() string {
	return fmt.Sprintf("%s == %s + %d", e.U.Name, e.V.Name, e.C)
}
func (e *EQXYConstraint) participantVars() []*Variable { return []*Variable{e.U, e.V} }

func (e *EQXYConstraint) IncMin(slot int) error {
	if slot == 1 {
		return e.V.IsGE(e.U.Inf - e.C)
	}
	return e.U.IsGE(e.V.Inf + e.C)
}

func (e *EQXYConstraint) DecMax(slot int) error {
	if slot == 1 {
		return e.V.IsLE(e.U.Sup - e.C)
	}
	return e.U.IsLE(e.V.Sup + e.C)
}

func (e *EQXYConstraint) SetVal(slot int) error {
	if slot == 1 {
		return e.V.IsEQ(e.U.Inf - e.C)
	}
	return e.U.IsEQ(e.V.Inf + e.C)
}

func (e *EQXYConstraint) ComputeWeight() int    { return absInt(e.C) }
func (e *EQXYConstraint) ComputeProximity() int { return absInt(e.U.Inf - e.V.Inf) }

func (e *EQXYConstraint) Ask() Tri {
	if e.U.Sup < e.V.Inf+e.C || e.U.Inf > e.V.Sup+e.C {
		return False
	}
	if e.U.Inf == e.U.Sup && e.V.Inf == e.V.Sup && e.U.Inf == e.V.Inf+e.C {
		return True
	}
	return Unknown
}

func (e *EQXYConstraint) Tell() error {
	if err := e.IncMin(1); err != nil {
		return err
	}
	if err := e.DecMax(1); err != nil {
		return err
	}
	if err := e.IncMin(2); err != nil {
		return err
	}
	return e.DecMax(2)
}

// EQXYZConstraint enforces U + V == W + C over bounds, the only ternary
// arithmetic form this engine supports.
type EQXYZConstraint struct {
	U, V, W *Variable
	C       int
}

func newEQXYZ(u, v, w *Variable, c int) *EQXYZConstraint {
	return &EQXYZConstraint{U: u, V: v, W: w, C: c}
}

// EQXYZ posts U + V == W + C, subscribing all three variables.
func EQXYZ(u, v, w *Variable, c int) (*EQXYZConstraint, error) {
	e := newEQXYZ(u, v, w, c)
	u.subscribe(e, 1)
	v.subscribe(e, 2)
	w.subscribe(e, 3)
	if err := e.Tell(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *EQXYZConstraint) String() string {
	return fmt.Sprintf("%s + %s == %s + %d", e.U.Name, e.V.Name, e.W.Name, e.C)
}
func (e *EQXYZConstraint) participantVars() []*Variable { return []*Variable{e.U, e.V, e.W} }

func (e *EQXYZConstraint) IncMin(slot int) error {
	switch slot {
	case 1:
		if err := e.W.IsGE(e.U.Inf + e.V.Inf - e.C); err != nil {
			return err
		}
		return e.V.IsLE(e.W.Sup + e.C - e.U.Inf)
	case 2:
		if err := e.W.IsGE(e.V.Inf + e.U.Inf - e.C); err != nil {
			return err
		}
		return e.U.IsLE(e.W.Sup + e.C - e.V.Inf)
	default:
		if err := e.U.IsGE(e.W.Inf + e.C - e.V.Sup); err != nil {
			return err
		}
		return e.V.IsGE(e.W.Inf + e.C - e.U.Sup)
	}
}

func (e *EQXYZConstraint) DecMax(slot int) error {
	switch slot {
	case 1:
		if err := e.W.IsLE(e.U.Sup + e.V.Sup - e.C); err != nil {
			return err
		}
		return e.V.IsGE(e.W.Inf + e.C - e.U.Sup)
	case 2:
		if err := e.W.IsLE(e.V.Sup + e.U.Sup - e.C); err != nil {
			return err
		}
		return e.U.IsGE(e.W.Inf + e.C - e.V.Sup)
	default:
		if err := e.U.IsLE(e.W.Sup + e.C - e.V.Inf); err != nil {
			return err
		}
		return e.V.IsLE(e.W.Sup + e.C - e.U.Inf)
	}
}

func (e *EQXYZConstraint) SetVal(slot int) error {
	switch slot {
	case 1:
		if err := e.V.IsGE(e.W.Inf + e.C - e.U.Inf); err != nil {
			return err
		}
		if err := e.V.IsLE(e.W.Sup + e.C - e.U.Inf); err != nil {
			return err
		}
		if err := e.W.IsGE(e.U.Inf + e.V.Inf - e.C); err != nil {
			return err
		}
		return e.W.IsLE(e.U.Inf + e.V.Sup - e.C)
	case 2:
		if err := e.U.IsGE(e.W.Inf + e.C - e.V.Inf); err != nil {
			return err
		}
		if err := e.U.IsLE(e.W.Sup + e.C - e.V.Inf); err != nil {
			return err
		}
		if err := e.W.IsGE(e.V.Inf + e.U.Inf - e.C); err != nil {
			return err
		}
		return e.W.IsLE(e.V.Inf + e.U.Sup - e.C)
	default:
		if err := e.U.IsGE(e.W.Inf + e.C - e.V.Sup); err != nil {
			return err
		}
		if err := e.U.IsLE(e.W.Inf + e.C - e.V.Inf); err != nil {
			return err
		}
		if err := e.V.IsGE(e.W.Inf + e.C - e.U.Sup); err != nil {
			return err
		}
		return e.V.IsLE(e.W.Inf + e.C - e.U.Inf)
	}
}

func (e *EQXYZConstraint) ComputeWeight() int    { return absInt(e.C) }
func (e *EQXYZConstraint) ComputeProximity() int { return absInt(e.C) }

func (e *EQXYZConstraint) Ask() Tri {
	if e.W.Sup+e.C < e.U.Inf+e.V.Inf || e.W.Inf+e.C > e.U.Sup+e.V.Sup {
		return False
	}
	if e.U.Inf == e.U.Sup && e.V.Inf == e.V.Sup && e.W.Inf == e.W.Sup && e.W.Inf+e.C == e.U.Inf+e.V.Inf {
		return True
	}
	return Unknown
}

func (e *EQXYZConstraint) Tell() error {
	if err := e.U.IsGE(e.W.Inf + e.C - e.V.Sup); err != nil {
		return err
	}
	if err := e.U.IsLE(e.W.Sup + e.C - e.V.Inf); err != nil {
		return err
	}
	if err := e.V.IsGE(e.W.Inf + e.C - e.U.Sup); err != nil {
		return err
	}
	if err := e.V.IsLE(e.W.Sup + e.C - e.U.Inf); err != nil {
		return err
	}
	if err := e.W.IsGE(e.V.Inf + e.U.Inf - e.C); err != nil {
		return err
	}
	return e.W.IsLE(e.V.Sup + e.U.Sup - e.C)
}
