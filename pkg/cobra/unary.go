package cobra

import "fmt"

// GEConstraint enforces V >= C.
type GEConstraint struct {
	V *Variable
	C int
}

func newGE(v *Variable, c int) *GEConstraint { return &GEConstraint{V: v, C: c} }

// GE posts V >= C against the model: it builds the constraint and tells it
// immediately. A direct constant lower bound needs no further notification
// once told, so GE is never subscribed to V.
func GE(v *Variable, c int) (*GEConstraint, error) {
	g := newGE(v, c)
	if err := g.Tell(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *GEConstraint) String() string              { return fmt.Sprintf("%s >= %d", g.V.Name, g.C) }
func (g *GEConstraint) participantVar() *Variable    { return g.V }
func (g *GEConstraint) IncMin(slot int) error        { return g.V.IsGE(g.C) }
func (g *GEConstraint) DecMax(slot int) error        { return g.V.IsGE(g.C) }
func (g *GEConstraint) SetVal(slot int) error        { return g.V.IsGE(g.C) }
func (g *GEConstraint) ComputeWeight() int           { return absInt(g.C) }
func (g *GEConstraint) ComputeProximity() int        { return absInt(g.C) }
func (g *GEConstraint) Tell() error                  { return g.V.IsGE(g.C) }
func (g *GEConstraint) Ask() Tri {
	if g.V.Inf >= g.C {
		return True
	}
	if g.V.canNotBeMore(g.C) {
		return False
	}
	return Unknown
}

// LEConstraint enforces V <= C.
type LEConstraint struct {
	V *Variable
	C int
}

func newLE(v *Variable, c int) *LEConstraint { return &LEConstraint{V: v, C: c} }

// LE posts V <= C against the model.
func LE(v *Variable, c int) (*LEConstraint, error) {
	l := newLE(v, c)
	if err := l.Tell(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *LEConstraint) String() string           { return fmt.Sprintf("%s <= %d", l.V.Name, l.C) }
func (l *LEConstraint) participantVar() *Variable { return l.V }
func (l *LEConstraint) IncMin(slot int) error     { return l.V.IsLE(l.C) }
func (l *LEConstraint) DecMax(slot int) error     { return l.V.IsLE(l.C) }
func (l *LEConstraint) SetVal(slot int) error     { return l.V.IsLE(l.C) }
func (l *LEConstraint) ComputeWeight() int        { return absInt(l.C) }
func (l *LEConstraint) ComputeProximity() int     { return absInt(l.C) }
func (l *LEConstraint) Tell() error               { return l.V.IsLE(l.C) }
func (l *LEConstraint) Ask() Tri {
	if l.V.Sup <= l.C {
		return True
	}
	if l.V.canNotBeLess(l.C) {
		return False
	}
	return Unknown
}

// EQConstraint enforces V == C.
type EQConstraint struct {
	V *Variable
	C int
}

func newEQ(v *Variable, c int) *EQConstraint { return &EQConstraint{V: v, C: c} }

// EQ posts V == C against the model.
func EQ(v *Variable, c int) (*EQConstraint, error) {
	e := newEQ(v, c)
	if err := e.Tell(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *EQConstraint) String() string           { return fmt.Sprintf("%s == %d", e.V.Name, e.C) }
func (e *EQConstraint) participantVar() *Variable { return e.V }
func (e *EQConstraint) IncMin(slot int) error     { return e.V.IsEQ(e.C) }
func (e *EQConstraint) DecMax(slot int) error     { return e.V.IsEQ(e.C) }
func (e *EQConstraint) SetVal(slot int) error     { return e.V.IsEQ(e.C) }
func (e *EQConstraint) ComputeWeight() int        { return absInt(e.C) }
func (e *EQConstraint) ComputeProximity() int     { return absInt(e.C) }
func (e *EQConstraint) Tell() error               { return e.V.IsEQ(e.C) }
func (e *EQConstraint) Ask() Tri {
	if e.V.isIt(e.C) {
		return True
	}
	if e.V.canNotBe(e.C) {
		return False
	}
	return Unknown
}

// NEQConstraint enforces V != C. Unlike GE/LE/EQ it must resubscribe to V,
// since a later bound change elsewhere can push V's extreme value onto C
// even though V != C was already satisfied when first told.
type NEQConstraint struct {
	V *Variable
	C int
}

func newNEQ(v *Variable, c int) *NEQConstraint { return &NEQConstraint{V: v, C: c} }

// NEQ posts V != C against the model.
func NEQ(v *Variable, c int) (*NEQConstraint, error) {
	n := newNEQ(v, c)
	v.subscribe(n, 1)
	if err := n.Tell(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *NEQConstraint) String() string           { return fmt.Sprintf("%s != %d", n.V.Name, n.C) }
func (n *NEQConstraint) participantVar() *Variable { return n.V }

func (n *NEQConstraint) IncMin(slot int) error {
	if n.V.canBeLess(n.C) {
		return n.V.IsNEQ(n.C)
	}
	return nil
}

func (n *NEQConstraint) DecMax(slot int) error {
	if n.V.canBeMore(n.C) {
		return n.V.IsNEQ(n.C)
	}
	return nil
}

func (n *NEQConstraint) SetVal(slot int) error {
	if n.V.Inf == n.C {
		return fail("*** FAIL on %s ***", n)
	}
	return nil
}

func (n *NEQConstraint) ComputeWeight() int    { return absInt(n.C) }
func (n *NEQConstraint) ComputeProximity() int { return absInt(n.C) }

func (n *NEQConstraint) Ask() Tri {
	if n.V.isIt(n.C) {
		return False
	}
	if n.V.canNotBe(n.C) {
		return True
	}
	return Unknown
}

func (n *NEQConstraint) Tell() error {
	if n.V.canBe(n.C) {
		return n.V.IsNEQ(n.C)
	}
	return nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
