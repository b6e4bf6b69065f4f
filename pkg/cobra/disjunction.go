package cobra

import "fmt"

// Disjunction is the reified exclusive-disjunction metaconstraint: exactly
// one of two child constraints holds. It propagates constructively: once
// one side is proved impossible, the other side is told immediately, not
// merely assumed.
//
// Left, Right, and Active are trailed tri-valued flags. The invariant:
// Active == False implies exactly one of Left, Right is True and the other
// False; Active == True implies at least one of them is Unknown.
type Disjunction struct {
	Const [2]Constraint

	// Offset is the number of slot indices Const[0] consumes. A slot i
	// belongs to the left child when i <= Offset, to the right child
	// otherwise (after subtracting Offset).
	Offset int

	Left   Tri // stored
	Right  Tri // stored
	Active Tri // stored

	// Weight and Proximity are precomputed from the children once, at
	// construction, and never change across search.
	Weight    int
	Proximity int

	model *Model
}

// Ordering models the two possible sequencings of two tasks competing for a
// shared resource: either v2 starts at least d2 after v1, or v1 starts at
// least d1 after v2.
func Ordering(m *Model, v1 *Variable, d1 int, v2 *Variable, d2 int) (*Disjunction, error) {
	return NewDisjunction(m, newGEXY(v1, v2, d2), newGEXY(v2, v1, d1))
}

// NewDisjunction posts c1 XOR c2 against the model: it links both children's
// participating variables to the Disjunction itself (not to the children
// directly) and tells the disjunction, which may immediately entail one
// side if the other asks False.
func NewDisjunction(m *Model, c1, c2 Constraint) (*Disjunction, error) {
	m.guardBuildPhase()
	d := &Disjunction{
		Const:  [2]Constraint{c1, c2},
		Left:   Unknown,
		Right:  Unknown,
		Active: Unknown,
		model:  m,
	}
	d.Weight = d.ComputeWeight()
	d.Proximity = d.ComputeProximity()
	m.registerDisjunction(d)
	d.link(d, 0)
	if err := d.Tell(); err != nil {
		return nil, err
	}
	return d, nil
}

// link walks the constraint tree rooted at c, registering (self, slot) on
// every participating variable, and recording the number of slots the first
// child of any nested Disjunction consumes as that Disjunction's own Offset.
// j is the running slot counter; link returns the counter after consuming c.
func (self *Disjunction) link(c Constraint, j int) int {
	if nested, ok := c.(*Disjunction); ok {
		j2 := self.link(nested.Const[0], j)
		nested.Offset = j2 - j
		j2 = self.link(nested.Const[1], j2)
		return j2
	}
	if up, ok := c.(unaryParticipant); ok {
		j++
		up.participantVar().subscribe(self, j)
		return j
	}
	if ap, ok := c.(arithParticipant); ok {
		for _, v := range ap.participantVars() {
			j++
			v.subscribe(self, j)
		}
		return j
	}
	panic(fmt.Sprintf("cobra: disjunction child %T is neither unary, arithmetic, nor a nested disjunction", c))
}

func (d *Disjunction) String() string {
	activity := "Not active"
	if d.Active == True {
		activity = "Active"
	}
	return fmt.Sprintf("%s OR %s (%s), (l,r)=(%s,%s)", d.Const[0], d.Const[1], activity, d.Left, d.Right)
}

func (d *Disjunction) IncMin(i int) error {
	if i <= d.Offset {
		if d.Right != Unknown {
			if d.Right == False {
				return d.Const[0].IncMin(i)
			}
			return nil
		}
		return d.checkLeft()
	}
	if d.Left != Unknown {
		if d.Left == False {
			return d.Const[1].IncMin(i - d.Offset)
		}
		return nil
	}
	return d.checkRight()
}

func (d *Disjunction) DecMax(i int) error {
	if i <= d.Offset {
		if d.Right != Unknown {
			if d.Right == False {
				return d.Const[0].DecMax(i)
			}
			return nil
		}
		return d.checkLeft()
	}
	if d.Left != Unknown {
		if d.Left == False {
			return d.Const[1].DecMax(i - d.Offset)
		}
		return nil
	}
	return d.checkRight()
}

func (d *Disjunction) SetVal(i int) error {
	if i <= d.Offset {
		if d.Right != Unknown {
			if d.Right == False {
				return d.Const[0].SetVal(i)
			}
			return nil
		}
		return d.checkLeft()
	}
	if d.Left != Unknown {
		if d.Left == False {
			return d.Const[1].SetVal(i - d.Offset)
		}
		return nil
	}
	return d.checkRight()
}

func (d *Disjunction) Ask() Tri {
	leftOK := d.Left
	if leftOK == Unknown {
		leftOK = d.Const[0].Ask()
	}
	rightOK := d.Right
	if rightOK == Unknown {
		rightOK = d.Const[1].Ask()
	}
	if leftOK == True || rightOK == True {
		return True
	}
	if leftOK == False && rightOK == False {
		return False
	}
	return Unknown
}

func (d *Disjunction) Tell() error {
	Assign(d.model.trail, &d.Active, True)
	if err := d.checkLeft(); err != nil {
		return err
	}
	return d.checkRight()
}

// checkLeft asks the left child; if it resolves, it records the result and,
// when the left side is proved false, constructively tells the right child
// (or fails, if the right side was already proved false too).
func (d *Disjunction) checkLeft() error {
	if d.Left != Unknown {
		return nil
	}
	b := d.Const[0].Ask()
	if b == Unknown {
		return nil
	}
	Assign(d.model.trail, &d.Left, b)
	if b == False {
		if d.Right == False {
			return fail("*** FAIL on %s ***", d)
		}
		Assign(d.model.trail, &d.Right, True)
		if err := d.Const[1].Tell(); err != nil {
			return err
		}
		Assign(d.model.trail, &d.Active, False)
		return nil
	}
	Assign(d.model.trail, &d.Right, False)
	Assign(d.model.trail, &d.Active, False)
	return nil
}

// checkRight is checkLeft's mirror image.
func (d *Disjunction) checkRight() error {
	if d.Right != Unknown {
		return nil
	}
	b := d.Const[1].Ask()
	if b == Unknown {
		return nil
	}
	Assign(d.model.trail, &d.Right, b)
	if b == False {
		if d.Left == False {
			return fail("*** FAIL on %s ***", d)
		}
		Assign(d.model.trail, &d.Left, True)
		if err := d.Const[0].Tell(); err != nil {
			return err
		}
		Assign(d.model.trail, &d.Active, False)
		return nil
	}
	Assign(d.model.trail, &d.Left, False)
	Assign(d.model.trail, &d.Active, False)
	return nil
}

// Settled commits to one side: left==true tries Const[0], left==false tries
// Const[1]. Called by the search's branching step under a fresh trail frame;
// on failure the caller's deferred Trail.Back undoes the flag assignments.
func (d *Disjunction) Settled(left bool) error {
	if d.model.Log.enabled(VerboseLookAhead) {
		d.model.Log.Printf(VerboseLookAhead, "settled: %s %t", d, left)
	}
	if left {
		Assign(d.model.trail, &d.Left, True)
		Assign(d.model.trail, &d.Right, False)
		Assign(d.model.trail, &d.Active, False)
		return d.Const[0].Tell()
	}
	Assign(d.model.trail, &d.Left, False)
	Assign(d.model.trail, &d.Right, True)
	Assign(d.model.trail, &d.Active, False)
	return d.Const[1].Tell()
}

// secondVar returns the second participating variable of Const[side], the
// access pattern the static/dynamic ordering heuristics use to compare two
// disjunctions' earliest start times. It assumes Const[side] is a binary
// arithmetic constraint, true of every disjunction built by Ordering.
func secondVar(d *Disjunction, side int) *Variable {
	if ap, ok := d.Const[side].(arithParticipant); ok {
		return ap.participantVars()[1]
	}
	panic(fmt.Sprintf("cobra: disjunction ordering heuristics require arithmetic children, got %T", d.Const[side]))
}

func (d *Disjunction) ComputeWeight() int {
	return d.Const[0].ComputeWeight() + d.Const[1].ComputeWeight()
}

// ComputeProximity assumes Const[0] and Const[1] share the same pair of
// variables in swapped order, as Ordering always constructs them, so the
// left child's proximity already reflects the whole disjunction.
func (d *Disjunction) ComputeProximity() int {
	return d.Const[0].ComputeProximity()
}
