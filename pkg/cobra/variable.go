package cobra

import "fmt"

// Variable is a named integer domain [Inf, Sup] plus an append-only list of
// constraint subscribers notified on bound changes. Inf and Sup are mutated
// only through the owning Model's Trail, so a search backtrack restores them
// exactly.
//
// A Variable is fixed when Inf == Sup. The zero Variable is not usable;
// construct one via Model.NewVariable.
type Variable struct {
	Name string
	Inf  int
	Sup  int

	model       *Model
	subscribers []subscriber
}

func newVariable(m *Model, name string, inf, sup int) *Variable {
	if inf > sup {
		panic(fmt.Sprintf("cobra: variable %s constructed with inf %d > sup %d", name, inf, sup))
	}
	return &Variable{Name: name, Inf: inf, Sup: sup, model: m}
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s:[%d, %d]", v.Name, v.Inf, v.Sup)
}

// subscribe registers (c, slot) for notification on future bound changes.
// Not trailed: subscriber lists are built before search begins and are never
// undone.
func (v *Variable) subscribe(c Constraint, slot int) {
	v.model.guardBuildPhase()
	v.subscribers = append(v.subscribers, subscriber{constraint: c, slot: slot})
}

// Query helpers, direct ports of Var's can*/is* predicates.

func (v *Variable) canBeEq(x *Variable, z int) bool { return v.Inf+z <= x.Sup && v.Sup+z >= x.Inf }
func (v *Variable) isIt(x int) bool                 { return v.Inf == v.Sup && v.Inf == x }
func (v *Variable) canBe(x int) bool                { return v.Inf <= x && v.Sup >= x }
func (v *Variable) canNotBe(x int) bool             { return v.Inf > x || v.Sup < x }
func (v *Variable) canBeLess(x int) bool            { return v.Inf <= x }
func (v *Variable) canNotBeLess(x int) bool         { return v.Inf > x }
func (v *Variable) canBeMore(x int) bool            { return v.Sup >= x }
func (v *Variable) canNotBeMore(x int) bool         { return v.Sup < x }

// IsFixed reports whether the variable's domain is a single value.
func (v *Variable) IsFixed() bool { return v.Inf == v.Sup }

// notify fires SetVal if the variable became fixed, else incMax for raised
// lower bounds. Subscribers are iterated in registration order; the first
// error returned aborts the remaining notifications at this level and at
// every enclosing level, since it is simply returned up the call chain.
func (v *Variable) notifyLowerBoundRaised() error {
	if v.Inf == v.Sup {
		for _, s := range v.subscribers {
			if err := s.constraint.SetVal(s.slot); err != nil {
				return err
			}
		}
		return nil
	}
	for _, s := range v.subscribers {
		if err := s.constraint.IncMin(s.slot); err != nil {
			return err
		}
	}
	return nil
}

func (v *Variable) notifyUpperBoundLowered() error {
	if v.Inf == v.Sup {
		for _, s := range v.subscribers {
			if err := s.constraint.SetVal(s.slot); err != nil {
				return err
			}
		}
		return nil
	}
	for _, s := range v.subscribers {
		if err := s.constraint.DecMax(s.slot); err != nil {
			return err
		}
	}
	return nil
}

func (v *Variable) notifyFixed() error {
	for _, s := range v.subscribers {
		if err := s.constraint.SetVal(s.slot); err != nil {
			return err
		}
	}
	return nil
}

// IsGE tightens the lower bound to at least x. A no-op if x <= Inf already.
// Returns a *ContradictionError if x exceeds Sup.
func (v *Variable) IsGE(x int) error {
	v.model.Log.Printf(VerboseLookAhead, "==>%s isGE than %d", v, x)
	if x <= v.Inf {
		return nil
	}
	if x > v.Sup {
		return fail("*** FAIL on %s is more than %d ***", v, x)
	}
	Assign(v.model.trail, &v.Inf, x)
	return v.notifyLowerBoundRaised()
}

// IsLE tightens the upper bound to at most x. A no-op if x >= Sup already.
// Returns a *ContradictionError if x is below Inf.
func (v *Variable) IsLE(x int) error {
	v.model.Log.Printf(VerboseLookAhead, "==>%s isLE than %d", v, x)
	if x >= v.Sup {
		return nil
	}
	if x < v.Inf {
		return fail("*** FAIL on %s is less than %d ***", v, x)
	}
	Assign(v.model.trail, &v.Sup, x)
	return v.notifyUpperBoundLowered()
}

// IsEQ fixes the variable at x. Returns a *ContradictionError if x is
// outside [Inf, Sup].
func (v *Variable) IsEQ(x int) error {
	v.model.Log.Printf(VerboseLookAhead, "==>%s is %d", v, x)
	if v.Inf > x || v.Sup < x {
		return fail("*** FAIL on %s is %d ***", v, x)
	}
	if v.Inf == v.Sup {
		return nil
	}
	Assign(v.model.trail, &v.Inf, x)
	Assign(v.model.trail, &v.Sup, x)
	return v.notifyFixed()
}

// IsNEQ excludes x from the domain. Domains are bound-only, so excluding an
// interior value is a no-op; excluding an extreme value tightens that bound
// by one.
func (v *Variable) IsNEQ(x int) error {
	if v.Inf == x {
		return v.IsGE(x + One)
	}
	if v.Sup == x {
		return v.IsLE(x - One)
	}
	return nil
}
