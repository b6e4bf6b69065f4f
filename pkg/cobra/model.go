package cobra

// Model is the explicit solver context: it owns the Trail and the
// append-only registries (Variables, Intervals, Disjunctions). Passing a
// *Model explicitly to every constructor means two Models never share state,
// and a Model can simply be dropped instead of requiring a global clear().
type Model struct {
	trail *Trail

	// Log gates the optional trace output for everything this model owns,
	// including its Trail. Quiet by default.
	Log *Logprint

	Variables    []*Variable
	Intervals    []*Interval
	Disjunctions []*Disjunction

	searchStarted bool
}

// NewModel returns an empty solver context with a fresh Trail.
func NewModel() *Model {
	log := &Logprint{}
	t := NewTrail()
	t.log = log
	return &Model{trail: t, Log: log}
}

// Trail returns the model's trailing store.
func (m *Model) Trail() *Trail { return m.trail }

// Reset drops every registered variable, interval, and disjunction and
// starts a fresh Trail, as if the Model had just been constructed. Provided
// for test convenience; discarding the *Model works just as well.
func (m *Model) Reset() {
	m.trail = NewTrail()
	m.trail.log = m.Log
	m.Variables = nil
	m.Intervals = nil
	m.Disjunctions = nil
	m.searchStarted = false
}

// NewVariable constructs and registers a variable with domain [inf, sup].
// Posting a variable (or a constraint) after search has begun is a
// programming error.
func (m *Model) NewVariable(name string, inf, sup int) *Variable {
	m.guardBuildPhase()
	v := newVariable(m, name, inf, sup)
	m.Variables = append(m.Variables, v)
	return v
}

func (m *Model) guardBuildPhase() {
	if m.searchStarted {
		panic("cobra: model mutated after search began")
	}
}

func (m *Model) registerDisjunction(d *Disjunction) {
	m.Disjunctions = append(m.Disjunctions, d)
}

func (m *Model) registerInterval(iv *Interval) {
	m.Intervals = append(m.Intervals, iv)
}

// markSearchStarted marks the model immutable; called once by Optimizer at
// the start of Optimize.
func (m *Model) markSearchStarted() { m.searchStarted = true }
