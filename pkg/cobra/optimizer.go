package cobra

import (
	"context"
	"sort"
	"time"
)

// SearchMode selects the branching strategy driving depth-first search.
type SearchMode int

const (
	SearchDisjunctive SearchMode = iota // branch on disjunctions
	SearchSetTimes                      // asap scheduling search; not implemented
	SearchEnumerate                     // branch on variable domains, one value at a time
	SearchDichotomic                    // branch on variable domains, splitting the range in half
)

// DisjStaticMode orders the disjunction list once, before search begins.
type DisjStaticMode int

const (
	DisjStaticNone      DisjStaticMode = iota // declaration order
	DisjStaticReverse                         // reverse declaration order
	DisjStaticEarliest                        // increasing min earliest-start of the two sides
	DisjStaticLatest                          // decreasing min earliest-start of the two sides
	DisjStaticProximity                       // increasing proximity
)

// DisjChoiceMode picks the next disjunction to branch on, at every step.
type DisjChoiceMode int

const (
	DisjChoiceOrder              DisjChoiceMode = iota // first active, undecided disjunction
	DisjChoiceHeaviestWeight                           // max weight
	DisjChoiceLargestProximity                         // max proximity
	DisjChoiceWeightThenEarliest                       // max weight, ties broken by earliest min-est
	DisjChoiceLatestTime                               // max min-est
	DisjChoiceProximityOfLatest                        // min proximity among the max-min-est ties
)

// DisjSideMode picks which side of a disjunction to try first.
type DisjSideMode int

const (
	DisjSideDeclaration  DisjSideMode = iota // always the left (declared first) side
	DisjSideHeaviest                         // heavier side first
	DisjSideLightest                         // lighter side first
	DisjSideLatestStart                      // later-starting side first
	DisjSideEarliestStart                    // earlier-starting side first
	DisjSideLatestEnd                        // later-ending side first
	DisjSideEarliestEnd                      // earlier-ending side first
)

// VarChoiceMode picks the next variable to branch on, in enumerate/dicho search.
type VarChoiceMode int

const (
	VarChoiceDeclaration   VarChoiceMode = iota // first unfixed variable
	VarChoiceSmallestDomain                     // unfixed variable with the smallest domain
)

// OptimizerConfig configures a search. The zero value is not meaningful;
// use DefaultOptimizerConfig and override only what differs.
type OptimizerConfig struct {
	// Objective is the variable to minimise or maximise. Nil for a decision
	// problem: search stops at the first solution.
	Objective *Variable
	Search    SearchMode
	Minimise  bool

	// Bound, if non-nil, overrides the objective's own bound as the initial
	// search bound. Increment, if non-nil, overrides the default step (+1
	// when minimising, -1 when maximising) applied after each improving
	// solution.
	Bound     *int
	Increment *int

	// Root selects restart-from-root (true): each improving solution
	// restarts the whole search under a tightened bound. False selects
	// chronological backtracking: the bound is tightened in place, deeper
	// in the same search tree, without restarting.
	Root bool

	DisjStatic DisjStaticMode
	DisjChoice DisjChoiceMode
	DisjSide   DisjSideMode
	VarChoice  VarChoiceMode

	// Verbose, when nonzero, raises the model's trace level for the run:
	// 2 traces branching, 4 propagation, 5 trailing.
	Verbose int
}

// DefaultOptimizerConfig returns the configuration used when no heuristic
// preference is specified: disjunctive search, restart from root, static
// earliest-time disjunction ordering, heaviest-weight dynamic choice,
// declaration-order side and variable choice.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		Search:     SearchDisjunctive,
		Minimise:   true,
		Root:       true,
		DisjStatic: DisjStaticEarliest,
		DisjChoice: DisjChoiceHeaviestWeight,
		DisjSide:   DisjSideDeclaration,
		VarChoice:  VarChoiceDeclaration,
	}
}

// Solution reports the outcome of one Optimize call.
type Solution struct {
	Vars       map[string]int
	ObjName    string
	ObjValue   *int
	Backtracks int
	Proof      int
	Duration   time.Duration
	Completion bool
	NSol       int
}

// Optimizer runs a depth-first branch-and-bound search over a Model. It is
// single-use: construct one per Optimize call.
type Optimizer struct {
	model     *Model
	cfg       OptimizerConfig
	objective *Variable
	mini      bool
	root      bool
	allSol    bool

	bound    int
	incBound int

	nbSol, nbOpt, nbBk, nbBkTot int
	currentSolution             map[string]int

	disjunctions []*Disjunction

	ctx context.Context
}

// NewOptimizer prepares a search over m's current variables, intervals, and
// disjunctions. It marks m immutable: no further variables, intervals, or
// constraints may be posted once an Optimizer exists for it.
func NewOptimizer(m *Model, cfg OptimizerConfig) *Optimizer {
	m.markSearchStarted()
	o := &Optimizer{
		model:           m,
		cfg:             cfg,
		objective:       cfg.Objective,
		mini:            cfg.Minimise,
		root:            cfg.Root,
		currentSolution: make(map[string]int),
		disjunctions:    append([]*Disjunction(nil), m.Disjunctions...),
	}
	if cfg.Verbose != 0 {
		m.Log.Verbose = cfg.Verbose
	}
	m.Log.Printf(VerboseBranching, "#disjunctions = %d", len(o.disjunctions))
	o.allSol = !cfg.Root
	if o.objective != nil {
		if o.mini {
			o.bound = o.objective.Sup
			if cfg.Bound != nil {
				o.bound = minInt(*cfg.Bound, o.objective.Sup)
			}
			o.incBound = One
		} else {
			o.bound = o.objective.Inf
			if cfg.Bound != nil {
				o.bound = maxInt(*cfg.Bound, o.objective.Inf)
			}
			o.incBound = -One
		}
		if cfg.Increment != nil {
			o.incBound = *cfg.Increment
		}
	}
	return o
}

// Optimize runs the search to completion or until ctx is cancelled.
// Cancellation is checked once per restart of the top-level search loop, so
// it may not interrupt a single, very deep recursive descent promptly; the
// search always finishes unwinding to the point it started from before
// reporting an interrupted run.
func (o *Optimizer) Optimize(ctx context.Context) (Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o.ctx = ctx
	start := time.Now()
	o.nbSol, o.nbOpt, o.nbBk, o.nbBkTot = 0, 0, 0, 0
	o.currentSolution = make(map[string]int)

	if o.objective != nil {
		o.reorderDisjunctions()
	}

	w := o.model.trail.Current()
	completion := o.solve()
	o.model.trail.Backtrack(w)
	o.nbBkTot += o.nbBk

	proof := 0
	if completion {
		proof = o.nbBk
	}

	var objValue *int
	objName := ""
	if o.objective != nil {
		objName = o.objective.Name
		if v, ok := o.currentSolution[objName]; ok {
			vv := v
			objValue = &vv
		}
	}

	return Solution{
		Vars:       o.currentSolution,
		ObjName:    objName,
		ObjValue:   objValue,
		Backtracks: o.nbBkTot,
		Proof:      proof,
		Duration:   time.Since(start),
		Completion: completion,
		NSol:       o.nbSol,
	}, nil
}

func (o *Optimizer) reorderDisjunctions() {
	switch o.cfg.DisjStatic {
	case DisjStaticNone:
	case DisjStaticReverse:
		for i, j := 0, len(o.disjunctions)-1; i < j; i, j = i+1, j-1 {
			o.disjunctions[i], o.disjunctions[j] = o.disjunctions[j], o.disjunctions[i]
		}
	case DisjStaticEarliest:
		sort.SliceStable(o.disjunctions, func(i, j int) bool {
			return o.minEst(o.disjunctions[i]) < o.minEst(o.disjunctions[j])
		})
	case DisjStaticLatest:
		sort.SliceStable(o.disjunctions, func(i, j int) bool {
			return o.minEst(o.disjunctions[i]) > o.minEst(o.disjunctions[j])
		})
	case DisjStaticProximity:
		sort.SliceStable(o.disjunctions, func(i, j int) bool {
			return o.disjunctions[i].Proximity < o.disjunctions[j].Proximity
		})
	}
}

// solve drives the search to the bound's fixpoint: for restart-from-root it
// loops, each iteration searching from scratch under a progressively
// tightened bound until no further improvement is possible; for
// chronological backtracking and decision problems it makes exactly one
// top-level attempt, since every leaf forces a FAIL internally. It reports
// whether the search ran to completion (true) or was cut short by ctx
// cancellation (false).
func (o *Optimizer) solve() bool {
	if o.cfg.Search == SearchSetTimes {
		return false
	}
	o.model.trail.Push()
	for {
		if o.ctx.Err() != nil {
			o.model.trail.Back()
			return false
		}
		if o.objective != nil {
			o.model.Log.Printf(VerboseBranching, "======****====> Looking for a solution at %s=%d", o.objective.Name, o.bound)
		}
		if err := o.enforceBound(); err != nil {
			o.model.trail.Back()
			o.model.Log.Printf(VerboseBranching, "<=====****===== Optimum proved in %d backtracks", o.nbBk)
			return true
		}
		var err error
		switch o.cfg.Search {
		case SearchDisjunctive:
			err = o.search()
		case SearchEnumerate:
			err = o.enumerate()
		case SearchDichotomic:
			err = o.dicho()
		}
		if err != nil {
			o.model.trail.Back()
			if o.ctx.Err() != nil {
				return false
			}
			if o.objective != nil {
				o.model.Log.Printf(VerboseBranching, "<=====****===== Optimum proved in %d backtracks", o.nbBk)
			}
			return true
		}
		if o.objective == nil {
			o.model.trail.Back()
			return true
		}
	}
}

// search branches on disjunctions: try the chosen side; on failure, undo,
// tighten the bound for chronological backtracking, and try the other side.
func (o *Optimizer) search() error {
	d := o.nextDisjunction()
	if d == nil {
		return o.foundSolution()
	}
	left := o.leftFirst(d)
	o.model.trail.Push()
	err := d.Settled(left)
	if err == nil {
		err = o.search()
	}
	if err != nil {
		o.model.trail.Back()
		o.nbBk++
		if bberr := o.enforceBB(); bberr != nil {
			return bberr
		}
		o.model.trail.Push()
		err2 := d.Settled(!left)
		if err2 == nil {
			err2 = o.search()
		}
		if err2 != nil {
			o.model.trail.Back()
			o.nbBk++
			return err2
		}
		o.model.trail.Back()
		return nil
	}
	o.model.trail.Back()
	return nil
}

// enumerate branches on variable domains, trying the lower bound value
// first and excluding it on failure. Unlike search and dicho, a failed
// first branch never reopens a fresh trail frame for the retry: it simply
// keeps going at the depth left by the undo.
func (o *Optimizer) enumerate() error {
	x := o.nextVar()
	if x == nil {
		return o.foundSolution()
	}
	v := x.Inf
	o.model.trail.Push()
	err := x.IsEQ(v)
	if err == nil {
		err = o.enumerate()
	}
	if err != nil {
		o.model.trail.Back()
		o.nbBk++
		if ierr := x.IsGE(v + One); ierr != nil {
			return ierr
		}
		if bberr := o.enforceBB(); bberr != nil {
			return bberr
		}
		return o.enumerate()
	}
	o.model.trail.Back()
	return nil
}

// dicho branches on variable domains by splitting the range in half.
func (o *Optimizer) dicho() error {
	x := o.nextVar()
	if x == nil {
		return o.foundSolution()
	}
	mid := (x.Inf + x.Sup) / Two
	o.model.trail.Push()
	err := x.IsLE(mid)
	if err == nil {
		err = o.dicho()
	}
	if err != nil {
		o.model.trail.Back()
		o.nbBk++
		if bberr := o.enforceBB(); bberr != nil {
			return bberr
		}
		o.model.trail.Push()
		err2 := x.IsGE(mid + One)
		if err2 == nil {
			err2 = o.dicho()
		}
		if err2 != nil {
			o.model.trail.Back()
			o.nbBk++
			return err2
		}
		o.model.trail.Back()
		return nil
	}
	o.model.trail.Back()
	return nil
}

// foundSolution records a complete assignment, tightens the bound, and, for
// chronological backtracking (or any all-solutions search), forces a
// backtrack to keep looking rather than returning up normally.
func (o *Optimizer) foundSolution() error {
	o.nbSol++
	o.model.Log.Printf(VerboseBranching, "<=====****===== Found solution n°%d in %d backtracks", o.nbSol, o.nbBk)
	o.saveSolution()
	o.bound = o.newBound()
	o.nbBkTot += o.nbBk
	o.nbBk = 0
	if o.allSol {
		return errBacktrack
	}
	return nil
}

func (o *Optimizer) saveSolution() {
	for _, v := range o.model.Variables {
		o.currentSolution[v.Name] = v.Inf
	}
}

func (o *Optimizer) enforceBound() error {
	if o.objective == nil {
		return nil
	}
	if o.mini {
		return o.objective.IsLE(o.bound)
	}
	return o.objective.IsGE(o.bound)
}

func (o *Optimizer) newBound() int {
	if o.objective == nil {
		return 0
	}
	if o.mini {
		return minInt(o.bound, o.objective.Inf) - o.incBound
	}
	return maxInt(o.bound, o.objective.Sup) + o.incBound
}

// enforceBB enforces the bound immediately after a failed branch, which is
// only meaningful for chronological backtracking (restart-from-root defers
// all bound enforcement to the top of solve's loop).
func (o *Optimizer) enforceBB() error {
	if o.objective == nil || o.root {
		return nil
	}
	return o.enforceBound()
}

func (o *Optimizer) nextDisjunction() *Disjunction {
	var candidates []*Disjunction
	for _, d := range o.disjunctions {
		if d.Active == True && (d.Left == Unknown || d.Right == Unknown) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	switch o.cfg.DisjChoice {
	case DisjChoiceHeaviestWeight:
		return maxBy(candidates, func(d *Disjunction) int { return d.Weight })
	case DisjChoiceLargestProximity:
		return maxBy(candidates, func(d *Disjunction) int { return d.Proximity })
	case DisjChoiceWeightThenEarliest:
		tied := maxsBy(candidates, func(d *Disjunction) int { return d.Weight })
		return minBy(tied, o.minEst)
	case DisjChoiceLatestTime:
		return maxBy(candidates, o.minEst)
	case DisjChoiceProximityOfLatest:
		tied := maxsBy(candidates, o.minEst)
		return minBy(tied, func(d *Disjunction) int { return d.Proximity })
	default: // DisjChoiceOrder
		return candidates[0]
	}
}

func (o *Optimizer) leftFirst(d *Disjunction) bool {
	switch o.cfg.DisjSide {
	case DisjSideHeaviest:
		return d.Const[0].ComputeWeight() >= d.Const[1].ComputeWeight()
	case DisjSideLightest:
		return d.Const[1].ComputeWeight() >= d.Const[0].ComputeWeight()
	case DisjSideLatestStart:
		return secondVar(d, 0).Inf >= secondVar(d, 1).Inf
	case DisjSideEarliestStart:
		return secondVar(d, 0).Inf <= secondVar(d, 1).Inf
	case DisjSideLatestEnd:
		return secondVar(d, 0).Inf+d.Const[0].ComputeWeight() >= secondVar(d, 1).Inf+d.Const[1].ComputeWeight()
	case DisjSideEarliestEnd:
		return secondVar(d, 0).Inf+d.Const[0].ComputeWeight() <= secondVar(d, 1).Inf+d.Const[1].ComputeWeight()
	default: // DisjSideDeclaration
		return true
	}
}

func (o *Optimizer) nextVar() *Variable {
	var free []*Variable
	for _, v := range o.model.Variables {
		if v.Inf != v.Sup {
			free = append(free, v)
		}
	}
	if len(free) == 0 {
		return nil
	}
	if o.cfg.VarChoice == VarChoiceSmallestDomain {
		return minBy(free, func(v *Variable) int { return v.Sup - v.Inf })
	}
	return free[0]
}

func (o *Optimizer) minEst(d *Disjunction) int {
	return minInt(secondVar(d, 0).Inf, secondVar(d, 1).Inf)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// maxBy and minBy return the element of items with the largest/smallest key.
// items must be non-empty.
func maxBy[T any](items []T, key func(T) int) T {
	best := items[0]
	bestKey := key(best)
	for _, it := range items[1:] {
		if k := key(it); k > bestKey {
			best, bestKey = it, k
		}
	}
	return best
}

func minBy[T any](items []T, key func(T) int) T {
	best := items[0]
	bestKey := key(best)
	for _, it := range items[1:] {
		if k := key(it); k < bestKey {
			best, bestKey = it, k
		}
	}
	return best
}

// maxsBy returns every element of items tied for the largest key.
func maxsBy[T any](items []T, key func(T) int) []T {
	bestKey := key(maxBy(items, key))
	var out []T
	for _, it := range items {
		if key(it) == bestKey {
			out = append(out, it)
		}
	}
	return out
}
