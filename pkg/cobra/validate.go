package cobra

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks that sol assigns every variable in vars a value inside
// its current domain, under a scoped trail frame that is always undone
// before returning, so it never mutates the model's actual state.
func Validate(m *Model, vars []*Variable, sol map[string]int) bool {
	m.trail.Push()
	defer m.trail.Back()
	for _, v := range vars {
		if err := v.IsEQ(sol[v.Name]); err != nil {
			m.Log.Printf(VerboseBranching, "%s", err)
			m.Log.Printf(VerboseBranching, "The solution is not valid:\n%s", ShowVar(sol))
			return false
		}
	}
	m.Log.Printf(VerboseBranching, "The solution is valid")
	return true
}

// ShowVar renders a solution map for diagnostics, one "name=value" line per
// entry, sorted by name for reproducible output.
func ShowVar(sol map[string]int) string {
	names := make([]string, 0, len(sol))
	for name := range sol {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%d\n", name, sol[name])
	}
	return b.String()
}
