package cobra

import (
	"strings"
	"testing"
)

func TestLogprintQuietByDefault(t *testing.T) {
	var buf strings.Builder
	m := NewModel()
	m.Log.Out = &buf

	v := m.NewVariable("X", 0, 10)
	if err := v.IsGE(3); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("quiet model wrote trace output: %q", buf.String())
	}
}

func TestLogprintLevelGatesOutput(t *testing.T) {
	var buf strings.Builder
	m := NewModel()
	m.Log.Out = &buf
	m.Log.Verbose = VerboseLookAhead

	v := m.NewVariable("X", 0, 10)
	if err := v.IsGE(3); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "isGE") {
		t.Fatalf("level-4 trace missing propagation line, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "ASSIGN") {
		t.Fatalf("level-4 trace leaked level-5 trailing output: %q", buf.String())
	}
}

func TestLogprintTrailingLevelTracesAssigns(t *testing.T) {
	var buf strings.Builder
	m := NewModel()
	m.Log.Out = &buf
	m.Log.Verbose = VerboseTrailing

	m.Trail().Push()
	v := m.NewVariable("X", 0, 10)
	if err := v.IsGE(3); err != nil {
		t.Fatal(err)
	}
	m.Trail().Back()
	out := buf.String()
	for _, want := range []string{"PUSH", "ASSIGN", "BACK"} {
		if !strings.Contains(out, want) {
			t.Fatalf("trailing trace missing %q, got %q", want, out)
		}
	}
}
