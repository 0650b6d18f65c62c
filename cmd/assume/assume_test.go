package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcpl-sympy/sympy/config"
	"github.com/mcpl-sympy/sympy/expr"
	"github.com/mcpl-sympy/sympy/satask"
)

func testEngine(t *testing.T) *satask.Engine {
	t.Helper()
	c := config.Default()
	env := c.Env()
	reg, err := c.Registry(env)
	if err != nil {
		t.Fatal(err)
	}
	return satask.NewEngine(env, reg)
}

func TestFactsByClass(t *testing.T) {
	eng := testEngine(t)
	groups := factsByClass(eng.Registry, expr.MatMul)
	var names []string
	for _, g := range groups {
		names = append(names, g.Class)
	}
	if diff := cmp.Diff([]string{"MatMul", "Mul"}, names); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := writeFacts(&buf, groups[:1], false); err != nil {
		t.Fatal(err)
	}
	want := "MatMul:\n  Implies(AllArgs(Q.square), Equivalent(AllArgs(Q.invertible), Q.invertible))\n"
	if buf.String() != want {
		t.Errorf("writeFacts wrote %q, want %q", buf.String(), want)
	}
}

func TestLowered(t *testing.T) {
	eng := testEngine(t)
	lines, err := lowered(eng, expr.NewAbs(expr.Sym("x")))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 5 {
		t.Fatalf("got %d lines for Abs(x): %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "Q.nonnegative => ") {
		t.Errorf("first line %q", lines[0])
	}
}

func TestWriteLineDiff(t *testing.T) {
	var buf bytes.Buffer
	differs, err := writeLineDiff(&buf, "a\nb\nc\n", "a\nc\nd\n", false)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Errorf("differs = false")
	}
	want := " a\n-b\n c\n+d\n"
	if buf.String() != want {
		t.Errorf("diff = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	differs, err = writeLineDiff(&buf, "a\n", "a\n", false)
	if err != nil || differs {
		t.Errorf("identical inputs: differs=%t err=%v", differs, err)
	}
}

func TestLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    string
	}{
		{"quiet", false, "msg=loaded path=a.yaml\nlevel=WARN msg=careful\n"},
		{"verbose", true, "level=DEBUG msg=detail n=1\nmsg=loaded path=a.yaml\nlevel=WARN msg=careful\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLog(&buf, tt.verbose)
			l.Debug("detail", "n", 1)
			l.Info("loaded", "path", "a.yaml")
			l.Warn("careful")
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("log mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
