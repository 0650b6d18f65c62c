package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lower    bool
	Registry bool
	Ask      bool
	Parse    bool
	CLI      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lower = boolEnv("SYMPY_DEBUG_LOWER")
	d.Registry = boolEnv("SYMPY_DEBUG_REGISTRY")
	d.Ask = boolEnv("SYMPY_DEBUG_ASK")
	d.Parse = boolEnv("SYMPY_DEBUG_PARSE")
	d.CLI = boolEnv("SYMPY_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lower() bool {
	return d.Lower
}
func Registry() bool {
	return d.Registry
}
func Ask() bool {
	return d.Ask
}
func Parse() bool {
	return d.Parse
}
func CLI() bool {
	return d.CLI
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
