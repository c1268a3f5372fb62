package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Meta  bool
	Parse bool
	Sort  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Meta = boolEnv("FOMOD_DEBUG_META")
	d.Parse = boolEnv("FOMOD_DEBUG_PARSE")
	d.Sort = boolEnv("FOMOD_DEBUG_SORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Meta reports whether metadata-codec tracing is enabled.
func Meta() bool {
	return d.Meta
}

// Parse reports whether parser tracing is enabled.
func Parse() bool {
	return d.Parse
}

// Sort reports whether sort tracing is enabled.
func Sort() bool {
	return d.Sort
}

// Logf writes one trace line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
