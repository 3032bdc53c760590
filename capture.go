package status

import (
	"fmt"
	"runtime/debug"
	"sort"
	"strings"
)

// DataProvider exposes auxiliary metadata attached to an error. Errors that
// implement it (for example structured platform errors carrying a context
// map) have their entries included in captured debug text as "Data:" lines.
type DataProvider interface {
	// Context returns attached metadata as a read-only map.
	Context() map[string]interface{}
}

// buildDebugData renders the diagnostic text for a captured error. The text
// is line-oriented:
//
//	<cause message>
//	StackTrace:<stack of the capturing goroutine>
//	Data: <key>\t<value>   (one line per metadata entry, sorted by key)
//
// Data lines appear only when the cause implements DataProvider. Keys are
// sorted so the output is deterministic.
func buildDebugData(cause error) string {
	msg := "<nil>"
	if cause != nil {
		msg = cause.Error()
	}
	lines := []string{
		msg,
		"StackTrace:" + strings.TrimSuffix(string(debug.Stack()), "\n"),
	}
	if provider, ok := cause.(DataProvider); ok {
		lines = append(lines, dataLines(provider.Context())...)
	}
	return strings.Join(lines, "\n")
}

func dataLines(ctx map[string]interface{}) []string {
	if len(ctx) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("Data: %s\t%v", k, ctx[k]))
	}
	return lines
}
