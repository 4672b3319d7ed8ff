// Package warning carries the non-fatal degradation notices the
// converter produces. Structural anomalies in the source grammar never
// abort a run; each local fallback decision is recorded here so callers
// can surface it.
package warning

import (
	"fmt"
	"strings"
)

type Warning struct {
	// Rule is the source rule the degradation applies to, when the
	// anomaly is rule-scoped.
	Rule   string
	Reason string
}

func (w *Warning) String() string {
	var b strings.Builder
	b.WriteString("warning: ")
	if w.Rule != "" {
		fmt.Fprintf(&b, "%v: ", w.Rule)
	}
	b.WriteString(w.Reason)
	return b.String()
}

type Warnings []*Warning

func (ws Warnings) Strings() []string {
	ss := make([]string, len(ws))
	for i, w := range ws {
		ss[i] = w.String()
	}
	return ss
}
