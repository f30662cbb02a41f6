package dtree

import (
	"fmt"
	"strings"

	"github.com/veltanor/hybnet/vars"
)

// Format renders the tree deterministically: one line per node, branches
// indented under their choice key, states ascending. Cosmetic only. A nil
// kf falls back to vars.DefaultKeyFormatter, a nil leafFmt to fmt.Sprint.
func (t *Tree[L]) Format(kf vars.KeyFormatter, leafFmt func(L) string) string {
	if kf == nil {
		kf = vars.DefaultKeyFormatter
	}
	if leafFmt == nil {
		leafFmt = func(v L) string { return fmt.Sprint(v) }
	}
	var sb strings.Builder
	formatRec(&sb, t.root, kf, leafFmt, "", "")
	return sb.String()
}

func formatRec[L any](sb *strings.Builder, n node[L], kf vars.KeyFormatter, leafFmt func(L) string, indent, label string) {
	sb.WriteString(indent)
	sb.WriteString(label)
	if l, ok := n.(leaf[L]); ok {
		sb.WriteString(leafFmt(l.value))
		sb.WriteByte('\n')
		return
	}
	c := n.(*choice[L])
	sb.WriteString("(" + kf(c.key.Key) + ")\n")
	for s, b := range c.branches {
		formatRec(sb, b, kf, leafFmt, indent+"  ", fmt.Sprintf("%d: ", s))
	}
}

// String renders the tree with default formatting.
func (t *Tree[L]) String() string {
	return t.Format(nil, nil)
}
