/*
Package qssdbg implements helpers to debug a style sheet.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package qssdbg

import (
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/style/qssom"
	"github.com/xlab/treeprint"
)

// Tree renders the merged rule-set of a style sheet as an ASCII tree:
// subject widget classes at the top level, selectors below them, and
// the property assignments as leaves.
func Tree(rs *qssom.RuleSet) string {
	root := treeprint.NewWithRoot("stylesheet")
	branches := make(map[string]treeprint.Tree)
	for _, sel := range rs.Selectors() {
		widget := sel.Subject().Widget
		branch, ok := branches[widget]
		if !ok {
			branch = root.AddBranch(widget)
			branches[widget] = branch
		}
		node := branch.AddBranch(sel.String())
		props := rs.Properties(sel)
		var lines []string
		props.Each(func(key string, value style.Property) {
			lines = append(lines, fmt.Sprintf("%s: %s", key, value))
		})
		sort.Strings(lines)
		for _, line := range lines {
			node.AddNode(line)
		}
	}
	return root.String()
}

// Dump writes the rule-set tree to w.
func Dump(rs *qssom.RuleSet, w io.Writer) error {
	_, err := io.WriteString(w, Tree(rs))
	return err
}
