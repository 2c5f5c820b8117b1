package textmap

import (
	"fmt"
	"io"
)

// Map2Dot outputs the structure of a Map in Graphviz DOT format
// (for debugging purposes).
//
func Map2Dot(m Map, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist, edgelist := "", ""
	for i, seg := range m {
		label := fmt.Sprintf("%s\\n|origins|=%d", seg.Range, len(seg.Origins))
		nodelist += fmt.Sprintf("\"s%d\" [label=\"%s\" shape=box style=filled fillcolor=lightblue];\n", i, label)
		if i > 0 {
			edgelist += fmt.Sprintf("\"s%d\" -> \"s%d\";\n", i-1, i)
		}
		for d, org := range seg.Origins {
			olabel := fmt.Sprintf("%s #%d\\n%s", org.Name, org.Sequence, org.Range)
			nodelist += fmt.Sprintf("\"s%d_o%d\" [label=\"%s\" shape=ellipse];\n", i, d, olabel)
			edgelist += fmt.Sprintf("\"s%d\" -> \"s%d_o%d\" [style=dotted];\n", i, i, d)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
