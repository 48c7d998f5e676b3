package Trees

import (
	"fmt"

	"github.com/xlab/treeprint"
)

func label(n *Node) string {
	return fmt.Sprintf("%d %s", n.Key, n.Data)
}

// Render draws the tree as indented branches, one "<key> <payload>" per node.
// Children are tagged [L] and [R]; a missing child is drawn as "#" only when
// its sibling exists. The empty tree renders as "#". Recursive.
func Render(root *Node) string {
	if root == nil {
		return nilMarker + "\n"
	}
	t := treeprint.NewWithRoot(label(root))
	renderChildren(t, root)
	return t.String()
}

func renderChildren(t treeprint.Tree, n *Node) {
	if n.l == nil && n.r == nil {
		return
	}
	for _, c := range [2]struct {
		tag string
		n   *Node
	}{{"L", n.l}, {"R", n.r}} {
		if c.n == nil {
			t.AddMetaNode(c.tag, nilMarker)
		} else if c.n.l == nil && c.n.r == nil {
			t.AddMetaNode(c.tag, label(c.n))
		} else {
			renderChildren(t.AddMetaBranch(c.tag, label(c.n)), c.n)
		}
	}
}
