package Trees

// Node is a node of a binary search tree. Data is the ordering payload, Key is
// opaque metadata. A node exclusively owns its children: no sharing, no
// cycles, no parent links.
type Node struct {
	Key  int
	Data string
	l, r *Node
}

// CreateNode returns a leaf holding data with a zero Key.
func CreateNode(data string) *Node {
	return &Node{Data: data}
}

// Left child, nil for a nil node.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.l
}

// Right child, nil for a nil node.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.r
}

// IsLeaf reports whether n is a non-nil node without children.
func (n *Node) IsLeaf() bool {
	return n != nil && n.l == nil && n.r == nil
}

// insert data into the subtree rooting at cur recursively. Returns the new
// subtree root and whether a node was allocated.
func insert(cur *Node, data string) (*Node, bool) {
	if cur == nil {
		return CreateNode(data), true
	}
	inserted := false
	if data < cur.Data {
		cur.l, inserted = insert(cur.l, data)
	} else if data > cur.Data {
		cur.r, inserted = insert(cur.r, data)
	}
	return cur, inserted
}

// InsertNode inserts data into the subtree rooting at cur and returns the
// subtree root, which the caller must store back where cur came from. The
// subtree is unchanged if data is already present. Recursive.
// Time: O(D)
func InsertNode(cur *Node, data string) *Node {
	cur, _ = insert(cur, data)
	return cur
}

// remove data from the subtree rooting at cur recursively. Returns the new
// subtree root and whether a node was unlinked.
func remove(cur *Node, data string) (*Node, bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if data < cur.Data {
		cur.l, deleted = remove(cur.l, data)
	} else if data > cur.Data {
		cur.r, deleted = remove(cur.r, data)
	} else if cur.l == nil {
		r := cur.r
		cur.r, cur.Data = nil, ""
		return r, true
	} else if cur.r == nil {
		l := cur.l
		cur.l, cur.Data = nil, ""
		return l, true
	} else {
		// the successor has no left child, so removing it below hits one of
		// the cases above.
		s := cur.r
		for s.l != nil {
			s = s.l
		}
		cur.Key, cur.Data = s.Key, s.Data
		cur.r, deleted = remove(cur.r, s.Data)
	}
	return cur, deleted
}

// DeleteNode removes data from the subtree rooting at root and returns the
// subtree root, which the caller must store back where root came from.
// A node with two children takes over the payload and key of its inorder
// successor, which is then unlinked from the right subtree. Deleting an
// absent payload leaves the subtree unchanged. Recursive.
// Time: O(D)
func DeleteNode(root *Node, data string) *Node {
	root, _ = remove(root, data)
	return root
}

// MinNode returns the leftmost node of the subtree rooting at n.
// Time: O(D); Space: O(1)
func MinNode(n *Node) (*Node, error) {
	if n == nil {
		return nil, invalidArgument("minimum of an empty tree")
	}
	for n.l != nil {
		n = n.l
	}
	return n, nil
}

// MaxNode returns the rightmost node of the subtree rooting at n.
// Time: O(D); Space: O(1)
func MaxNode(n *Node) (*Node, error) {
	if n == nil {
		return nil, invalidArgument("maximum of an empty tree")
	}
	for n.r != nil {
		n = n.r
	}
	return n, nil
}

// find the node holding data by descending along the ordering.
// Time: O(D); Space: O(1)
func find(cur *Node, data string) *Node {
	for cur != nil {
		if data < cur.Data {
			cur = cur.l
		} else if data > cur.Data {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// release every node of the subtree, children before parent, dropping
// payloads and links so that nothing stays reachable through a stale pointer.
// A node is cleared only after the walk is done with its links.
func release(root *Node) {
	for n := range postorderNodes(root) {
		n.l, n.r, n.Data, n.Key = nil, nil, "", 0
	}
}
