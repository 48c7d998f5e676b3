package Trees

import "github.com/g-m-twostay/go-bitree/Queues"

// Depth is 0 for an empty tree, otherwise 1 + the larger depth of the two
// subtrees. Counted level by level.
// Time: O(n); Space: O(w)
func Depth(root *Node) int {
	if root == nil {
		return 0
	}
	d := 0
	q := Queues.MakeArrayQueue[*Node]()
	for q.Push(root); !q.Empty(); d++ {
		for range q.Size() {
			cur, _ := q.Pop()
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
	return d
}

// IsFull reports whether every node has either 0 or 2 children. The empty tree
// is full.
// Time: O(n); Space: O(D)
func IsFull(root *Node) bool {
	for n := range preorderNodes(root) {
		if (n.l == nil) != (n.r == nil) {
			return false
		}
	}
	return true
}

// IsComplete reports whether every level except possibly the last is filled
// and the last level is filled from the left. The scan is in level order:
// after the first missing child, any further child means a gap. The empty
// tree is complete.
// Time: O(n); Space: O(w)
func IsComplete(root *Node) bool {
	if root == nil {
		return true
	}
	q := Queues.MakeArrayQueue[*Node]()
	gap := false
	for q.Push(root); !q.Empty(); {
		cur, _ := q.Pop()
		for _, c := range [2]*Node{cur.l, cur.r} {
			if c == nil {
				gap = true
			} else if gap {
				return false
			} else {
				q.Push(c)
			}
		}
	}
	return true
}

// Count the nodes reachable from root.
// Time: O(n); Space: O(D)
func Count(root *Node) int {
	n := 0
	for range preorderNodes(root) {
		n++
	}
	return n
}

// IsBST reports whether every payload in a left subtree sorts strictly before
// its ancestor's and every payload in a right subtree strictly after. An
// inorder walk of such a tree is strictly ascending.
// Time: O(n); Space: O(D)
func IsBST(root *Node) bool {
	var prev *Node
	for cur := range inorderNodes(root) {
		if prev != nil && prev.Data >= cur.Data {
			return false
		}
		prev = cur
	}
	return true
}
