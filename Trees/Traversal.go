package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-bitree/Queues"
)

// The producers below are iterative and lazy: nothing is visited before the
// sequence is ranged over, every range starts a fresh walk, and a walk stops as
// soon as the consumer breaks. The tree must not be modified during a walk.

// preorderNodes yields node, left subtree, right subtree.
// Space: O(D)
func preorderNodes(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root == nil {
			return
		}
		st := Queues.MakeArrayStack[*Node]()
		for st.Push(root); !st.Empty(); {
			cur, _ := st.Pop()
			if !yield(cur) {
				return
			}
			if cur.r != nil {
				st.Push(cur.r)
			}
			if cur.l != nil {
				st.Push(cur.l)
			}
		}
	}
}

// inorderNodes yields left subtree, node, right subtree.
// Space: O(D)
func inorderNodes(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		st := Queues.MakeArrayStack[*Node]()
		for cur := root; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		for !st.Empty() {
			cur, _ := st.Pop()
			if !yield(cur) {
				return
			}
			for cur = cur.r; cur != nil; cur = cur.l {
				st.Push(cur)
			}
		}
	}
}

// postorderNodes yields left subtree, right subtree, node. A node on top of the
// stack is emitted once its right subtree is done, which is when the right
// child is nil or was the last node emitted.
// Space: O(D)
func postorderNodes(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		st := Queues.MakeArrayStack[*Node]()
		var last *Node
		for cur := root; cur != nil || !st.Empty(); {
			if cur != nil {
				st.Push(cur)
				cur = cur.l
				continue
			}
			top := st.Peek()
			if top.r != nil && top.r != last {
				cur = top.r
				continue
			}
			st.Pop()
			if !yield(top) {
				return
			}
			last = top
		}
	}
}

// levelorderNodes yields nodes level by level, left to right.
// Space: O(w) where w is the widest level.
func levelorderNodes(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root == nil {
			return
		}
		q := Queues.MakeArrayQueue[*Node]()
		for q.Push(root); !q.Empty(); {
			cur, _ := q.Pop()
			if !yield(cur) {
				return
			}
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
}

func payloads(nodes iter.Seq[*Node]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := range nodes {
			if !yield(n.Data) {
				return
			}
		}
	}
}

// PreOrder payloads of the tree.
func PreOrder(root *Node) iter.Seq[string] {
	return payloads(preorderNodes(root))
}

// InOrder payloads of the tree, which is ascending order for a search tree.
func InOrder(root *Node) iter.Seq[string] {
	return payloads(inorderNodes(root))
}

// PostOrder payloads of the tree.
func PostOrder(root *Node) iter.Seq[string] {
	return payloads(postorderNodes(root))
}

// LevelOrder payloads of the tree.
func LevelOrder(root *Node) iter.Seq[string] {
	return payloads(levelorderNodes(root))
}

// Walk returns the nodes of the tree in the given order.
func Walk(root *Node, order Order) (iter.Seq[*Node], error) {
	switch order {
	case Preorder:
		return preorderNodes(root), nil
	case Inorder:
		return inorderNodes(root), nil
	case Postorder:
		return postorderNodes(root), nil
	case Levelorder:
		return levelorderNodes(root), nil
	}
	return nil, &UnsupportedStrategyError{"traversal order", string(order)}
}

// Reorder returns the payloads of the tree in the order named by orderName,
// one of "preorder", "inorder", "postorder" or "levelorder".
func Reorder(root *Node, orderName string) (iter.Seq[string], error) {
	nodes, err := Walk(root, Order(orderName))
	if err != nil {
		return nil, err
	}
	return payloads(nodes), nil
}
