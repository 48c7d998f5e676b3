package Trees

import "github.com/g-m-twostay/go-bitree/Queues"

// BFSSearch scans the tree level by level, left to right, and returns a view
// of the first node holding data. The current level is kept as a list that is
// expanded into the next level's list until a level contains a match.
// Time: O(n); Space: O(w) where w is the widest level.
func BFSSearch(root *Node, data string) (*BiTree, bool) {
	if root == nil {
		return nil, false
	}
	for level := []*Node{root}; len(level) > 0; {
		next := make([]*Node, 0, len(level)*2)
		for _, cur := range level {
			if cur.Data == data {
				return newView(cur), true
			}
			if cur.l != nil {
				next = append(next, cur.l)
			}
			if cur.r != nil {
				next = append(next, cur.r)
			}
		}
		level = next
	}
	return nil, false
}

// DFSSearch walks the tree in preorder with an explicit stack, pushing the
// right child before the left one, and returns a view of the first popped
// node holding data.
// Time: O(n); Space: O(D)
func DFSSearch(root *Node, data string) (*BiTree, bool) {
	if root == nil {
		return nil, false
	}
	st := Queues.MakeArrayStack[*Node]()
	for st.Push(root); !st.Empty(); {
		cur, _ := st.Pop()
		if cur.Data == data {
			return newView(cur), true
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
	return nil, false
}

// Search dispatches to BFSSearch or DFSSearch. An absent payload is reported by
// the second return value; an unknown strategy by an UnsupportedStrategyError.
// The returned tree is a read-only view of the found node with Size 1.
func Search(root *Node, data string, strategy Strategy) (*BiTree, bool, error) {
	switch strategy {
	case BFS:
		res, found := BFSSearch(root, data)
		return res, found, nil
	case DFS:
		res, found := DFSSearch(root, data)
		return res, found, nil
	}
	return nil, false, &UnsupportedStrategyError{"search strategy", string(strategy)}
}
