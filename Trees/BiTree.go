package Trees

import "iter"

// BiTree is the owning handle of a binary search tree. It keeps the node
// count exact across Insert and Delete, and optionally enforces a node budget.
//
// A BiTree returned by a search is a view: its root is a node owned by
// another tree, its size is 1 and it refuses mutation.
// The zero value is an empty tree without a budget.
type BiTree struct {
	root  *Node
	size  int
	limit int // 0 means no budget
	view  bool
}

// Option configures a BiTree.
type Option func(*BiTree) error

// WithNodeLimit caps the number of nodes the tree may hold. Inserts that would
// exceed it fail with AllocationError. n < 1 is rejected by the constructors.
func WithNodeLimit(n int) Option {
	return func(u *BiTree) error {
		if n < 1 {
			return invalidArgument("node limit must be positive, got %d", n)
		}
		u.limit = n
		return nil
	}
}

func configure(opts []Option) (*BiTree, error) {
	u := new(BiTree)
	for _, opt := range opts {
		if err := opt(u); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// NewBiTree returns a tree holding a single root node with rootData.
func NewBiTree(rootData string, opts ...Option) (*BiTree, error) {
	u, err := configure(opts)
	if err != nil {
		return nil, err
	}
	u.root, u.size = CreateNode(rootData), 1
	return u, nil
}

// FromRoot adopts an existing node structure, typically one returned by
// Deserialize. The structure must satisfy the ordering invariant and fit the
// node budget. The caller must not keep using root through other handles.
// Time: O(n)
func FromRoot(root *Node, opts ...Option) (*BiTree, error) {
	u, err := configure(opts)
	if err != nil {
		return nil, err
	}
	if !IsBST(root) {
		return nil, invalidArgument("node structure violates the search tree ordering")
	}
	n := Count(root)
	if u.limit > 0 && n > u.limit {
		return nil, &AllocationError{u.limit}
	}
	u.root, u.size = root, n
	return u, nil
}

// newView wraps a node owned by another tree.
func newView(n *Node) *BiTree {
	return &BiTree{root: n, size: 1, view: true}
}

// Root node, nil for an empty tree.
func (u *BiTree) Root() *Node {
	if u == nil {
		return nil
	}
	return u.root
}

// Size returns the number of nodes. For a view it is always 1.
// Time: O(1)
func (u *BiTree) Size() int {
	if u == nil {
		return 0
	}
	return u.size
}

// Empty reports whether the tree has no root.
func (u *BiTree) Empty() bool {
	return u.Root() == nil
}

// IsView reports whether u is a read-only search result.
func (u *BiTree) IsView() bool {
	return u != nil && u.view
}

// Limit returns the node budget, 0 if there is none.
func (u *BiTree) Limit() int {
	if u == nil {
		return 0
	}
	return u.limit
}

func (u *BiTree) writable() error {
	if u == nil {
		return invalidArgument("nil tree")
	}
	if u.view {
		return invalidArgument("search result trees are read-only")
	}
	return nil
}

// Insert data. Returns true if a node was added, false if data was already
// present. Inserting into an empty tree creates a new root.
// Recursive.
// Time: O(D)
func (u *BiTree) Insert(data string) (bool, error) {
	if err := u.writable(); err != nil {
		return false, err
	}
	if u.limit > 0 && u.size >= u.limit {
		if find(u.root, data) != nil {
			return false, nil
		}
		return false, &AllocationError{u.limit}
	}
	var inserted bool
	u.root, inserted = insert(u.root, data)
	if inserted {
		u.size++
	}
	return inserted, nil
}

// Delete data. Returns true if a node was removed, false if data was absent.
// Deleting the last node leaves an empty tree.
// Recursive.
// Time: O(D)
func (u *BiTree) Delete(data string) (bool, error) {
	if err := u.writable(); err != nil {
		return false, err
	}
	var deleted bool
	u.root, deleted = remove(u.root, data)
	if deleted {
		u.size--
	}
	return deleted, nil
}

// Has data.
// Time: O(D); Space: O(1)
func (u *BiTree) Has(data string) bool {
	return find(u.Root(), data) != nil
}

// Minimum payload. The second value is false for an empty tree.
// Time: O(D); Space: O(1)
func (u *BiTree) Minimum() (string, bool) {
	if n, err := MinNode(u.Root()); err == nil {
		return n.Data, true
	}
	return "", false
}

// Maximum payload. The second value is false for an empty tree.
// Time: O(D); Space: O(1)
func (u *BiTree) Maximum() (string, bool) {
	if n, err := MaxNode(u.Root()); err == nil {
		return n.Data, true
	}
	return "", false
}

// Destroy releases every node in postorder and empties the handle. A view only
// drops its reference, the nodes belong to the tree it was searched in.
// Calling Destroy on a nil or empty tree does nothing.
func (u *BiTree) Destroy() {
	if u == nil || u.root == nil {
		return
	}
	if !u.view {
		release(u.root)
	}
	u.root, u.size = nil, 0
}

// Search data with the named strategy, see the package level Search.
func (u *BiTree) Search(data string, strategy Strategy) (*BiTree, bool, error) {
	return Search(u.Root(), data, strategy)
}

// Traverse returns the payloads in the named order, see Reorder.
func (u *BiTree) Traverse(order Order) (iter.Seq[string], error) {
	return Reorder(u.Root(), string(order))
}

// Depth, see the package level Depth.
func (u *BiTree) Depth() int {
	return Depth(u.Root())
}

// IsFull, see the package level IsFull.
func (u *BiTree) IsFull() bool {
	return IsFull(u.Root())
}

// IsComplete, see the package level IsComplete.
func (u *BiTree) IsComplete() bool {
	return IsComplete(u.Root())
}

// String renders the tree, see Render.
func (u *BiTree) String() string {
	return Render(u.Root())
}
