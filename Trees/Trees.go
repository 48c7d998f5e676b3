// Package Trees implements an unbalanced binary search tree of string payloads.
// Nodes are ordered by payload; each node also carries an integer key that is
// kept as opaque metadata and written out by the serializers.
//
// The tree has a single owner. Nothing here is safe for concurrent use, and
// nothing rebalances: inserting sorted payloads degenerates the tree into a
// list. Functions operating on *Node accept nil as the empty tree unless noted.
package Trees

// Strategy names a search strategy accepted by Search.
type Strategy string

const (
	BFS Strategy = "bfs"
	DFS Strategy = "dfs"
)

// Order names a traversal order accepted by Walk and Reorder.
type Order string

const (
	Preorder   Order = "preorder"
	Inorder    Order = "inorder"
	Postorder  Order = "postorder"
	Levelorder Order = "levelorder"
)

// Encoding names a serialization format accepted by Serialize and DeserializeAs.
type Encoding string

const (
	// EncodingDFS writes nodes in preorder with a "#" line for every missing child.
	EncodingDFS Encoding = "dfs"
	// EncodingBFS writes a node count followed by nodes in level order, each
	// node followed later by entries for both of its children.
	EncodingBFS Encoding = "bfs"
)

// ParseStrategy returns an UnsupportedStrategyError for unknown names.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case BFS, DFS:
		return s, nil
	}
	return "", &UnsupportedStrategyError{"search strategy", name}
}

// ParseOrder returns an UnsupportedStrategyError for unknown names.
func ParseOrder(name string) (Order, error) {
	switch o := Order(name); o {
	case Preorder, Inorder, Postorder, Levelorder:
		return o, nil
	}
	return "", &UnsupportedStrategyError{"traversal order", name}
}

// ParseEncoding returns an UnsupportedStrategyError for unknown names.
func ParseEncoding(name string) (Encoding, error) {
	switch e := Encoding(name); e {
	case EncodingDFS, EncodingBFS:
		return e, nil
	}
	return "", &UnsupportedStrategyError{"serialization algorithm", name}
}
