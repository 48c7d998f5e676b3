package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Scenario(t *testing.T) {
	tree := build(t, "m", "f", "t", "b", "z")

	res, found := BFSSearch(tree.Root(), "z")
	require.True(t, found)
	assert.Equal(t, "z", res.Root().Data)
	assert.Same(t, tree.Root().Right().Right(), res.Root())
	assert.Equal(t, 1, res.Size())
	assert.True(t, res.IsView())

	res, found = DFSSearch(tree.Root(), "z")
	require.True(t, found)
	assert.Same(t, tree.Root().Right().Right(), res.Root())

	assert.Equal(t, []string{"m", "f", "b", "t", "z"}, slices.Collect(PreOrder(tree.Root())))
}

func TestSearch_NotFound(t *testing.T) {
	tree := build(t, "m", "f", "t", "b", "z")
	for _, s := range []Strategy{BFS, DFS} {
		res, found, err := Search(tree.Root(), "q", s)
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, res)

		res, found, err = Search(nil, "m", s)
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, res)
	}
}

func TestSearch_UnsupportedStrategy(t *testing.T) {
	tree := build(t, "m")
	_, _, err := tree.Search("m", "astar")
	require.ErrorIs(t, err, ErrUnsupportedStrategy)
	var ue *UnsupportedStrategyError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "astar", ue.Name)

	_, err = ParseStrategy("astar")
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)
	s, err := ParseStrategy("dfs")
	assert.NoError(t, err)
	assert.Equal(t, DFS, s)
}

// BFS returns the first match in level order, DFS the first match in preorder.
func TestSearch_FirstMatch(t *testing.T) {
	root := decode(t, "1 a\n2 b\n3 x\n#\n#\n#\n4 x\n#\n#\n")
	res, found := BFSSearch(root, "x")
	require.True(t, found)
	assert.Equal(t, 4, res.Root().Key)
	res, found = DFSSearch(root, "x")
	require.True(t, found)
	assert.Equal(t, 3, res.Root().Key)
}

func TestTraversal_Orders(t *testing.T) {
	root := build(t, "m", "f", "t", "b", "z").Root()
	for order, want := range map[Order][]string{
		Preorder:   {"m", "f", "b", "t", "z"},
		Inorder:    {"b", "f", "m", "t", "z"},
		Postorder:  {"b", "f", "z", "t", "m"},
		Levelorder: {"m", "f", "t", "b", "z"},
	} {
		seq, err := Reorder(root, string(order))
		require.NoError(t, err)
		assert.Equal(t, want, slices.Collect(seq), order)

		nodes, err := Walk(root, order)
		require.NoError(t, err)
		var got []string
		for n := range nodes {
			got = append(got, n.Data)
		}
		assert.Equal(t, want, got, order)
	}
	assert.Equal(t, []string{"b", "f", "z", "t", "m"}, slices.Collect(PostOrder(root)))
	assert.Equal(t, []string{"m", "f", "t", "b", "z"}, slices.Collect(LevelOrder(root)))
}

func TestTraversal_Shapes(t *testing.T) {
	// left leaning chain and a node with only a right child
	root := decode(t, "0 d\n0 c\n0 a\n#\n0 b\n#\n#\n#\n#\n")
	assert.Equal(t, []string{"d", "c", "a", "b"}, slices.Collect(PreOrder(root)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, slices.Collect(InOrder(root)))
	assert.Equal(t, []string{"b", "a", "c", "d"}, slices.Collect(PostOrder(root)))
	assert.Equal(t, []string{"d", "c", "a", "b"}, slices.Collect(LevelOrder(root)))
}

func TestTraversal_EarlyStopAndRestart(t *testing.T) {
	root := build(t, "m", "f", "t", "b", "z").Root()
	for _, order := range []Order{Preorder, Inorder, Postorder, Levelorder} {
		seq, err := Reorder(root, string(order))
		require.NoError(t, err)
		var first []string
		for v := range seq {
			first = append(first, v)
			if len(first) == 2 {
				break
			}
		}
		assert.Len(t, first, 2, order)
		all := slices.Collect(seq)
		assert.Len(t, all, 5, order)
		assert.Equal(t, all[:2], first, order)
	}
}

func TestTraversal_Empty(t *testing.T) {
	for _, order := range []Order{Preorder, Inorder, Postorder, Levelorder} {
		seq, err := Reorder(nil, string(order))
		require.NoError(t, err)
		assert.Empty(t, slices.Collect(seq), order)
	}
	_, err := Reorder(nil, "sideways")
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)
	_, err = Walk(nil, "sideways")
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)
	_, err = ParseOrder("sideways")
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)
}

func TestBiTree_Traverse(t *testing.T) {
	tree := build(t, "m", "f", "t")
	seq, err := tree.Traverse(Postorder)
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "t", "m"}, slices.Collect(seq))
}
