package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/texide/texide/pkg/ast"
)

func TestArenaAllocStableAddresses(t *testing.T) {
	a := ast.NewArena()

	var ptrs []*ast.TxtNode
	for i := 0; i < 1000; i++ {
		ptrs = append(ptrs, a.NewLeaf(ast.Str, ast.Span{Start: uint32(i), End: uint32(i + 1)}, ast.NodeData{}, "x"))
	}

	for i, p := range ptrs {
		require.Equal(t, uint32(i), p.Span.Start, "address for node %d must stay stable across further allocations", i)
	}
}

func TestArenaAllocStringInterns(t *testing.T) {
	a := ast.NewArena()

	first := a.AllocString("hello")
	second := a.AllocString("hello")
	require.Equal(t, first, second)

	// Mutating the caller's original byte backing must not affect the arena's copy.
	src := []byte("mutate-me")
	copied := a.AllocString(string(src))
	src[0] = 'X'
	require.Equal(t, "mutate-me", copied)
}

func TestArenaNewParentClonesChildren(t *testing.T) {
	a := ast.NewArena()
	leaf := a.NewLeaf(ast.Str, ast.Span{}, ast.NodeData{}, "v")

	children := []*ast.TxtNode{leaf}
	parent := a.NewParent(ast.Paragraph, ast.Span{}, ast.NodeData{}, children)

	children[0] = nil // mutate caller's slice
	require.NotNil(t, parent.Children[0], "parent's children slice must be arena-owned, independent of caller's slice")
}

func TestNodeCount(t *testing.T) {
	a := ast.NewArena()
	require.Equal(t, 0, a.NodeCount())
	a.NewLeaf(ast.Str, ast.Span{}, ast.NodeData{}, "a")
	a.NewLeaf(ast.Str, ast.Span{}, ast.NodeData{}, "b")
	require.Equal(t, 2, a.NodeCount())
}
