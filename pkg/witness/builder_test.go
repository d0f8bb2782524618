package witness

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourorg/zkmembership/pkg/merkle"
)

func TestBuildBundle(t *testing.T) {
	tree, err := merkle.NewTree(2, []*big.Int{
		big.NewInt(10), big.NewInt(20), big.NewInt(30), big.NewInt(40),
	})
	require.NoError(t, err)

	b, err := Build(tree, 2, false)
	require.NoError(t, err)
	require.Empty(t, b.Public.Leaf, "private-leaf bundle must not expose the leaf")

	root, err := b.Public.RootInt()
	require.NoError(t, err)
	require.Equal(t, tree.Root(), root)
	require.Equal(t, tree.Root(), b.Private.Root())

	leaf, err := b.Public.LeafInt()
	require.NoError(t, err)
	require.Nil(t, leaf)
}

func TestBuildPublicLeafBundle(t *testing.T) {
	tree, err := merkle.NewTree(1, []*big.Int{big.NewInt(5), big.NewInt(6)})
	require.NoError(t, err)

	b, err := Build(tree, 1, true)
	require.NoError(t, err)

	leaf, err := b.Public.LeafInt()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(6), leaf)
}

func TestBuildOutOfRange(t *testing.T) {
	tree, err := merkle.NewTree(1, []*big.Int{big.NewInt(5), big.NewInt(6)})
	require.NoError(t, err)

	_, err = Build(tree, 2, false)
	require.Error(t, err)
}

func TestReadLeaves(t *testing.T) {
	leaves, err := ReadLeaves(strings.NewReader(`["0x0a", "0x14", "30"]`))
	require.NoError(t, err)
	require.Equal(t, []*big.Int{big.NewInt(10), big.NewInt(20), big.NewInt(30)}, leaves)

	_, err = ReadLeaves(strings.NewReader(`["zz"]`))
	require.Error(t, err)

	_, err = ReadLeaves(strings.NewReader(`{`))
	require.Error(t, err)
}
