package tree

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/spikeekips/signable/util"
)

type testFixedTree struct {
	suite.Suite
}

func (t *testFixedTree) keys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("%d", i))
	}

	return keys
}

func (t *testFixedTree) TestEmpty() {
	tr, err := NewFixedTree(nil)
	t.NoError(err)
	t.Equal(0, tr.Len())
	t.Nil(tr.Root())
	t.NoError(tr.IsValid(nil))

	_, err = tr.Proof(0)
	t.True(errors.Is(err, util.NotFoundError))
}

func (t *testFixedTree) TestEmptyKey() {
	_, err := NewFixedTree([][]byte{[]byte("a"), nil})
	t.True(errors.Is(err, EmptyKeyError))
}

func (t *testFixedTree) TestNew() {
	tr, err := NewFixedTree(t.keys(10))
	t.NoError(err)
	t.Equal(10, tr.Len())
	t.NoError(tr.IsValid(nil))

	for i := 0; i < tr.Len(); i++ {
		n, err := tr.Node(uint64(i))
		t.NoError(err)
		t.Equal(uint64(i), n.Index())
	}

	// NOTE leaf node
	n, _ := tr.Node(9)
	t.Equal(FixedTreeNodeHash(n, FixedTreeNode{}, FixedTreeNode{}), n.Hash())

	// NOTE parent of leaf
	p, _ := tr.Node(4)
	left, _ := tr.Node(9)
	t.Equal(FixedTreeNodeHash(p, left, FixedTreeNode{}), p.Hash())
}

func (t *testFixedTree) TestRootChanges() {
	a, _ := NewFixedTree(t.keys(10))
	b, _ := NewFixedTree(t.keys(10))
	t.Equal(a.Root(), b.Root())

	keys := t.keys(10)
	keys[0], keys[9] = keys[9], keys[0]

	c, _ := NewFixedTree(keys)
	t.False(bytes.Equal(a.Root(), c.Root()))

	d, _ := NewFixedTree(t.keys(11))
	t.False(bytes.Equal(a.Root(), d.Root()))
}

func (t *testFixedTree) TestTraverse() {
	tr, _ := NewFixedTree(t.keys(10))

	var count int
	t.NoError(tr.Traverse(func(FixedTreeNode) (bool, error) {
		count++

		return count < 4, nil
	}))
	t.Equal(4, count)
}

func (t *testFixedTree) TestProof() {
	tr, _ := NewFixedTree(t.keys(15))

	for i := 0; i < tr.Len(); i++ {
		pr, err := tr.Proof(uint64(i))
		t.NoError(err)
		t.NoError(ProveFixedTreeProof(pr), "%d", i)
		t.Equal(tr.Root(), pr[len(pr)-3].Hash())
	}
}

func (t *testFixedTree) TestProofWrongKey() {
	tr, _ := NewFixedTree(t.keys(15))

	pr, err := tr.Proof(9)
	t.NoError(err)

	pr[0] = NewFixedTreeNode(pr[0].Index(), []byte("showme"), pr[0].Hash())

	err = ProveFixedTreeProof(pr)
	t.True(errors.Is(err, InvalidProofError))
	t.True(errors.Is(err, HashNotMatchError))
}

func (t *testFixedTree) TestProofBrokenChain() {
	tr, _ := NewFixedTree(t.keys(15))

	pr, _ := tr.Proof(9)

	// NOTE replace the first step with the other leaf node
	n, _ := tr.Node(8)
	pr[0], pr[1], pr[2] = n, FixedTreeNode{}, FixedTreeNode{}

	err := ProveFixedTreeProof(pr)
	t.True(errors.Is(err, InvalidProofError))
	t.Contains(err.Error(), "is not child of")
}

func (t *testFixedTree) TestProofInvalidLength() {
	tr, _ := NewFixedTree(t.keys(15))

	pr, _ := tr.Proof(9)

	t.Error(ProveFixedTreeProof(nil))
	t.Error(ProveFixedTreeProof(pr[:len(pr)-1]))
	t.Error(ProveFixedTreeProof(pr[:len(pr)-3]))
}

func TestFixedTree(t *testing.T) {
	suite.Run(t, new(testFixedTree))
}
