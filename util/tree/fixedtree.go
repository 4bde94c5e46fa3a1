package tree

import (
	"bytes"

	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/valuehash"
)

var (
	InvalidNodeError  = util.NewError("invalid node")
	EmptyKeyError     = util.NewError("empty node key")
	HashNotMatchError = util.NewError("hash not match")
	InvalidProofError = util.NewError("invalid proof")
)

// FixedTreeNode is the node of FixedTree. The hash of node is derived from
// it's index, key and the hashes of children.
type FixedTreeNode struct {
	index uint64
	key   []byte
	hash  []byte
}

func NewFixedTreeNode(index uint64, key, hash []byte) FixedTreeNode {
	return FixedTreeNode{index: index, key: key, hash: hash}
}

func (no FixedTreeNode) Index() uint64 {
	return no.index
}

func (no FixedTreeNode) Key() []byte {
	return no.key
}

func (no FixedTreeNode) Hash() []byte {
	return no.hash
}

func (no FixedTreeNode) IsEmpty() bool {
	return len(no.key) < 1
}

func (no FixedTreeNode) IsValid([]byte) error {
	if no.IsEmpty() {
		return EmptyKeyError.Call()
	}

	if len(no.hash) < 1 {
		return InvalidNodeError.Errorf("empty hash")
	}

	return nil
}

func (no FixedTreeNode) Equal(n FixedTreeNode) bool {
	return no.index == n.index && bytes.Equal(no.key, n.key) && bytes.Equal(no.hash, n.hash)
}

// FixedTree is the complete binary tree of keys. The children of node, i
// are 2i+1 and 2i+2, so the tree is fixed by the order of keys.
type FixedTree struct {
	nodes []FixedTreeNode
}

func NewFixedTree(keys [][]byte) (FixedTree, error) {
	nodes := make([]FixedTreeNode, len(keys))
	for i := range keys {
		if len(keys[i]) < 1 {
			return FixedTree{}, EmptyKeyError.Errorf("node, %d", i)
		}

		nodes[i] = NewFixedTreeNode(uint64(i), keys[i], nil)
	}

	tr := FixedTree{nodes: nodes}

	for i := len(nodes) - 1; i >= 0; i-- {
		left, right := tr.children(uint64(i))
		nodes[i].hash = FixedTreeNodeHash(nodes[i], left, right)
	}

	return tr, nil
}

func (tr FixedTree) Len() int {
	return len(tr.nodes)
}

// Root returns the hash of top node; empty tree has nil root.
func (tr FixedTree) Root() []byte {
	if tr.Len() < 1 {
		return nil
	}

	return tr.nodes[0].Hash()
}

func (tr FixedTree) Node(index uint64) (FixedTreeNode, error) {
	if index >= uint64(tr.Len()) {
		return FixedTreeNode{}, util.NotFoundError.Errorf("node, %d not found", index)
	}

	return tr.nodes[index], nil
}

func (tr FixedTree) Traverse(f func(FixedTreeNode) (bool, error)) error {
	for i := range tr.nodes {
		keep, err := f(tr.nodes[i])
		if err != nil {
			return err
		} else if !keep {
			return nil
		}
	}

	return nil
}

func (tr FixedTree) IsValid([]byte) error {
	for i := range tr.nodes {
		n := tr.nodes[i]
		if err := n.IsValid(nil); err != nil {
			return err
		} else if n.Index() != uint64(i) {
			return InvalidNodeError.Errorf("wrong index; %d != %d", n.Index(), i)
		}

		left, right := tr.children(n.Index())
		if !bytes.Equal(n.Hash(), FixedTreeNodeHash(n, left, right)) {
			return HashNotMatchError.Errorf("node, %d", i)
		}
	}

	return nil
}

// Proof returns the nodes from the node of index up to the root. Each node
// is followed by it's children, so the proof is the list of
// [node, left, right]; the missing child is the empty FixedTreeNode.
func (tr FixedTree) Proof(index uint64) ([]FixedTreeNode, error) {
	if _, err := tr.Node(index); err != nil {
		return nil, err
	}

	var pr []FixedTreeNode

	i := index
	for {
		left, right := tr.children(i)
		pr = append(pr, tr.nodes[i], left, right)

		if i == 0 {
			break
		}

		i = (i - 1) / 2
	}

	return pr, nil
}

func (tr FixedTree) children(index uint64) (FixedTreeNode, FixedTreeNode) {
	var left, right FixedTreeNode

	size := uint64(tr.Len())
	if i := index*2 + 1; i < size {
		left = tr.nodes[i]
	}

	if i := index*2 + 2; i < size {
		right = tr.nodes[i]
	}

	return left, right
}

func FixedTreeNodeHash(self, left, right FixedTreeNode) []byte {
	return valuehash.NewSHA256(util.ConcatBytesSlice(
		util.Uint64ToBytes(self.Index()),
		self.Key(),
		left.Hash(),
		right.Hash(),
	)).Bytes()
}

// ProveFixedTreeProof checks the proof from Proof is chained up to the
// root; the root hash of proof is the hash of the last node.
func ProveFixedTreeProof(pr []FixedTreeNode) error {
	if err := proveFixedTreeProof(pr); err != nil {
		return InvalidProofError.Wrap(err)
	}

	return nil
}

func proveFixedTreeProof(pr []FixedTreeNode) error {
	switch n := len(pr); {
	case n < 3:
		return InvalidNodeError.Errorf("nothing to prove")
	case n%3 != 0:
		return InvalidNodeError.Errorf("invalid proof; len=%d", n)
	case pr[n-3].Index() != 0:
		return InvalidNodeError.Errorf("root node not found")
	}

	for i := 0; i < len(pr); i += 3 {
		self, left, right := pr[i], pr[i+1], pr[i+2]
		if err := self.IsValid(nil); err != nil {
			return err
		}

		if !left.IsEmpty() && left.Index() != self.Index()*2+1 {
			return InvalidNodeError.Errorf("node, %d is not left child of %d", left.Index(), self.Index())
		}

		if !right.IsEmpty() && right.Index() != self.Index()*2+2 {
			return InvalidNodeError.Errorf("node, %d is not right child of %d", right.Index(), self.Index())
		}

		if !bytes.Equal(self.Hash(), FixedTreeNodeHash(self, left, right)) {
			return HashNotMatchError.Errorf("node, %d", self.Index())
		}

		if i == 0 {
			continue
		}

		// NOTE previous node should be one of the children
		prev := pr[i-3]
		if !prev.Equal(left) && !prev.Equal(right) {
			return InvalidNodeError.Errorf("node, %d is not child of %d", prev.Index(), self.Index())
		}
	}

	return nil
}
