package block

import (
	"time"

	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/tree"
	"github.com/spikeekips/signable/util/valuehash"
)

var (
	BlockType = hint.Type("block")
	BlockHint = hint.NewHint(BlockType, "v0.0.1")
)

const MaxTransactions = 10000

// Block is signed by the peers which agree on it. The hash is derived from
// the height, previous block hash, the root of transactions tree and the
// creation time.
type Block struct {
	base.BaseSignable
	height       uint64
	previous     valuehash.Hash
	transactions []valuehash.Hash
	txTree       tree.FixedTree
}

func NewBlock(height uint64, previous valuehash.Hash, transactions []valuehash.Hash, createdAt time.Time) (Block, error) {
	bk, err := newBlock(height, previous, transactions, createdAt)
	if err != nil {
		return Block{}, err
	}

	return bk, bk.isValidPayload()
}

func newBlock(height uint64, previous valuehash.Hash, transactions []valuehash.Hash, createdAt time.Time) (Block, error) {
	txs := make([]valuehash.Hash, len(transactions))
	copy(txs, transactions)

	keys := make([][]byte, len(txs))
	for i := range txs {
		if txs[i] == nil {
			return Block{}, isvalid.InvalidError.Errorf("empty transaction hash, %d", i)
		}

		keys[i] = txs[i].Bytes()
	}

	tr, err := tree.NewFixedTree(keys)
	if err != nil {
		return Block{}, err
	}

	bk := Block{height: height, previous: previous, transactions: txs, txTree: tr}

	createdAt = localtime.Normalize(createdAt)
	b := bk.payload(createdAt)

	bk.BaseSignable = base.NewBaseSignable(func() valuehash.Hash {
		return valuehash.NewSHA256(b)
	}, createdAt)

	return bk, nil
}

func (Block) Hint() hint.Hint {
	return BlockHint
}

func (bk Block) Height() uint64 {
	return bk.height
}

// Previous is the hash of previous block; genesis block has nil.
func (bk Block) Previous() valuehash.Hash {
	return bk.previous
}

func (bk Block) Transactions() []valuehash.Hash {
	return bk.transactions
}

// TransactionsRoot is the root hash of the tree of transaction hashes.
func (bk Block) TransactionsRoot() []byte {
	return bk.txTree.Root()
}

// TransactionProof returns the proof of the transaction in this block. It
// can be checked by tree.ProveFixedTreeProof.
func (bk Block) TransactionProof(h valuehash.Hash) ([]tree.FixedTreeNode, error) {
	for i := range bk.transactions {
		if bk.transactions[i].Equal(h) {
			return bk.txTree.Proof(uint64(i))
		}
	}

	return nil, util.NotFoundError.Errorf("transaction, %q not in block", h)
}

func (bk Block) IsValid(networkID []byte) error {
	return isvalid.CheckFunc(
		bk.isValidPayload,
		func() error {
			return base.IsValidSignatures(bk, networkID)
		},
	)
}

func (bk Block) isValidPayload() error {
	switch {
	case bk.height > 0 && bk.previous == nil:
		return isvalid.InvalidError.Errorf("empty previous block hash")
	case len(bk.transactions) > MaxTransactions:
		return isvalid.InvalidError.Errorf("too many transactions; %d > %d", len(bk.transactions), MaxTransactions)
	case bk.CreatedAt().IsZero():
		return isvalid.InvalidError.Errorf("empty created_at")
	}

	if bk.previous != nil {
		if err := bk.previous.IsValid(nil); err != nil {
			return isvalid.InvalidError.Wrap(err)
		}
	}

	found := map[string]struct{}{}
	for i := range bk.transactions {
		h := bk.transactions[i]
		if err := h.IsValid(nil); err != nil {
			return isvalid.InvalidError.Wrap(err)
		}

		if _, dup := found[h.String()]; dup {
			return isvalid.InvalidError.Errorf("duplicated transaction, %q", h)
		}

		found[h.String()] = struct{}{}
	}

	return bk.txTree.IsValid(nil)
}

func (bk Block) payload(createdAt time.Time) []byte {
	var previous []byte
	if bk.previous != nil {
		previous = bk.previous.Bytes()
	}

	return util.ConcatBytesSlice(
		bk.Hint().Bytes(),
		util.Uint64ToBytes(bk.height),
		valuehash.NewSHA256(previous).Bytes(),
		valuehash.NewSHA256(bk.txTree.Root()).Bytes(),
		localtime.NewTime(createdAt).Bytes(),
	)
}
