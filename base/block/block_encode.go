package block

import (
	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

func (bk *Block) unpack(
	h valuehash.Hash,
	ht hint.Hint,
	height uint64,
	previous valuehash.Bytes,
	transactions []valuehash.Bytes,
	createdAt localtime.Time,
	sgs []base.BaseSignature,
) error {
	if err := BlockHint.IsCompatible(ht); err != nil {
		return err
	}

	var pr valuehash.Hash
	if !previous.IsEmpty() {
		pr = previous
	}

	txs := make([]valuehash.Hash, len(transactions))
	for i := range transactions {
		txs[i] = transactions[i]
	}

	ubk, err := newBlock(height, pr, txs, createdAt.Time)
	if err != nil {
		return err
	}

	if !ubk.Hash().Equal(h) {
		return isvalid.InvalidError.Errorf("hash does not match; %q != %q", ubk.Hash(), h)
	}

	for i := range sgs {
		_ = ubk.AddSignature(sgs[i])
	}

	*bk = ubk

	return nil
}
