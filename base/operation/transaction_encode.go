package operation

import (
	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

// unpack rebuilds Transaction from the payload and adds the decoded
// Signatures; the duplicated Signatures are ignored.
func (tx *Transaction) unpack(
	h valuehash.Hash,
	ht hint.Hint,
	creator string,
	quorum uint32,
	commands []Command,
	createdAt localtime.Time,
	sgs []base.BaseSignature,
) error {
	if err := TransactionHint.IsCompatible(ht); err != nil {
		return err
	}

	utx, err := newTransaction(creator, quorum, commands, createdAt.Time)
	if err != nil {
		return err
	}

	if !utx.Hash().Equal(h) {
		return isvalid.InvalidError.Errorf("hash does not match; %q != %q", utx.Hash(), h)
	}

	for i := range sgs {
		_ = utx.AddSignature(sgs[i])
	}

	*tx = utx

	return nil
}
