package query

import (
	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

func (qu *Query) unpack(
	h valuehash.Hash,
	ht hint.Hint,
	creator string,
	counter uint64,
	name string,
	args []string,
	createdAt localtime.Time,
	sgs []base.BaseSignature,
) error {
	if err := QueryHint.IsCompatible(ht); err != nil {
		return err
	}

	uqu, err := newQuery(creator, counter, name, args, createdAt.Time)
	if err != nil {
		return err
	}

	if !uqu.Hash().Equal(h) {
		return isvalid.InvalidError.Errorf("hash does not match; %q != %q", uqu.Hash(), h)
	}

	for i := range sgs {
		_ = uqu.AddSignature(sgs[i])
	}

	*qu = uqu

	return nil
}
