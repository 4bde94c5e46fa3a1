package cmds

import (
	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/base/block"
	"github.com/spikeekips/signable/base/operation"
	"github.com/spikeekips/signable/base/query"
	"github.com/spikeekips/signable/util"
	jsonenc "github.com/spikeekips/signable/util/encoder/json"
	"github.com/spikeekips/signable/util/hint"
)

// SignableEntity is the decoded signable, which can be validated and encoded
// again.
type SignableEntity interface {
	base.Signable
	hint.Hinter
	IsValid([]byte) error
}

// DecodeSignable decodes json by it's hint.
func DecodeSignable(b []byte) (SignableEntity, error) {
	ht, err := jsonenc.LoadHint(b)
	if err != nil {
		return nil, err
	}

	switch ht.Type() {
	case operation.TransactionType:
		var tx operation.Transaction
		if err := jsonenc.Unmarshal(b, &tx); err != nil {
			return nil, err
		}

		return tx, nil
	case block.BlockType:
		var bk block.Block
		if err := jsonenc.Unmarshal(b, &bk); err != nil {
			return nil, err
		}

		return bk, nil
	case query.QueryType:
		var qu query.Query
		if err := jsonenc.Unmarshal(b, &qu); err != nil {
			return nil, err
		}

		return qu, nil
	default:
		return nil, util.WrongTypeError.Errorf("unknown signable, %q", ht)
	}
}
