package isvalid

import "github.com/spikeekips/signable/util"

var InvalidError = util.NewError("invalid")

type IsValider interface {
	IsValid([]byte) error
}
