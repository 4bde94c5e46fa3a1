package base

import (
	"time"

	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

// Signable is identified by the hash of it's payload and collects
// Signatures over that hash. Adding Signatures never changes the hash or the
// creation time.
type Signable interface {
	valuehash.Hasher
	Signatures() SignatureSetReader
	AddSignature(Signature) bool
	CreatedAt() time.Time
}

// BaseSignable is embedded by the Signable entities. The copies of
// BaseSignable share the same SignatureSet.
type BaseSignable struct {
	id        *valuehash.Identity
	ss        *SignatureSet
	createdAt time.Time
}

// NewBaseSignable generates the hash by f at the first Hash() call.
func NewBaseSignable(f func() valuehash.Hash, createdAt time.Time) BaseSignable {
	return BaseSignable{
		id:        valuehash.NewIdentity(f),
		ss:        NewSignatureSet(),
		createdAt: localtime.Normalize(createdAt),
	}
}

func (sa BaseSignable) Hash() valuehash.Hash {
	if sa.id == nil {
		return nil
	}

	return sa.id.Hash()
}

func (sa BaseSignable) Signatures() SignatureSetReader {
	if sa.ss == nil {
		return NewSignatureSet()
	}

	return sa.ss
}

func (sa BaseSignable) AddSignature(sg Signature) bool {
	if sa.ss == nil {
		return false
	}

	return sa.ss.Insert(sg)
}

func (sa BaseSignable) CreatedAt() time.Time {
	return sa.createdAt
}
