package base

import (
	"bytes"
	"sort"
	"sync"

	"github.com/spikeekips/signable/base/key"
)

// SignatureSetReader is the read-only view of SignatureSet.
type SignatureSetReader interface {
	Has(Signature) bool
	Len() int
	// Traverse stops when callback returns false.
	Traverse(func(Signature) bool)
	Signatures() []Signature
	Signers() []key.Publickey
	Equal(SignatureSetReader) bool
}

// SignatureSet keeps the unique Signatures. The uniqueness is decided by both
// of signer and signature bytes, so the same signer can have multiple
// Signatures if the signature bytes are different. Signatures can not be
// removed.
type SignatureSet struct {
	sync.RWMutex
	buckets map[uint64][]Signature
	l       int
}

func NewSignatureSet(sgs ...Signature) *SignatureSet {
	ss := &SignatureSet{buckets: map[uint64][]Signature{}}

	for i := range sgs {
		_ = ss.Insert(sgs[i])
	}

	return ss
}

// Insert returns true only when the set is changed; nil Signature or already
// inserted Signature is ignored.
func (ss *SignatureSet) Insert(sg Signature) bool {
	if sg == nil {
		return false
	}

	k := SignatureHashKey(sg)

	ss.Lock()
	defer ss.Unlock()

	if ss.buckets == nil {
		ss.buckets = map[uint64][]Signature{}
	}

	if findInBucket(ss.buckets[k], sg) {
		return false
	}

	ss.buckets[k] = append(ss.buckets[k], sg)
	ss.l++

	return true
}

func (ss *SignatureSet) Has(sg Signature) bool {
	if sg == nil {
		return false
	}

	k := SignatureHashKey(sg)

	ss.RLock()
	defer ss.RUnlock()

	return findInBucket(ss.buckets[k], sg)
}

func (ss *SignatureSet) Len() int {
	ss.RLock()
	defer ss.RUnlock()

	return ss.l
}

// Traverse runs callback over the snapshot, so callback can call the methods
// of SignatureSet, including Insert.
func (ss *SignatureSet) Traverse(callback func(Signature) bool) {
	for _, sg := range ss.Signatures() {
		if !callback(sg) {
			return
		}
	}
}

// Signatures returns the copy of Signatures, ordered by signer and signature
// bytes.
func (ss *SignatureSet) Signatures() []Signature {
	ss.RLock()
	sgs := make([]Signature, 0, ss.l)
	for k := range ss.buckets {
		sgs = append(sgs, ss.buckets[k]...)
	}
	ss.RUnlock()

	sort.Slice(sgs, func(i, j int) bool {
		return compareSignature(sgs[i], sgs[j]) < 0
	})

	return sgs
}

// Signers returns the distinct signers, ordered by it's bytes.
func (ss *SignatureSet) Signers() []key.Publickey {
	sgs := ss.Signatures()

	var last []byte
	signers := make([]key.Publickey, 0, len(sgs))
	for i := range sgs {
		b := signerBytes(sgs[i])
		if len(signers) > 0 && bytes.Equal(last, b) {
			continue
		}

		signers = append(signers, sgs[i].Signer())
		last = b
	}

	return signers
}

// Equal checks both have same Signatures regardless of the insertion order.
func (ss *SignatureSet) Equal(b SignatureSetReader) bool {
	if b == nil {
		return false
	}

	sgs := ss.Signatures()
	if len(sgs) != b.Len() {
		return false
	}

	for i := range sgs {
		if !b.Has(sgs[i]) {
			return false
		}
	}

	return true
}

func findInBucket(bucket []Signature, sg Signature) bool {
	for i := range bucket {
		if SignatureEqual(bucket[i], sg) {
			return true
		}
	}

	return false
}

func compareSignature(a, b Signature) int {
	if c := bytes.Compare(signerBytes(a), signerBytes(b)); c != 0 {
		return c
	}

	return bytes.Compare(a.SignedHash().Bytes(), b.SignedHash().Bytes())
}
