package valuehash

import "sync"

// Identity computes the content hash once and keeps it. Hash() always returns
// the first generated value, so nothing attached to the owner after
// construction can change it.
type Identity struct {
	once sync.Once
	f    func() Hash
	h    Hash
}

func NewIdentity(f func() Hash) *Identity {
	return &Identity{f: f}
}

// NewFixedIdentity keeps the already known hash, like the one loaded from
// encoded data.
func NewFixedIdentity(h Hash) *Identity {
	id := &Identity{h: h}
	id.once.Do(func() {})

	return id
}

func (id *Identity) Hash() Hash {
	id.once.Do(func() {
		if id.f != nil {
			id.h = id.f()
		}
	})

	return id.h
}
