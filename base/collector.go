package base

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/logging"
	"github.com/spikeekips/signable/util/valuehash"
)

// SignatureCollector gathers the Signatures received from the other nodes
// for the tracked Signables. Receive can be called concurrently.
type SignatureCollector struct {
	sync.RWMutex
	*logging.Logging
	verifier *SignatureVerifier
	tracked  map[string]Signable
}

func NewSignatureCollector(verifier *SignatureVerifier) *SignatureCollector {
	return &SignatureCollector{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "signature-collector")
		}),
		verifier: verifier,
		tracked:  map[string]Signable{},
	}
}

func (sc *SignatureCollector) SetLogging(l *logging.Logging) *logging.Logging {
	_ = sc.verifier.SetLogging(l)

	return sc.Logging.SetLogging(l)
}

// Track starts to collect the Signatures of Signable. The existing
// Signatures of Signable are not verified.
func (sc *SignatureCollector) Track(e Signable) error {
	if e == nil || e.Hash() == nil {
		return isvalid.InvalidError.Errorf("empty Signable")
	}

	k := e.Hash().String()

	sc.Lock()
	defer sc.Unlock()

	if _, found := sc.tracked[k]; found {
		return util.FoundError.Errorf("already tracked, %q", k)
	}

	sc.tracked[k] = e

	sc.Log().Debug().Str("hash", k).Msg("signable tracked")

	return nil
}

func (sc *SignatureCollector) Untrack(h valuehash.Hash) bool {
	if h == nil {
		return false
	}

	sc.Lock()
	defer sc.Unlock()

	k := h.String()
	if _, found := sc.tracked[k]; !found {
		return false
	}

	delete(sc.tracked, k)

	return true
}

func (sc *SignatureCollector) Signable(h valuehash.Hash) (Signable, bool) {
	if h == nil {
		return nil, false
	}

	sc.RLock()
	defer sc.RUnlock()

	e, found := sc.tracked[h.String()]

	return e, found
}

// Receive verifies the Signature and adds it to the tracked Signable. The
// returned bool is false when the Signature was already added.
func (sc *SignatureCollector) Receive(h valuehash.Hash, sg Signature) (bool, error) {
	if h == nil {
		return false, isvalid.InvalidError.Errorf("empty hash")
	}

	e, found := sc.Signable(h)
	if !found {
		return false, util.NotFoundError.Errorf("signable not tracked, %q", h)
	}

	if err := sc.verifier.Verify(e.Hash(), sg); err != nil {
		return false, err
	}

	added := e.AddSignature(sg)

	sc.Log().Trace().Stringer("hash", h).Str("signer", signerString(sg)).Bool("added", added).
		Msg("signature received")

	return added, nil
}

// IsFinished checks the number of distinct signers reaches the threshold.
func (sc *SignatureCollector) IsFinished(h valuehash.Hash, thr Threshold) (bool, error) {
	if h == nil {
		return false, isvalid.InvalidError.Errorf("empty hash")
	}

	if err := thr.IsValid(nil); err != nil {
		return false, err
	}

	e, found := sc.Signable(h)
	if !found {
		return false, util.NotFoundError.Errorf("signable not tracked, %q", h)
	}

	return uint(len(e.Signatures().Signers())) >= thr.Threshold, nil
}
