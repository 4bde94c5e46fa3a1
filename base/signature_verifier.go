package base

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/cache"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/logging"
	"github.com/spikeekips/signable/util/valuehash"
)

// InvalidSignaturesError holds the Signatures failed to be verified with
// their errors.
type InvalidSignaturesError struct {
	Signatures []Signature
	errs       []error
}

func (er *InvalidSignaturesError) Error() string {
	s := make([]string, len(er.errs))
	for i := range er.errs {
		s[i] = fmt.Sprintf("%q: %s", signerString(er.Signatures[i]), er.errs[i])
	}

	return fmt.Sprintf("invalid signatures, %d: [%s]", len(er.errs), strings.Join(s, ", "))
}

func (er *InvalidSignaturesError) Unwrap() []error {
	return er.errs
}

const verifyWorkers = 8

// SignatureVerifier verifies the Signatures of Signable under the network id.
// The verified Signatures are kept in cache, so the same Signature is not
// verified again.
type SignatureVerifier struct {
	*logging.Logging
	networkID NetworkID
	cache     cache.Cache
}

func NewSignatureVerifier(networkID NetworkID, ca cache.Cache) *SignatureVerifier {
	if ca == nil {
		ca = cache.Dummy{}
	}

	return &SignatureVerifier{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "signature-verifier")
		}),
		networkID: networkID,
		cache:     ca,
	}
}

func (sv *SignatureVerifier) NetworkID() NetworkID {
	return sv.networkID
}

func (sv *SignatureVerifier) Verify(h valuehash.Hash, sg Signature) error {
	if h == nil || sg == nil {
		return isvalid.InvalidError.Errorf("empty hash or Signature")
	}

	k := verifiedKey(h, sg)
	if sv.cache.Has(k) {
		return nil
	}

	if err := IsValidSignature(h, sg, sv.networkID); err != nil {
		sv.Log().Debug().Err(err).Stringer("hash", h).Str("signer", signerString(sg)).Msg("invalid signature")

		return err
	}

	if err := sv.cache.Set(k, struct{}{}, 0); err != nil {
		sv.Log().Error().Err(err).Msg("failed to cache verified signature")
	}

	return nil
}

// VerifySignable verifies all the Signatures of Signable. If some of them are
// invalid, *InvalidSignaturesError is returned.
func (sv *SignatureVerifier) VerifySignable(e Signable) error {
	if e == nil {
		return isvalid.InvalidError.Errorf("empty Signable")
	}

	h := e.Hash()
	sgs := e.Signatures().Signatures()

	errs := make([]error, len(sgs))
	_ = util.RunErrgroupWorker(context.Background(), verifyWorkers, int64(len(sgs)),
		func(_ context.Context, i int64) error {
			errs[i] = sv.Verify(h, sgs[i])

			return nil
		},
	)

	var invalids *InvalidSignaturesError
	for i := range errs {
		if errs[i] == nil {
			continue
		}

		if invalids == nil {
			invalids = &InvalidSignaturesError{}
		}

		invalids.Signatures = append(invalids.Signatures, sgs[i])
		invalids.errs = append(invalids.errs, errs[i])
	}

	if invalids != nil {
		return invalids
	}

	sv.Log().Trace().Stringer("hash", h).Int("signatures", e.Signatures().Len()).Msg("signatures verified")

	return nil
}

func verifiedKey(h valuehash.Hash, sg Signature) string {
	return string(h.Bytes()) + string(sg.Bytes())
}

func signerString(sg Signature) string {
	if sg == nil || sg.Signer() == nil {
		return ""
	}

	return sg.Signer().String()
}
