package query

import (
	"time"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/spikeekips/signable/base"
	"github.com/spikeekips/signable/util/hint"
	"github.com/spikeekips/signable/util/isvalid"
	"github.com/spikeekips/signable/util/localtime"
	"github.com/spikeekips/signable/util/valuehash"
)

var (
	QueryType = hint.Type("query")
	QueryHint = hint.NewHint(QueryType, "v0.0.1")
)

const (
	GetAccountQuery                  = "get_account"
	GetSignatoriesQuery              = "get_signatories"
	GetAccountTransactionsQuery      = "get_account_transactions"
	GetAccountAssetTransactionsQuery = "get_account_asset_transactions"
	GetTransactionsQuery             = "get_transactions"
	GetAccountAssetsQuery            = "get_account_assets"
	GetRolesQuery                    = "get_roles"
	GetRolePermissionsQuery          = "get_role_permissions"
	GetAssetInfoQuery                = "get_asset_info"
)

var knownQueries = map[string]struct{}{
	GetAccountQuery:                  {},
	GetSignatoriesQuery:              {},
	GetAccountTransactionsQuery:      {},
	GetAccountAssetTransactionsQuery: {},
	GetTransactionsQuery:             {},
	GetAccountAssetsQuery:            {},
	GetRolesQuery:                    {},
	GetRolePermissionsQuery:          {},
	GetAssetInfoQuery:                {},
}

const MaxQueryArgs = 100

// Query is the signed request of the creator account. The counter is
// increased by the creator for each query, so the same request has
// different hash. The hash is blake3 of the rlp encoded payload.
type Query struct {
	base.BaseSignable
	creator string
	counter uint64
	name    string
	args    []string
}

func NewQuery(creator string, counter uint64, name string, args []string, createdAt time.Time) (Query, error) {
	qu, err := newQuery(creator, counter, name, args, createdAt)
	if err != nil {
		return Query{}, err
	}

	return qu, qu.isValidPayload()
}

func newQuery(creator string, counter uint64, name string, args []string, createdAt time.Time) (Query, error) {
	a := make([]string, len(args))
	copy(a, args)

	qu := Query{creator: creator, counter: counter, name: name, args: a}

	createdAt = localtime.Normalize(createdAt)

	b, err := qu.payload(createdAt)
	if err != nil {
		return Query{}, err
	}

	qu.BaseSignable = base.NewBaseSignable(func() valuehash.Hash {
		return valuehash.NewBlake3256(b)
	}, createdAt)

	return qu, nil
}

func (Query) Hint() hint.Hint {
	return QueryHint
}

func (qu Query) Creator() string {
	return qu.creator
}

func (qu Query) Counter() uint64 {
	return qu.counter
}

func (qu Query) Name() string {
	return qu.name
}

func (qu Query) Args() []string {
	return qu.args
}

func (qu Query) IsValid(networkID []byte) error {
	return isvalid.CheckFunc(
		qu.isValidPayload,
		func() error {
			return base.IsValidSignatures(qu, networkID)
		},
	)
}

func (qu Query) isValidPayload() error {
	if err := base.IsValidAccountID(qu.creator); err != nil {
		return err
	}

	if _, found := knownQueries[qu.name]; !found {
		return isvalid.InvalidError.Errorf("unknown query, %q", qu.name)
	}

	switch {
	case qu.counter < 1:
		return isvalid.InvalidError.Errorf("zero counter")
	case len(qu.args) > MaxQueryArgs:
		return isvalid.InvalidError.Errorf("too many query args; %d > %d", len(qu.args), MaxQueryArgs)
	case qu.CreatedAt().IsZero():
		return isvalid.InvalidError.Errorf("empty created_at")
	}

	return nil
}

type queryRLPPayload struct {
	HT        string
	Creator   string
	Counter   uint64
	Name      string
	Args      []string
	CreatedAt string
}

func (qu Query) payload(createdAt time.Time) ([]byte, error) {
	return rlp.EncodeToBytes(queryRLPPayload{
		HT:        qu.Hint().String(),
		Creator:   qu.creator,
		Counter:   qu.counter,
		Name:      qu.name,
		Args:      qu.args,
		CreatedAt: localtime.RFC3339(createdAt),
	})
}
