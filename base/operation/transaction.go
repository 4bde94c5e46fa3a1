package operation

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
	TransactionType = hint.Type("transaction")
	TransactionHint = hint.NewHint(TransactionType, "v0.0.1")
)

const (
	MaxCommands = 1000
	MaxQuorum   = 128
)

// Transaction is the list of Commands created by the creator account. The
// hash is the sha3 of the rlp encoded payload; creator, quorum, commands and
// creation time.
type Transaction struct {
	base.BaseSignable
	creator  string
	quorum   uint32
	commands []Command
}

func NewTransaction(creator string, quorum uint32, commands []Command, createdAt time.Time) (Transaction, error) {
	tx, err := newTransaction(creator, quorum, commands, createdAt)
	if err != nil {
		return Transaction{}, err
	}

	return tx, tx.isValidPayload()
}

func newTransaction(creator string, quorum uint32, commands []Command, createdAt time.Time) (Transaction, error) {
	cms := make([]Command, len(commands))
	copy(cms, commands)

	tx := Transaction{creator: creator, quorum: quorum, commands: cms}

	createdAt = localtime.Normalize(createdAt)

	b, err := tx.payload(createdAt)
	if err != nil {
		return Transaction{}, err
	}

	tx.BaseSignable = base.NewBaseSignable(func() valuehash.Hash {
		return valuehash.NewSHA256(b)
	}, createdAt)

	return tx, nil
}

func (Transaction) Hint() hint.Hint {
	return TransactionHint
}

func (tx Transaction) Creator() string {
	return tx.creator
}

func (tx Transaction) Quorum() uint32 {
	return tx.quorum
}

func (tx Transaction) Commands() []Command {
	return tx.commands
}

// PayloadBytes returns the bytes to be hashed.
func (tx Transaction) PayloadBytes() ([]byte, error) {
	return tx.payload(tx.CreatedAt())
}

// HasQuorum checks the number of distinct signers reaches the quorum.
func (tx Transaction) HasQuorum() bool {
	return uint32(len(tx.Signatures().Signers())) >= tx.quorum
}

func (tx Transaction) IsValid(networkID []byte) error {
	return isvalid.CheckFunc(
		tx.isValidPayload,
		func() error {
			return base.IsValidSignatures(tx, networkID)
		},
	)
}

func (tx Transaction) isValidPayload() error {
	if err := base.IsValidAccountID(tx.creator); err != nil {
		return err
	}

	switch {
	case tx.quorum < 1:
		return isvalid.InvalidError.Errorf("zero quorum")
	case tx.quorum > MaxQuorum:
		return isvalid.InvalidError.Errorf("too big quorum; %d > %d", tx.quorum, MaxQuorum)
	case len(tx.commands) < 1:
		return isvalid.InvalidError.Errorf("empty commands")
	case len(tx.commands) > MaxCommands:
		return isvalid.InvalidError.Errorf("too many commands; %d > %d", len(tx.commands), MaxCommands)
	case tx.CreatedAt().IsZero():
		return isvalid.InvalidError.Errorf("empty created_at")
	}

	for i := range tx.commands {
		if err := tx.commands[i].IsValid(nil); err != nil {
			return isvalid.InvalidError.Errorf("%dth command: %w", i, err)
		}
	}

	return nil
}

type transactionRLPPayload struct {
	HT        string
	Creator   string
	Quorum    uint32
	Commands  []Command
	CreatedAt string
}

func (tx Transaction) payload(createdAt time.Time) ([]byte, error) {
	return rlp.EncodeToBytes(transactionRLPPayload{
		HT:        tx.Hint().String(),
		Creator:   tx.creator,
		Quorum:    tx.quorum,
		Commands:  tx.commands,
		CreatedAt: localtime.RFC3339(createdAt),
	})
}
