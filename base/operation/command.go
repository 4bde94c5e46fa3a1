package operation

import (
	"strconv"

	"github.com/spikeekips/signable/base/key"
	"github.com/spikeekips/signable/util"
	"github.com/spikeekips/signable/util/isvalid"
)

const (
	MaxCommandArgs       = 100
	MaxCommandNameLength = 100
)

const (
	AddPeerCommand               = "add_peer"
	AddSignatoryCommand          = "add_signatory"
	RemoveSignatoryCommand       = "remove_signatory"
	CreateAccountCommand         = "create_account"
	CreateDomainCommand          = "create_domain"
	CreateAssetCommand           = "create_asset"
	CreateRoleCommand            = "create_role"
	AppendRoleCommand            = "append_role"
	SetQuorumCommand             = "set_quorum"
	AddAssetQuantityCommand      = "add_asset_quantity"
	SubtractAssetQuantityCommand = "subtract_asset_quantity"
	TransferAssetCommand         = "transfer_asset"
)

// commandArgs is the number of arguments of the known commands; -1 means
// one or more.
var commandArgs = map[string]int{
	AddPeerCommand:               2,
	AddSignatoryCommand:          2,
	RemoveSignatoryCommand:       2,
	CreateAccountCommand:         3,
	CreateDomainCommand:          2,
	CreateAssetCommand:           3,
	CreateRoleCommand:            -1,
	AppendRoleCommand:            2,
	SetQuorumCommand:             2,
	AddAssetQuantityCommand:      3,
	SubtractAssetQuantityCommand: 3,
	TransferAssetCommand:         4,
}

// Command is the instruction of Transaction. The arguments are kept as
// strings in order.
type Command struct {
	name string
	args []string
}

func NewCommand(name string, args ...string) Command {
	a := make([]string, len(args))
	copy(a, args)

	return Command{name: name, args: a}
}

func (cm Command) Name() string {
	return cm.name
}

func (cm Command) Args() []string {
	return cm.args
}

func (cm Command) Equal(b Command) bool {
	if cm.name != b.name || len(cm.args) != len(b.args) {
		return false
	}

	for i := range cm.args {
		if cm.args[i] != b.args[i] {
			return false
		}
	}

	return true
}

func (cm Command) IsValid([]byte) error {
	switch l := len(cm.name); {
	case l < 1:
		return isvalid.InvalidError.Errorf("empty command name")
	case l > MaxCommandNameLength:
		return isvalid.InvalidError.Errorf("too long command name; %d > %d", l, MaxCommandNameLength)
	case len(cm.args) > MaxCommandArgs:
		return isvalid.InvalidError.Errorf("too many command args; %d > %d", len(cm.args), MaxCommandArgs)
	}

	n, known := commandArgs[cm.name]
	if !known {
		return isvalid.InvalidError.Errorf("unknown command, %q", cm.name)
	}

	switch {
	case n < 0 && len(cm.args) < 1:
		return isvalid.InvalidError.Errorf("empty args of %q", cm.name)
	case n >= 0 && len(cm.args) != n:
		return isvalid.InvalidError.Errorf("wrong number of args of %q; %d != %d", cm.name, len(cm.args), n)
	}

	return cm.isValidArgs()
}

func (cm Command) isValidArgs() error {
	switch cm.name {
	case AddSignatoryCommand, RemoveSignatoryCommand:
		return isvalid.CheckFunc(
			func() error { return isValidAccountID(cm.args[0]) },
			func() error { return isValidPublickey(cm.args[1]) },
		)
	case AddPeerCommand:
		return isValidPublickey(cm.args[1])
	case CreateAccountCommand:
		return isValidPublickey(cm.args[2])
	case AppendRoleCommand:
		return isValidAccountID(cm.args[0])
	case CreateAssetCommand:
		if _, err := strconv.ParseUint(cm.args[2], 10, 8); err != nil {
			return isvalid.InvalidError.Errorf("invalid precision, %q", cm.args[2])
		}
	case SetQuorumCommand:
		if _, err := strconv.ParseUint(cm.args[1], 10, 32); err != nil {
			return isvalid.InvalidError.Errorf("invalid quorum, %q", cm.args[1])
		}

		return isValidAccountID(cm.args[0])
	case AddAssetQuantityCommand, SubtractAssetQuantityCommand:
		return isvalid.CheckFunc(
			func() error { return isValidAccountID(cm.args[0]) },
			func() error { return isValidAmount(cm.args[2]) },
		)
	case TransferAssetCommand:
		return isvalid.CheckFunc(
			func() error { return isValidAccountID(cm.args[0]) },
			func() error { return isValidAccountID(cm.args[1]) },
			func() error { return isValidAmount(cm.args[3]) },
		)
	}

	return nil
}

func AddPeer(address string, pub key.Publickey) Command {
	return NewCommand(AddPeerCommand, address, pub.String())
}

func AddSignatory(accountID string, pub key.Publickey) Command {
	return NewCommand(AddSignatoryCommand, accountID, pub.String())
}

func RemoveSignatory(accountID string, pub key.Publickey) Command {
	return NewCommand(RemoveSignatoryCommand, accountID, pub.String())
}

func CreateAccount(name, domainID string, pub key.Publickey) Command {
	return NewCommand(CreateAccountCommand, name, domainID, pub.String())
}

func CreateDomain(domainID, defaultRole string) Command {
	return NewCommand(CreateDomainCommand, domainID, defaultRole)
}

func CreateAsset(name, domainID string, precision uint8) Command {
	return NewCommand(CreateAssetCommand, name, domainID, strconv.FormatUint(uint64(precision), 10))
}

func CreateRole(name string, permissions ...string) Command {
	return NewCommand(CreateRoleCommand, append([]string{name}, permissions...)...)
}

func AppendRole(accountID, role string) Command {
	return NewCommand(AppendRoleCommand, accountID, role)
}

func SetQuorum(accountID string, quorum uint32) Command {
	return NewCommand(SetQuorumCommand, accountID, strconv.FormatUint(uint64(quorum), 10))
}

func AddAssetQuantity(accountID, assetID string, amount util.UnsignedBigInt) Command {
	return NewCommand(AddAssetQuantityCommand, accountID, assetID, amount.String())
}

func SubtractAssetQuantity(accountID, assetID string, amount util.UnsignedBigInt) Command {
	return NewCommand(SubtractAssetQuantityCommand, accountID, assetID, amount.String())
}

func TransferAsset(src, dest, assetID string, amount util.UnsignedBigInt) Command {
	return NewCommand(TransferAssetCommand, src, dest, assetID, amount.String())
}
