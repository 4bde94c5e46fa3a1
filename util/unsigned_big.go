package util

import (
	"math/big"
)

var InvalidUnsignedIntError = NewError("invalid UnsignedInt")

var ZeroInt = big.NewInt(0)

// UnsignedBigInt is the big integer which is not negative.
type UnsignedBigInt struct {
	*big.Int
}

func NewUnsignedIntFromString(s string) (UnsignedBigInt, error) {
	i, ok := big.NewInt(0).SetString(s, 10)
	if !ok {
		return UnsignedBigInt{}, InvalidUnsignedIntError.Errorf("string=%q", s)
	}

	return NewUnsignedIntFromBigInt(i)
}

func NewUnsignedInt(i int64) (UnsignedBigInt, error) {
	return NewUnsignedIntFromBigInt(big.NewInt(i))
}

func NewUnsignedIntFromBigInt(b *big.Int) (UnsignedBigInt, error) {
	us := UnsignedBigInt{Int: b}

	return us, us.IsValid(nil)
}

func (us UnsignedBigInt) IsValid([]byte) error {
	if us.Int == nil {
		return InvalidUnsignedIntError.Errorf("empty")
	}

	if ZeroInt.Cmp(us.Int) > 0 {
		return InvalidUnsignedIntError.Errorf("int=%v", us.Int)
	}

	return nil
}

func (us UnsignedBigInt) BigInt() *big.Int {
	return us.Int
}

func (us UnsignedBigInt) String() string {
	if us.Int == nil {
		return ""
	}

	return us.Int.String()
}
