package isvalid

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type dummyValider struct {
	err error
}

func (dv dummyValider) IsValid([]byte) error {
	return dv.err
}

type testCheck struct {
	suite.Suite
}

func (t *testCheck) TestValid() {
	t.NoError(Check(nil, false, dummyValider{}, dummyValider{}))
}

func (t *testCheck) TestInvalid() {
	e := errors.New("showme")
	err := Check(nil, false, dummyValider{}, dummyValider{err: e})
	t.True(errors.Is(err, InvalidError))
	t.True(errors.Is(err, e))
}

func (t *testCheck) TestNil() {
	var p *dummyValider

	err := Check(nil, false, dummyValider{}, nil)
	t.True(errors.Is(err, InvalidError))
	t.Contains(err.Error(), "1th: nil")

	t.Error(Check(nil, false, p))

	t.NoError(Check(nil, true, dummyValider{}, nil, p))
}

func (t *testCheck) TestCheckFunc() {
	t.NoError(CheckFunc(func() error { return nil }))

	e := errors.New("findme")
	err := CheckFunc(func() error { return nil }, func() error { return e })
	t.True(errors.Is(err, InvalidError))
	t.True(errors.Is(err, e))

	t.Error(CheckFunc(nil))
}

func TestCheck(t *testing.T) {
	suite.Run(t, new(testCheck))
}
