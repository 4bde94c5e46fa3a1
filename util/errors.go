package util

var (
	NotFoundError  = NewError("not found")
	FoundError     = NewError("found")
	WrongTypeError = NewError("wrong type")
)
