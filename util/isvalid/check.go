package isvalid

import "reflect"

// Check runs IsValid of the given IsValiders in order. With allowNil, nil
// elements are skipped.
func Check(b []byte, allowNil bool, vs ...IsValider) error {
	for i, v := range vs {
		if isNil(v) {
			if allowNil {
				continue
			}

			return InvalidError.Errorf("%dth: nil can not be checked", i)
		}

		if err := v.IsValid(b); err != nil {
			return InvalidError.Wrap(err)
		}
	}

	return nil
}

func CheckFunc(fs ...func() error) error {
	for i := range fs {
		if fs[i] == nil {
			return InvalidError.Errorf("%dth: nil func", i)
		}

		if err := fs[i](); err != nil {
			return InvalidError.Wrap(err)
		}
	}

	return nil
}

func isNil(v IsValider) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
