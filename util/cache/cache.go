package cache

import (
	"net/url"
	"time"

	"github.com/pkg/errors"
)

var DefaultCacheExpire = time.Hour

type Cache interface {
	Get(interface{}) (interface{}, error)
	Has(interface{}) bool
	Set(interface{}, interface{}, time.Duration) error
	Purge() error
	Remove(interface{}) bool
}

// NewCacheFromURI creates Cache from uri, like "gcache:?type=lru&size=100" or
// "dummy:".
func NewCacheFromURI(uri string) (Cache, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid uri of cache, %q", uri)
	}

	switch u.Scheme {
	case "gcache":
		return NewGCacheWithQuery(u.Query())
	case "dummy":
		return Dummy{}, nil
	default:
		return nil, errors.Errorf("not supported uri of cache, %q", uri)
	}
}
