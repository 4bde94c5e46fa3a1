package cache

import (
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/bluele/gcache"
	"github.com/pkg/errors"
)

var (
	DefaultGCacheSize = 100 * 100
	DefaultGCacheType = "lru"
)

type GCache struct {
	gc     gcache.Cache
	tp     string
	size   int
	expire time.Duration
}

func NewGCacheWithQuery(config url.Values) (*GCache, error) {
	size := DefaultGCacheSize
	expire := DefaultCacheExpire
	tp := DefaultGCacheType

	if s := config.Get("size"); len(s) > 0 {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid size, %q of GCache", s)
		}

		if n > 0 && n <= math.MaxInt32 {
			size = int(n)
		}
	}

	if s := config.Get("expire"); len(s) > 0 {
		n, err := time.ParseDuration(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid expire, %q of GCache", s)
		}

		expire = n
	}

	if s := config.Get("type"); len(s) > 0 {
		tp = s
	}

	return NewGCache(tp, size, expire)
}

func NewGCache(tp string, size int, expire time.Duration) (*GCache, error) {
	builder := gcache.New(size)

	switch tp {
	case "lru":
		builder = builder.LRU()
	case "lfu":
		builder = builder.LFU()
	case "arc":
		builder = builder.ARC()
	default:
		return nil, errors.Errorf("not supported type, %q of GCache", tp)
	}

	if expire > 0 {
		builder = builder.Expiration(expire)
	}

	return &GCache{
		gc:     builder.Build(),
		tp:     tp,
		size:   size,
		expire: expire,
	}, nil
}

func (ca *GCache) Has(key interface{}) bool {
	return ca.gc.Has(key)
}

func (ca *GCache) Get(key interface{}) (interface{}, error) {
	return ca.gc.Get(key)
}

func (ca *GCache) Set(key, b interface{}, expire time.Duration) error {
	if expire > 0 {
		return ca.gc.SetWithExpire(key, b, expire)
	}

	return ca.gc.Set(key, b)
}

func (ca *GCache) Remove(key interface{}) bool {
	return ca.gc.Remove(key)
}

func (ca *GCache) Purge() error {
	ca.gc.Purge()

	return nil
}
