package Maps

import (
	"math/bits"

	Go_Trees "github.com/g-m-twostay/go-trees"
	"go.uber.org/zap"
)

const (
	defaultCapacity   = 16
	defaultLoadFactor = 0.75
)

type options struct {
	capacity   int
	loadFactor float64
	seed       Go_Trees.Hasher
	log        *zap.Logger
}

// Option configures the hash maps and sets built on them.
type Option func(*options)

// WithCapacity hints the number of elements to hold without growing. The bucket array length is the smallest
// power of 2 that fits n at the load factor.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLoadFactor is the average number of elements per bucket that triggers growing. Non-positive values are ignored.
func WithLoadFactor(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.loadFactor = f
		}
	}
}

// WithSeed of the default hash function. Ignored by the constructors taking a hash function.
func WithSeed(s Go_Trees.Hasher) Option {
	return func(o *options) {
		o.seed = s
	}
}

// WithLogger receives debug logs about growing. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func makeOptions(opts []Option) options {
	o := options{capacity: defaultCapacity, loadFactor: defaultLoadFactor, log: zap.NewNop()}
	for _, f := range opts {
		f(&o)
	}
	return o
}

// bucketCount for the given options, always a power of 2.
func (o *options) bucketCount() int {
	n := int(float64(o.capacity)/o.loadFactor) + 1
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
