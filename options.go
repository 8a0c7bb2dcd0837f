package linkedhashmap

import (
	"errors"
	"hash/maphash"
	"log/slog"
)

type Option struct {
	bucketCount int
	seed        *maphash.Seed
	logger      *slog.Logger
}

type OptionFunc func(*Option) error

// WithBucketCount fixes the number of hash chains for the lifetime of the
// map. Only Rehash changes it afterwards.
func WithBucketCount(bucketCount int) OptionFunc {
	return func(o *Option) error {
		if o.bucketCount != 0 {
			return errors.New("bucketCount already set")
		}
		if bucketCount < 1 {
			return errors.New("bucketCount must be positive")
		}
		o.bucketCount = bucketCount
		return nil
	}
}

// WithSeed makes bucket placement reproducible across maps sharing the seed.
func WithSeed(seed maphash.Seed) OptionFunc {
	return func(o *Option) error {
		if o.seed != nil {
			return errors.New("seed already set")
		}
		o.seed = &seed
		return nil
	}
}

func WithLogger(l *slog.Logger) OptionFunc {
	return func(o *Option) error {
		if o.logger != nil {
			return errors.New("logger already set")
		}
		if l == nil {
			return errors.New("logger not set")
		}
		o.logger = l
		return nil
	}
}

func fillOpts(options ...OptionFunc) (*Option, error) {
	opts := &Option{}
	for _, opt := range options {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}

	if opts.bucketCount == 0 {
		opts.bucketCount = DefaultBucketCount
	}
	if opts.seed == nil {
		seed := maphash.MakeSeed()
		opts.seed = &seed
	}
	if opts.logger == nil {
		opts.logger = logger
	}
	return opts, nil
}
