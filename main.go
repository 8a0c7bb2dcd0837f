package linkedhashmap

const (
	// DefaultBucketCount is used when New is called without WithBucketCount.
	DefaultBucketCount = 25

	// loadFactorWarn is the average chain length at which a map logs that
	// its fixed bucket count has become a bottleneck.
	loadFactorWarn = 8.0

	nilHandle handle = -1
)
