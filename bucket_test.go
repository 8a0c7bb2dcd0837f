package linkedhashmap

import (
	"bytes"
	"hash/maphash"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestBucketIndexForStaysInRange(t *testing.T) {
	lm := newMap[string, int](t, WithBucketCount(7))
	for i := range 100 {
		idx := lm.indexFor(strconv.Itoa(i))
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
	}
}

func TestBucketSharedSeedSamePlacement(t *testing.T) {
	seed := maphash.MakeSeed()
	a := newMap[string, int](t, WithSeed(seed), WithBucketCount(11))
	b := newMap[string, int](t, WithSeed(seed), WithBucketCount(11))

	for i := range 50 {
		k := "k" + strconv.Itoa(i)
		assert.Equal(t, a.indexFor(k), b.indexFor(k))
	}
}

func TestBucketFindAndRemoveFromChain(t *testing.T) {
	lm := newMap[string, int](t, WithBucketCount(2))
	lm.Put("a", 1)
	lm.Put("b", 2)
	lm.Put("c", 3)

	h := lm.find("b")
	require.NotEqual(t, nilHandle, h)
	assert.Equal(t, "b", lm.entries[h].key)
	assert.Equal(t, nilHandle, lm.find("z"))

	i := lm.indexFor("b")
	n := len(lm.buckets[i])
	lm.removeFromChain(h)
	assert.Len(t, lm.buckets[i], n-1)
	assert.Equal(t, nilHandle, lm.find("b"))
}

func TestBucketLoadFactor(t *testing.T) {
	lm := newMap[int, int](t, WithBucketCount(4))
	assert.Equal(t, 0.0, lm.LoadFactor())

	for i := range 10 {
		lm.Put(i, i)
	}
	assert.InDelta(t, 2.5, lm.LoadFactor(), 1e-9)
}

func TestBucketLoadWarningLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	lm := newMap[int, int](t, WithBucketCount(1), WithLogger(bufferLogger(&buf)))

	for i := range 7 {
		lm.Put(i, i)
	}
	assert.NotContains(t, buf.String(), "consider Rehash")

	for i := 7; i < 20; i++ {
		lm.Put(i, i)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "consider Rehash"))
	assert.Contains(t, buf.String(), "level=WARN")

	// Rehash below the threshold re-arms the warning
	require.NoError(t, lm.Rehash(10))
	assert.False(t, lm.warnedLoad)
}

func TestBucketRehash(t *testing.T) {
	lm := newMap[string, int](t, WithBucketCount(2))
	for i := range 30 {
		lm.Put(strconv.Itoa(i), i)
	}
	lm.Sort(true)
	order := slices.Collect(lm.Keys())

	require.NoError(t, lm.Rehash(13))
	assert.Equal(t, 13, lm.BucketCount())
	assert.Equal(t, order, slices.Collect(lm.Keys()))
	for i := range 30 {
		assert.Equal(t, i, mustGet(t, lm, strconv.Itoa(i)))
	}
	checkInvariants(t, lm)

	assert.Error(t, lm.Rehash(0))
	assert.Equal(t, 13, lm.BucketCount())
}

func TestBucketDebugEvents(t *testing.T) {
	var buf bytes.Buffer
	lm := newMap[string, int](t, WithLogger(bufferLogger(&buf)))
	lm.Put("a", 1)
	lm.Sort(false)
	require.NoError(t, lm.Rehash(3))
	lm.Clear()

	out := buf.String()
	for _, msg := range []string{"msg=NewLinkedMap", "msg=Sort", "msg=Rehash", "msg=Clear"} {
		assert.Contains(t, out, msg)
	}
}
