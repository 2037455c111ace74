package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incrementer/sdk"
)

func TestScalarCellSeedsWhenAbsent(t *testing.T) {
	setupTest()

	c := newScalarCell("num", uint32(7), encodeU32, decodeU32)
	assert.Equal(t, uint32(7), c.Get())

	stored := getState().Get("num")
	require.NotNil(t, stored)
	assert.Equal(t, "7", *stored)
}

func TestScalarCellLoadsStoredOverSeed(t *testing.T) {
	setupTest()
	getState().Set("num", "9")

	c := newScalarCell("num", uint32(7), encodeU32, decodeU32)
	assert.Equal(t, uint32(9), c.Get())
}

func TestScalarCellReadAfterWrite(t *testing.T) {
	setupTest()

	c := newScalarCell("num", uint32(0), encodeU32, decodeU32)
	c.Set(41)
	assert.Equal(t, uint32(41), c.Get())

	stored := getState().Get("num")
	require.NotNil(t, stored)
	assert.Equal(t, "41", *stored)

	addScalar(c, 1)
	assert.Equal(t, uint32(42), c.Get())
}

func TestLazyCellDefersLoadUntilFirstGet(t *testing.T) {
	cs := useCountingState()
	cs.inner.Set("lazy", "5")
	cs.reads = 0

	c := newLazyCell("lazy", uint32(0), encodeU32, decodeU32)
	assert.Equal(t, 0, cs.reads, "construction must not touch storage")

	assert.Equal(t, uint32(5), c.Get())
	assert.Equal(t, 1, cs.reads)

	// loaded cells answer from memory
	c.Get()
	c.Get()
	assert.Equal(t, 1, cs.reads)
}

func TestLazyCellFallsBackToSeed(t *testing.T) {
	setupTest()

	c := newLazyCell("lazy", uint32(4), encodeU32, decodeU32)
	assert.Equal(t, uint32(4), c.Get())
	// a pure read never creates the entry
	assert.Nil(t, getState().Get("lazy"))
}

func TestLazyCellSetWritesThrough(t *testing.T) {
	setupTest()

	c := newLazyCell("lazy", uint32(4), encodeU32, decodeU32)
	c.Set(11)
	assert.Equal(t, uint32(11), c.Get())

	stored := getState().Get("lazy")
	require.NotNil(t, stored)
	assert.Equal(t, "11", *stored)
}

func TestLazyCellAddLoadsOnce(t *testing.T) {
	cs := useCountingState()
	cs.inner.Set("lazy", "4")
	cs.reads = 0

	c := newLazyCell("lazy", uint32(0), encodeU32, decodeU32)
	addLazy(c, 3)
	assert.Equal(t, uint32(7), c.Get())

	// one load for the value plus the compare read inside the guarded write
	assert.Equal(t, 2, cs.reads)
	assert.Equal(t, 1, cs.writes)

	addLazy(c, 1)
	assert.Equal(t, uint32(8), c.Get())
}

func TestLazyCellMatchesEagerBehavior(t *testing.T) {
	setupTest()

	eager := newScalarCell("e", uint32(4), encodeU32, decodeU32)
	lazy := newLazyCell("l", uint32(4), encodeU32, decodeU32)

	ops := []struct {
		set *uint32
		by  *uint32
	}{
		{set: u32ptr(3)},
		{by: u32ptr(4)},
		{by: u32ptr(1)},
		{by: u32ptr(2)},
		{set: u32ptr(math.MaxUint32)},
		{by: u32ptr(5)},
	}
	for _, op := range ops {
		switch {
		case op.set != nil:
			eager.Set(*op.set)
			lazy.Set(*op.set)
		case op.by != nil:
			addScalar(eager, *op.by)
			addLazy(lazy, *op.by)
		}
		assert.Equal(t, eager.Get(), lazy.Get())
	}
}

func TestCounterMapAbsentReadsZero(t *testing.T) {
	setupTest()

	m := newCounterMap(accountNumberKey)
	assert.Equal(t, uint32(0), m.Get(sdk.Address(aliceAddress)))
	// reading twice stays zero and never creates an entry
	assert.Equal(t, uint32(0), m.Get(sdk.Address(aliceAddress)))
	assert.Nil(t, getState().Get(accountNumberKey(sdk.Address(aliceAddress))))
}

func TestCounterMapSetAndAdd(t *testing.T) {
	setupTest()

	m := newCounterMap(accountNumberKey)
	alice := sdk.Address(aliceAddress)
	bob := sdk.Address(bobAddress)

	m.Set(alice, 10)
	assert.Equal(t, uint32(10), m.Get(alice))

	m.Add(alice, 5)
	assert.Equal(t, uint32(15), m.Get(alice))

	// overwrite, not accumulate
	m.Set(alice, 2)
	assert.Equal(t, uint32(2), m.Get(alice))

	// keys stay independent
	assert.Equal(t, uint32(0), m.Get(bob))
	m.Add(bob, 1)
	assert.Equal(t, uint32(1), m.Get(bob))
	assert.Equal(t, uint32(2), m.Get(alice))
}

func TestCounterMapExplicitZeroLooksAbsent(t *testing.T) {
	setupTest()

	m := newCounterMap(accountNumberKey)
	alice := sdk.Address(aliceAddress)

	m.Set(alice, 0)
	assert.Equal(t, uint32(0), m.Get(alice))
}

func TestCountersWrapOnOverflow(t *testing.T) {
	setupTest()

	eager := newScalarCell("e", uint32(math.MaxUint32), encodeU32, decodeU32)
	addScalar(eager, 1)
	assert.Equal(t, uint32(0), eager.Get())

	lazy := newLazyCell("l", uint32(math.MaxUint32), encodeU32, decodeU32)
	addLazy(lazy, 2)
	assert.Equal(t, uint32(1), lazy.Get())

	m := newCounterMap(accountNumberKey)
	alice := sdk.Address(aliceAddress)
	m.Set(alice, math.MaxUint32)
	m.Add(alice, 3)
	assert.Equal(t, uint32(2), m.Get(alice))
}

func u32ptr(v uint32) *uint32 { return &v }
