package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"incrementer/sdk"
)

// The first four tests replay the contract's canonical scenarios.

func TestDefaultWorks(t *testing.T) {
	setupTest()
	initDefault()

	assert.Equal(t, "false", *GetBool(nil))
	assert.Equal(t, "0", *GetNumber(nil))
	assert.Equal(t, "0", *GetNumberLazy(nil))
	assert.Equal(t, "0", *GetBalance(nil))
}

func TestItWorks(t *testing.T) {
	setupTest()
	initWith(`{"value":false,"number":4}`)

	assert.Equal(t, "false", *GetBool(nil))
	assert.Equal(t, "true", *Flip(nil))
	assert.Equal(t, "true", *GetBool(nil))
}

func TestNumber(t *testing.T) {
	setupTest()
	initWith(`{"value":false,"number":4}`)

	assert.Equal(t, "4", *GetNumber(nil))

	set := `{"value":3}`
	SetNumber(&set)
	assert.Equal(t, "3", *GetNumber(nil))

	for _, step := range []struct {
		by   string
		want string
	}{
		{`{"by":4}`, "7"},
		{`{"by":1}`, "8"},
		{`{"by":2}`, "10"},
	} {
		assert.Equal(t, step.want, *Inc(&step.by))
	}
}

func TestLazyNumber(t *testing.T) {
	setupTest()
	initWith(`{"value":false,"number":4,"lazyNumber":4}`)

	assert.Equal(t, "4", *GetNumberLazy(nil))

	set := `{"value":3}`
	SetNumberLazy(&set)
	assert.Equal(t, "3", *GetNumberLazy(nil))

	for _, step := range []struct {
		by   string
		want string
	}{
		{`{"by":4}`, "7"},
		{`{"by":1}`, "8"},
		{`{"by":2}`, "10"},
	} {
		assert.Equal(t, step.want, *IncLazy(&step.by))
	}
}

func TestFlipIsItsOwnInverse(t *testing.T) {
	setupTest()
	initDefault()

	Flip(nil)
	Flip(nil)
	assert.Equal(t, "false", *GetBool(nil))

	Flip(nil)
	assert.Equal(t, "true", *GetBool(nil))
}

func TestLazyAndEagerCounterAgree(t *testing.T) {
	setupTest()
	initWith(`{"number":4,"lazyNumber":4}`)

	set := `{"value":3}`
	SetNumber(&set)
	SetNumberLazy(&set)

	for _, by := range []string{`{"by":4}`, `{"by":1}`, `{"by":2}`} {
		assert.Equal(t, *Inc(&by), *IncLazy(&by))
	}
	assert.Equal(t, *GetNumber(nil), *GetNumberLazy(nil))
}

func TestMyNumberSequence(t *testing.T) {
	setupTest()
	initDefault()

	sdk.MockSetSender(aliceAddress)

	add3 := `{"value":3}`
	add4 := `{"value":4}`
	AddMyNumber(&add3)
	assert.Equal(t, "7", *AddMyNumber(&add4))
	assert.Equal(t, "7", *GetMyNumber(nil))
}

func TestMyNumberScopedPerCaller(t *testing.T) {
	setupTest()
	initDefault()

	sdk.MockSetSender(aliceAddress)
	set := `{"value":5}`
	SetMyNumber(&set)

	sdk.MockSetSender(bobAddress)
	assert.Equal(t, "0", *GetMyNumber(nil))

	// bob can still read alice's counter through the open read
	aliceQuery := `{"account":"` + aliceAddress + `"}`
	assert.Equal(t, "5", *GetOf(&aliceQuery))
}

func TestGetOfUnknownAccountHasNoSideEffect(t *testing.T) {
	setupTest()
	initDefault()

	query := `{"account":"hive:nobody"}`
	assert.Equal(t, "0", *GetOf(&query))
	assert.Equal(t, "0", *GetOf(&query))
	assert.Nil(t, getState().Get(accountNumberKey(sdk.Address("hive:nobody"))))
}

func TestAccountAndBalanceSnapshot(t *testing.T) {
	setupTest()
	initWith(`{"balance":1000}`)

	assert.Equal(t, ownerAddress, *GetAccount(nil))
	assert.Equal(t, "1000", *GetBalance(nil))

	// the snapshot never moves, whatever else happens
	by := `{"by":9}`
	Inc(&by)
	Flip(nil)
	assert.Equal(t, "1000", *GetBalance(nil))
	assert.Equal(t, ownerAddress, *GetAccount(nil))
}

func TestBalanceFallsBackToHostBalance(t *testing.T) {
	setupTest()
	sdk.MockSetBalance(sdk.Address("contract:incrementer"), sdk.AssetHive, 4200)
	initWith(`{"number":1}`)

	assert.Equal(t, "4200", *GetBalance(nil))
}

func TestInitTwiceAborts(t *testing.T) {
	setupTest()
	initDefault()

	assert.PanicsWithValue(t, "contract already initialized", func() {
		initDefault()
	})
}

func TestCallBeforeInitAborts(t *testing.T) {
	setupTest()

	assert.PanicsWithValue(t, "contract not initialized", func() {
		GetNumber(nil)
	})
}

func TestSetNumberRequiresPayload(t *testing.T) {
	setupTest()
	initDefault()

	assert.PanicsWithValue(t, "value payload required", func() {
		SetNumber(nil)
	})
}

func TestGetOfRejectsBadAddress(t *testing.T) {
	setupTest()
	initDefault()

	query := `{"account":"nobody"}`
	assert.PanicsWithValue(t, "invalid account address: nobody", func() {
		GetOf(&query)
	})
}

func TestStateSurvivesRebinding(t *testing.T) {
	setupTest()
	initWith(`{"number":4,"lazyNumber":4}`)

	set := `{"value":30}`
	SetNumber(&set)
	SetNumberLazy(&set)
	Flip(nil)

	// every export rebinds from storage, so this is a fresh read path
	assert.Equal(t, "30", *GetNumber(nil))
	assert.Equal(t, "30", *GetNumberLazy(nil))
	assert.Equal(t, "true", *GetBool(nil))
}
