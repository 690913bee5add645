package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	set, ok := Lookup("side")
	require.True(t, ok)
	assert.Equal(t, "side", set.Name())

	m, ok := set.ByCode(49)
	require.True(t, ok)
	assert.Equal(t, SideBuy, m)

	m, ok = set.ByName("sell")
	require.True(t, ok)
	assert.Equal(t, SideSell, m)

	_, ok = set.ByCode(99)
	assert.False(t, ok)

	_, ok = Lookup("no_such_enum")
	assert.False(t, ok)
}

func TestMembersSorted(t *testing.T) {
	set, ok := Lookup("order_status")
	require.True(t, ok)

	members := set.Members()
	require.Len(t, members, 10)
	for i := 1; i < len(members); i++ {
		assert.Less(t, members[i-1].Code(), members[i].Code())
	}
}

func TestSetsConsistent(t *testing.T) {
	names := Names()
	require.Len(t, names, 21)

	for _, name := range names {
		set, _ := Lookup(name)
		for _, m := range set.Members() {
			byCode, ok := set.ByCode(m.Code())
			require.True(t, ok, "%s.%s", name, m)
			assert.Equal(t, m, byCode)

			byName, ok := set.ByName(m.String())
			require.True(t, ok, "%s.%s", name, m)
			assert.Equal(t, m, byName)
		}
	}
}

func TestStringUnknown(t *testing.T) {
	assert.Equal(t, "tif(7)", Tif(7).String())
	assert.False(t, Tif(7).IsAvailable())
	assert.True(t, TifIOC.IsAvailable())
	assert.False(t, ExchangeUnknown.IsAvailable())
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, OrderStatusActive.IsActive())
	assert.False(t, OrderStatusActive.IsDone())
	assert.True(t, OrderStatusFilled.IsDone())
	assert.Equal(t, int64(73), OrderStatusInitial.Code())
}
