package project

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountIDs(t *testing.T) {
	require.Equal(t, "PROJECT-1", CountIDs{}.NextID(nil))

	snap := Snapshot{{ID: "PROJECT-2"}}
	require.Equal(t, "PROJECT-2", CountIDs{}.NextID(snap), "count ignores existing suffixes")
}

func TestMaxIDs(t *testing.T) {
	require.Equal(t, "PROJECT-1", MaxIDs{}.NextID(nil))

	snap := Snapshot{{ID: "PROJECT-2"}, {ID: "legacy"}, {ID: "PROJECT-x"}}
	require.Equal(t, "PROJECT-3", MaxIDs{}.NextID(snap))
}

func TestStrategyByName(t *testing.T) {
	s, err := StrategyByName("")
	require.NoError(t, err)
	require.IsType(t, CountIDs{}, s)

	s, err = StrategyByName("max")
	require.NoError(t, err)
	require.IsType(t, MaxIDs{}, s)

	_, err = StrategyByName("uuid")
	require.Error(t, err)
}

func TestEnumerations(t *testing.T) {
	for _, s := range Statuses {
		require.True(t, s.Valid())
	}
	for _, p := range Priorities {
		require.True(t, p.Valid())
	}
	require.False(t, Status("Done").Valid())
	require.False(t, Priority("").Valid())
}
