package headerset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUnionAndDisjoint(t *testing.T) {
	desktop := NewSet("desktop")
	app := NewSet("app")

	merged := desktop.Union(app)
	assert.True(t, merged.Equal(NewSet("desktop", "app")))
	assert.True(t, desktop.Disjoint(app))
	assert.False(t, merged.Disjoint(desktop))
}

func TestHeaderStem(t *testing.T) {
	h := Header{Path: "/vendor/sdk/include/winnt.h"}
	assert.Equal(t, "winnt", h.Stem())
}

func TestGroupRejectsDuplicateFeature(t *testing.T) {
	g := NewGroup()
	require.NoError(t, g.Add(Invocation{Features: "desktop"}))
	err := g.Add(Invocation{Features: "desktop"})
	assert.Error(t, err)
}

func TestGroupPreservesRegistrationOrder(t *testing.T) {
	g := NewGroup()
	require.NoError(t, g.Add(Invocation{Features: "app"}))
	require.NoError(t, g.Add(Invocation{Features: "desktop"}))

	all := g.All()
	require.Len(t, all, 2)
	assert.Equal(t, Feature("app"), all[0].Features)
	assert.Equal(t, Feature("desktop"), all[1].Features)
}
