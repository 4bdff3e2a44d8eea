package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAlias_TargetsAreValid(t *testing.T) {
	for alias, target := range Aliases() {
		got := ResolveAlias(alias)
		assert.Equal(t, target, got, "alias %s", alias)
		assert.True(t, IsValidType(got), "alias %s resolves to unknown tag %s", alias, got)
		assert.False(t, IsValidType(alias), "alias %s shadows a canonical tag", alias)
	}
}

func TestResolveAlias_PassThrough(t *testing.T) {
	for _, tag := range []string{"not_a_real_type", "", "Pricing", "TEAM"} {
		assert.Equal(t, tag, ResolveAlias(tag))
	}
	for _, tag := range Tags() {
		assert.Equal(t, tag, ResolveAlias(tag))
	}
}

func TestCatalog(t *testing.T) {
	tags := Tags()
	assert.Len(t, tags, 24)

	seen := map[string]bool{}
	for _, info := range Types() {
		require.False(t, seen[info.Tag], "duplicate tag %s", info.Tag)
		seen[info.Tag] = true
		if len(info.Designs) > 0 {
			assert.Contains(t, info.Designs, info.DefaultDesign, info.Tag)
		}
	}

	box, ok := Lookup("container")
	require.True(t, ok)
	assert.Equal(t, TypeBox, box.Tag)
	assert.True(t, box.Container)

	assert.True(t, HasDesign(TypePricing, "modern"))
	assert.False(t, HasDesign(TypeText, "modern"))
}

func TestTypesReturnsCopies(t *testing.T) {
	types := Types()
	types[0].Name = "changed"
	for i := range types {
		if len(types[i].Designs) > 0 {
			types[i].Designs[0] = "changed"
			break
		}
	}
	assert.Equal(t, "Text", Types()[0].Name)
	info, _ := Lookup(TypeImage)
	assert.Equal(t, "plain", info.Designs[0])
}
