package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsClosedAndDistinct(t *testing.T) {
	paths := map[string]string{}
	for _, name := range Names() {
		shape, ok := GetShape(name)
		require.True(t, ok, name)
		assert.Equal(t, name, shape.Name)
		assert.NotEmpty(t, shape.Path)
		assert.Positive(t, shape.ViewBox[0])
		for other, p := range paths {
			assert.NotEqual(t, p, shape.Path, "%s and %s share a path", name, other)
		}
		paths[name] = shape.Path
	}
	assert.Len(t, catalog, len(Names()))

	_, ok := GetShape("none")
	assert.False(t, ok)
}
