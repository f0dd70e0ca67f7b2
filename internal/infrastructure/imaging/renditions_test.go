package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentersrights/pkg/errors"
)

func TestGenerateProducesOneRenditionPerSize(t *testing.T) {
	gen := NewRenditionGenerator(10, 2000, []int{5, 10, 20})

	renditions, err := gen.Generate(encodePNG(t, 100, 80))
	require.NoError(t, err)
	require.Len(t, renditions, 3)

	for _, size := range []int{5, 10, 20} {
		width, height, err := Decode(renditions[size])
		require.NoError(t, err)
		assert.Equal(t, size, width, "longer edge should match the target size")
		assert.Less(t, height, size+1)
	}
}

func TestThumbnailIsSmallestSize(t *testing.T) {
	gen := NewRenditionGenerator(10, 2000, []int{5, 10, 20})
	assert.Equal(t, 5, gen.ThumbnailSize())
}

func TestGenerateRejectsUndersizedSource(t *testing.T) {
	gen := NewRenditionGenerator(10, 2000, []int{5})

	// 100x4: the shorter edge is below the minimum even though the longer
	// edge is fine.
	_, err := gen.Generate(encodePNG(t, 100, 4))
	assert.True(t, errors.Is(err, errors.CodeSourceTooSmall))
}

func TestGenerateRejectsOversizedSource(t *testing.T) {
	gen := NewRenditionGenerator(10, 150, []int{5})

	_, err := gen.Generate(encodePNG(t, 200, 50))
	assert.True(t, errors.Is(err, errors.CodeSourceTooLarge))
}

func TestGenerateBoundsAreInclusive(t *testing.T) {
	gen := NewRenditionGenerator(10, 150, []int{5})

	_, err := gen.Generate(encodePNG(t, 150, 10))
	assert.NoError(t, err)
}

func TestGeneratePropagatesDecodeFailure(t *testing.T) {
	gen := NewRenditionGenerator(10, 2000, []int{5})

	_, err := gen.Generate([]byte("not an image"))
	assert.True(t, errors.Is(err, errors.CodeUnsupportedFormat))
}
