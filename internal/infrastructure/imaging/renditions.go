package imaging

import (
	"rentersrights/pkg/errors"
)

// RenditionGenerator derives resized copies of a source image at a fixed,
// ordered set of edge lengths. The smallest edge is the thumbnail.
type RenditionGenerator struct {
	minEdge int
	maxEdge int
	sizes   []int
}

func NewRenditionGenerator(minEdge, maxEdge int, sizes []int) *RenditionGenerator {
	return &RenditionGenerator{
		minEdge: minEdge,
		maxEdge: maxEdge,
		sizes:   sizes,
	}
}

func (g *RenditionGenerator) Sizes() []int {
	return g.sizes
}

// ThumbnailSize is the smallest configured edge length. Sizes are sorted
// at configuration load.
func (g *RenditionGenerator) ThumbnailSize() int {
	return g.sizes[0]
}

// Generate produces one rendition per configured edge length. Dimension
// bounds are checked before any resizing so an out-of-policy source costs
// nothing.
func (g *RenditionGenerator) Generate(data []byte) (map[int][]byte, error) {
	width, height, err := Decode(data)
	if err != nil {
		return nil, err
	}

	shorter, longer := width, height
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if shorter < g.minEdge {
		return nil, errors.SourceTooSmall(width, height, g.minEdge)
	}
	if longer > g.maxEdge {
		return nil, errors.SourceTooLarge(width, height, g.maxEdge)
	}

	renditions := make(map[int][]byte, len(g.sizes))
	for _, size := range g.sizes {
		resized, err := Resize(data, size)
		if err != nil {
			return nil, err
		}
		renditions[size] = resized
	}

	return renditions, nil
}
