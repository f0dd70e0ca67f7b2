package imaging

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/gift"

	"rentersrights/pkg/errors"
)

const jpegQuality = 90

// Decode reads pixel dimensions without decoding the full image.
func Decode(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, errors.UnsupportedFormat(err)
	}
	return cfg.Width, cfg.Height, nil
}

// Resize scales the image so its longer edge equals targetEdge, preserving
// aspect ratio, and re-encodes it in its source format.
func Resize(data []byte, targetEdge int) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.CorruptImage(err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var dstW, dstH int
	if width >= height {
		dstW = targetEdge
		dstH = 0
	} else {
		dstW = 0
		dstH = targetEdge
	}

	g := gift.New(gift.Resize(dstW, dstH, gift.LanczosResampling))
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(&buf, dst, nil)
	default:
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, errors.CorruptImage(err)
	}

	return buf.Bytes(), nil
}
