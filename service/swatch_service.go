package service

import (
	"fmt"
	"image"
	"io"
	"log"

	"github.com/disintegration/imaging"

	"style-atelier/colour"
)

// SwatchService extracts a seed colour from a user-supplied garment
// photo, so a curation can anchor its palette on something the user
// already owns.
type SwatchService struct{}

// NewSwatchService creates a SwatchService.
func NewSwatchService() *SwatchService {
	return &SwatchService{}
}

// sampleSize is the edge length the photo is shrunk to before
// averaging. Small enough to be cheap, large enough to survive noise.
const sampleSize = 64

// DominantHex decodes a photo and returns the dominant colour as a
// canonical #RRGGBB string plus its closest vocabulary spec.
func (s *SwatchService) DominantHex(r io.Reader) (string, colour.Spec, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", colour.Spec{}, fmt.Errorf("failed to decode swatch image: %w", err)
	}
	return s.dominantOf(img)
}

func (s *SwatchService) dominantOf(img image.Image) (string, colour.Spec, error) {
	small := imaging.Resize(img, sampleSize, sampleSize, imaging.Box)
	bounds := small.Bounds()

	var rSum, gSum, bSum, count uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := small.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
			count++
		}
	}
	if count == 0 {
		return "", colour.Spec{}, fmt.Errorf("swatch image has no opaque pixels")
	}

	hex := fmt.Sprintf("#%02X%02X%02X", rSum/count, gSum/count, bSum/count)
	spec, err := colour.SpecFromHex(hex)
	if err != nil {
		return "", colour.Spec{}, err
	}
	log.Printf("🎨 Swatch dominant colour: %s (%s)", hex, spec.Name)
	return hex, spec, nil
}
