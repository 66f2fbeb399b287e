package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette is returned when colors must be assigned from an empty palette.
var ErrEmptyPalette = errors.New("palette is empty")

// ExtendPalette cycles palette to a sequence of exactly n color tokens:
// token i equals palette[i mod len(palette)], so colors repeat from the
// start when n exceeds the palette length.
func ExtendPalette(palette Palette, n int) ([]string, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	if n < 0 {
		return nil, fmt.Errorf("negative color count %d", n)
	}

	extended := make([]string, n)
	for i := range extended {
		extended[i] = palette[i%len(palette)]
	}
	return extended, nil
}
