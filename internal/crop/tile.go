package crop

import (
	"fmt"
	"image"
)

// TileGrid splits the image into ceil(width/tw) × ceil(height/th) tiles
// of exactly the given size, iterating columns in the outer loop so the
// sequence runs down each column left to right. Edge tiles that extend
// past the image are pasted at (0,0) onto a black canvas of the tile
// size, so every returned tile has identical dimensions.
func TileGrid(img image.Image, tile Size) ([]*image.NRGBA, error) {
	if tile.Width <= 0 || tile.Height <= 0 {
		return nil, fmt.Errorf("%w: tile size %dx%d must be positive", ErrInvalidParameter, tile.Width, tile.Height)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	numX := (w + tile.Width - 1) / tile.Width
	numY := (h + tile.Height - 1) / tile.Height

	tiles := make([]*image.NRGBA, 0, numX*numY)
	for i := 0; i < numX; i++ {
		for j := 0; j < numY; j++ {
			left := i * tile.Width
			upper := j * tile.Height
			right := min(left+tile.Width, w)
			lower := min(upper+tile.Height, h)

			region := extract(img, left, upper, right-left, lower-upper)
			if right-left != tile.Width || lower-upper != tile.Height {
				region = padToSize(region, tile)
			}
			tiles = append(tiles, region)
		}
	}
	return tiles, nil
}

// TileGridOffset tiles like TileGrid but reserves an offset worth of
// extent, producing floor((width-offset.X-1)/tw) × floor((height-offset.Y-1)/th)
// tiles with no padding; trailing pixels beyond the computed grid are
// dropped.
//
// The offset reduces only the number of tiles. Tile origins still start
// at the image origin, preserving the behavior of the tooling this
// package replaces. Use TileGridOffsetAligned to shift the origins too.
func TileGridOffset(img image.Image, tile Size, off Offset) ([]*image.NRGBA, error) {
	return tileOffset(img, tile, off, false)
}

// TileGridOffsetAligned is TileGridOffset with the offset also applied
// to each tile's origin, so the first tile starts at (offset.X,
// offset.Y).
func TileGridOffsetAligned(img image.Image, tile Size, off Offset) ([]*image.NRGBA, error) {
	return tileOffset(img, tile, off, true)
}

func tileOffset(img image.Image, tile Size, off Offset, aligned bool) ([]*image.NRGBA, error) {
	if tile.Width <= 0 || tile.Height <= 0 {
		return nil, fmt.Errorf("%w: tile size %dx%d must be positive", ErrInvalidParameter, tile.Width, tile.Height)
	}
	if off.X < 0 || off.Y < 0 {
		return nil, fmt.Errorf("%w: offset (%d,%d) must be non-negative", ErrInvalidParameter, off.X, off.Y)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	numX := (w - off.X - 1) / tile.Width
	numY := (h - off.Y - 1) / tile.Height
	if numX < 0 {
		numX = 0
	}
	if numY < 0 {
		numY = 0
	}

	tiles := make([]*image.NRGBA, 0, numX*numY)
	for i := 0; i < numX; i++ {
		for j := 0; j < numY; j++ {
			left := i * tile.Width
			upper := j * tile.Height
			if aligned {
				left += off.X
				upper += off.Y
			}
			right := min(left+tile.Width, w)
			lower := min(upper+tile.Height, h)

			tiles = append(tiles, extract(img, left, upper, right-left, lower-upper))
		}
	}
	return tiles, nil
}
