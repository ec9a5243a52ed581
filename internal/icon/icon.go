// Package icon models a button icon as exactly one of a text glyph or a
// raster image.
package icon

import (
	"image"

	"github.com/samber/mo"
)

// Glyph is a symbol drawn as text, for example "✓" or "+".
type Glyph string

// Image is a raster icon. Images compare by identity so that styles holding
// one stay comparable.
type Image struct {
	ref *imageRef
}

type imageRef struct {
	name string
	src  image.Image
}

// NewImage wraps src under a display name.
func NewImage(name string, src image.Image) Image {
	return Image{ref: &imageRef{name: name, src: src}}
}

// Name returns the display name, or "" for the zero Image.
func (i Image) Name() string {
	if i.ref == nil {
		return ""
	}
	return i.ref.name
}

// Source returns the wrapped image, or nil for the zero Image.
func (i Image) Source() image.Image {
	if i.ref == nil {
		return nil
	}
	return i.ref.src
}

// Bounds returns the pixel bounds of the source.
func (i Image) Bounds() image.Rectangle {
	if src := i.Source(); src != nil {
		return src.Bounds()
	}
	return image.Rectangle{}
}

// Icon holds a Glyph on the left or an Image on the right.
type Icon = mo.Either[Glyph, Image]

// FromGlyph builds a glyph icon.
func FromGlyph(g Glyph) Icon {
	return mo.Left[Glyph, Image](g)
}

// FromImage builds an image icon.
func FromImage(img Image) Icon {
	return mo.Right[Glyph, Image](img)
}

// Match calls exactly one of onGlyph or onImage.
func Match[T any](i Icon, onGlyph func(Glyph) T, onImage func(Image) T) T {
	if g, ok := i.Left(); ok {
		return onGlyph(g)
	}
	img, _ := i.Right()
	return onImage(img)
}

// MustGlyph returns the glyph and panics when i holds an image.
func MustGlyph(i Icon) Glyph {
	return i.MustLeft()
}

// MustImage returns the image and panics when i holds a glyph.
func MustImage(i Icon) Image {
	return i.MustRight()
}

// Describe renders a short human label: the glyph itself or the image name
// in brackets.
func Describe(i Icon) string {
	return Match(i,
		func(g Glyph) string { return string(g) },
		func(img Image) string { return "[" + img.Name() + "]" },
	)
}
