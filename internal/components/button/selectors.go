package button

import (
	"fmt"

	"github.com/alexisbeaulieu97/spark/internal/design"
)

// Variant selects the button color scheme.
type Variant int

const (
	VariantFilled Variant = iota
	VariantOutlined
	VariantTinted
	VariantGhost
	VariantContrast
)

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{VariantFilled, VariantOutlined, VariantTinted, VariantGhost, VariantContrast}
}

// String returns the lowercase name used in options and logs.
func (v Variant) String() string {
	switch v {
	case VariantFilled:
		return "filled"
	case VariantOutlined:
		return "outlined"
	case VariantTinted:
		return "tinted"
	case VariantGhost:
		return "ghost"
	case VariantContrast:
		return "contrast"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a name back to its Variant.
func ParseVariant(name string) (Variant, error) {
	return design.Parse("variant", name, Variants())
}

// Size selects height, padding and icon size.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// Sizes lists every size.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// String returns the lowercase name used in options and logs.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// ParseSize maps a name back to its Size.
func ParseSize(name string) (Size, error) {
	return design.Parse("size", name, Sizes())
}

// Shape selects the corner radius.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeRounded
	ShapePill
)

// Shapes lists every shape.
func Shapes() []Shape {
	return []Shape{ShapeSquare, ShapeRounded, ShapePill}
}

// String returns the lowercase name used in options and logs.
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeRounded:
		return "rounded"
	case ShapePill:
		return "pill"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape maps a name back to its Shape.
func ParseShape(name string) (Shape, error) {
	return design.Parse("shape", name, Shapes())
}

// Alignment places the icon before or after the label.
type Alignment int

const (
	AlignmentLeadingImage Alignment = iota
	AlignmentTrailingImage
)

// Alignments lists every alignment.
func Alignments() []Alignment {
	return []Alignment{AlignmentLeadingImage, AlignmentTrailingImage}
}

// IsTrailingImage reports whether the icon follows the label.
func (a Alignment) IsTrailingImage() bool {
	return a == AlignmentTrailingImage
}

// String returns the lowercase name used in options and logs.
func (a Alignment) String() string {
	switch a {
	case AlignmentLeadingImage:
		return "leading"
	case AlignmentTrailingImage:
		return "trailing"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment maps a name back to its Alignment.
func ParseAlignment(name string) (Alignment, error) {
	return design.Parse("alignment", name, Alignments())
}
