package theme

// Weight is a font weight on the usual 100..900 scale.
type Weight int

const (
	WeightRegular  Weight = 400
	WeightMedium   Weight = 500
	WeightSemibold Weight = 600
	WeightBold     Weight = 700
)

// IsBold reports whether the weight should render bold on targets that
// only know regular and bold.
func (w Weight) IsBold() bool { return w >= WeightSemibold }

// Font is one typography token.
type Font struct {
	Size       float64
	LineHeight float64
	Weight     Weight
}

// Typography is the theme's type scale.
type Typography struct {
	Display1         Font
	Display2         Font
	Display3         Font
	Headline1        Font
	Headline2        Font
	Subhead          Font
	Body1            Font
	Body1Highlight   Font
	Body2            Font
	Body2Highlight   Font
	Caption          Font
	CaptionHighlight Font
	Small            Font
	SmallHighlight   Font
	Callout          Font
}

// DefaultTypography returns the standard type scale.
func DefaultTypography() Typography {
	font := func(size, lineHeight float64, weight Weight) Font {
		return Font{Size: size, LineHeight: lineHeight, Weight: weight}
	}
	return Typography{
		Display1:         font(40, 56, WeightBold),
		Display2:         font(32, 44, WeightBold),
		Display3:         font(24, 32, WeightBold),
		Headline1:        font(24, 32, WeightBold),
		Headline2:        font(20, 28, WeightBold),
		Subhead:          font(18, 24, WeightBold),
		Body1:            font(16, 24, WeightRegular),
		Body1Highlight:   font(16, 24, WeightBold),
		Body2:            font(14, 20, WeightRegular),
		Body2Highlight:   font(14, 20, WeightBold),
		Caption:          font(12, 16, WeightRegular),
		CaptionHighlight: font(12, 16, WeightBold),
		Small:            font(10, 14, WeightRegular),
		SmallHighlight:   font(10, 14, WeightBold),
		Callout:          font(16, 24, WeightBold),
	}
}
