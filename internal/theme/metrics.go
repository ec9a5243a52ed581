package theme

// OpacityNone is the multiplier of a fully opaque, undimmed element.
const OpacityNone = 1.0

// Dims is the theme-wide opacity scale. Each level dims more than the
// previous one; Dim3 is the disabled-state multiplier.
type Dims struct {
	Dim1 float64
	Dim2 float64
	Dim3 float64
	Dim4 float64
	Dim5 float64
}

// None is always OpacityNone.
func (Dims) None() float64 { return OpacityNone }

// Levels returns Dim1..Dim5 in order.
func (d Dims) Levels() [5]float64 {
	return [5]float64{d.Dim1, d.Dim2, d.Dim3, d.Dim4, d.Dim5}
}

// DefaultDims returns the standard opacity scale.
func DefaultDims() Dims {
	return Dims{Dim1: 0.72, Dim2: 0.56, Dim3: 0.40, Dim4: 0.16, Dim5: 0.08}
}

// Spacing is the layout spacing scale in points.
type Spacing struct {
	None     float64
	Small    float64
	Medium   float64
	Large    float64
	XLarge   float64
	XXLarge  float64
	XXXLarge float64
}

// DefaultSpacing returns the standard spacing scale.
func DefaultSpacing() Spacing {
	return Spacing{None: 0, Small: 4, Medium: 8, Large: 16, XLarge: 24, XXLarge: 32, XXXLarge: 40}
}

// Radii lists corner radii in points. Full is large enough to produce a
// pill on any component height.
type Radii struct {
	None   float64
	Small  float64
	Medium float64
	Large  float64
	XLarge float64
	Full   float64
}

// Widths lists border widths in points.
type Widths struct {
	None   float64
	Small  float64
	Medium float64
}

type Border struct {
	Radius Radii
	Width  Widths
}

// DefaultBorder returns the standard radii and widths.
func DefaultBorder() Border {
	return Border{
		Radius: Radii{None: 0, Small: 4, Medium: 8, Large: 16, XLarge: 24, Full: 9999},
		Width:  Widths{None: 0, Small: 1, Medium: 2},
	}
}

// Shadow describes a drop shadow.
type Shadow struct {
	Color   ColorToken
	OffsetX float64
	OffsetY float64
	Blur    float64
	Opacity float64
}

// Equal compares two shadows, resolving the color by value.
func (s Shadow) Equal(o Shadow) bool {
	return Equal(s.Color, o.Color) &&
		s.OffsetX == o.OffsetX && s.OffsetY == o.OffsetY &&
		s.Blur == o.Blur && s.Opacity == o.Opacity
}

type Elevation struct {
	Dropshadow Shadow
}

// Equal compares two elevation sets.
func (e Elevation) Equal(o Elevation) bool {
	return e.Dropshadow.Equal(o.Dropshadow)
}
