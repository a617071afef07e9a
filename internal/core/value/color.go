package value

// Color is a closed enumeration of the named color constants the grammar
// accepts as `Color::NAME`. The set is fixed: an unknown name is a parse
// error, never a silent default.
type Color uint8

const (
	ColorWhite Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorGray
	ColorOrange
	ColorPink
)

var colorNames = map[string]Color{
	"WHITE":   ColorWhite,
	"BLACK":   ColorBlack,
	"RED":     ColorRed,
	"GREEN":   ColorGreen,
	"BLUE":    ColorBlue,
	"YELLOW":  ColorYellow,
	"CYAN":    ColorCyan,
	"MAGENTA": ColorMagenta,
	"GRAY":    ColorGray,
	"ORANGE":  ColorOrange,
	"PINK":    ColorPink,
}

// ColorByName resolves a `Color::NAME` literal against the constant table.
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "UNKNOWN"
}

// meshShapeNames is the closed table for `shape::Name` literals, matching the
// primitive meshes the built-in bundle commands can generate.
var meshShapeNames = map[string]struct{}{
	"Cube":   {},
	"Plane":  {},
	"Quad":   {},
	"Sphere": {},
}

// ValidShapeName reports whether name is an accepted `shape::Name` literal.
func ValidShapeName(name string) bool {
	_, ok := meshShapeNames[name]
	return ok
}
