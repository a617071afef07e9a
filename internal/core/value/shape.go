package value

// Shape describes the structural layout of a composite value. It decides how
// parsed field literals are assembled: named containers insert by field name,
// positional containers insert in encounter order.
type Shape uint8

const (
	// ShapeStruct is a named-field container.
	ShapeStruct Shape = iota
	// ShapeTupleStruct is a positional container with a type name.
	ShapeTupleStruct
	// ShapeTuple is an anonymous positional container.
	ShapeTuple
	// ShapeList is reserved for future list literals.
	ShapeList
	// ShapeMap is reserved for future map literals.
	ShapeMap
	// ShapeValue is reserved for plain single-value types.
	ShapeValue
)

func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "Struct"
	case ShapeTupleStruct:
		return "TupleStruct"
	case ShapeTuple:
		return "Tuple"
	case ShapeList:
		return "List"
	case ShapeMap:
		return "Map"
	case ShapeValue:
		return "Value"
	}
	return "Unknown"
}
