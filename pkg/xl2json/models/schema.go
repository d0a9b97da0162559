package models

// FieldType is the scalar kind inferred for a schema field.
type FieldType string

const (
	// TypeString is a JSON string.
	TypeString FieldType = "string"
	// TypeInteger is a JSON number without a fractional part.
	TypeInteger FieldType = "integer"
	// TypeNumber is a JSON number with a fractional part.
	TypeNumber FieldType = "number"
	// TypeBoolean is a JSON boolean.
	TypeBoolean FieldType = "boolean"
	// TypeDateTime is a JSON string holding an RFC 3339 timestamp.
	TypeDateTime FieldType = "date-time"
	// TypeAny is used for null samples where nothing else is known.
	TypeAny FieldType = "any"
	// TypeObject is a nested JSON object.
	TypeObject FieldType = "object"
	// TypeArray is a JSON array.
	TypeArray FieldType = "array"
)

// SchemaField describes one property of a sample record.
type SchemaField struct {
	// Key is the JSON property name as it appeared in the sample.
	Key string
	// GoName is the exported identifier generated for Key.
	GoName string
	// Type is the inferred kind.
	Type FieldType
	// Nullable is set when the sample value was null.
	Nullable bool
}

// SchemaModel is the structure inferred from one sample record.
type SchemaModel struct {
	// Name is the model (type) name.
	Name string
	// Fields follow the key order of the sample.
	Fields []SchemaField
}
