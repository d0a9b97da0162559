// Package models defines the data structures produced by workbook conversion.
package models

// HeaderSet is the ordered list of field names, one per column.
type HeaderSet []string

// Field is a single named value of a record or form.
type Field struct {
	// Name is the JSON property name.
	Name string
	// Value is nil, string, int64, float64, bool or time.Time.
	Value any
}

// Record is one mapped row. Field order follows the HeaderSet.
type Record []Field

// Get returns the value of the first field named name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}
