package models

// FieldSet is an insertion-ordered name to value mapping used for form results.
type FieldSet struct {
	fields []Field
	index  map[string]int
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{index: make(map[string]int)}
}

// Set stores value under name. An existing name keeps its position.
func (s *FieldSet) Set(name string, value any) {
	if i, ok := s.index[name]; ok {
		s.fields[i].Value = value
		return
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (s *FieldSet) Get(name string) (any, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].Value, true
}

// Len returns the number of fields.
func (s *FieldSet) Len() int {
	return len(s.fields)
}

// Fields returns the fields in discovery order.
func (s *FieldSet) Fields() Record {
	return Record(s.fields)
}
