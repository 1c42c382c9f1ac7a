package domain

// Field is a single named value inside a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an insertion-ordered snapshot of a stage's resolved properties.
// Order is semantically significant and is never changed after construction;
// it mirrors the declaration order of the properties it was taken from.
type Record struct {
	fields []Field
}

// NewRecord builds a record from fields in the given order.
func NewRecord(fields ...Field) Record {
	return Record{fields: fields}
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Fields returns the fields in declaration order.
// The returned slice is shared; callers must not modify it.
func (r Record) Fields() []Field {
	return r.fields
}

// Names returns the field names in declaration order.
func (r Record) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Get returns the value stored under name, and whether it exists.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Float64 returns the value under name coerced to float64.
// Integer values are widened; anything else reports false.
func (r Record) Float64(name string) (float64, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Value returns the raw value stored under name, or nil.
// Structured values (such as a combinator's stage list) come back as
// whatever the property resolved to.
func (r Record) Value(name string) any {
	v, _ := r.Get(name)
	return v
}

// Int returns the value under name coerced to int.
// Float values are truncated; anything else reports false.
func (r Record) Int(name string) (int, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
