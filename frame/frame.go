package frame

// Field is one named value inside a Record.
type Field struct {
	Name  string
	Value any
}

// F builds a Field.
func F(name string, v any) Field { return Field{Name: name, Value: v} }

// Record is one ordered row of named fields, the unit BindRows stacks.
type Record []Field

// Frame is a column-major table: one named column per field, one row per
// record.
type Frame struct {
	names []string
	cols  [][]any
}

// Names returns the column names in order.
func (f *Frame) Names() []string { return f.names }

// Len returns the row count.
func (f *Frame) Len() int {
	if len(f.cols) == 0 {
		return 0
	}

	return len(f.cols[0])
}

// Col returns the named column and whether it exists.
func (f *Frame) Col(name string) ([]any, bool) {
	for i, n := range f.names {
		if n == name {
			return f.cols[i], true
		}
	}

	return nil, false
}

// Row materializes row i as a Record, in column order.
func (f *Frame) Row(i int) Record {
	rec := make(Record, len(f.names))
	for c, n := range f.names {
		rec[c] = Field{Name: n, Value: f.cols[c][i]}
	}

	return rec
}
