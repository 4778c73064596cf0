package frame

import "fmt"

// BindRows stacks one record per row into a Frame, aligning columns by
// field name. Field order may differ between records; the first record
// fixes the column order. Mismatched field sets fail with
// ErrFieldMismatch unless WithRepair(RepairUnion) reconciles them.
func BindRows(recs []Record, opts ...Option) (*Frame, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	names, err := columnNames(recs, o.Repair)
	if err != nil {
		return nil, err
	}

	f := &Frame{names: names, cols: make([][]any, len(names))}
	for c := range f.cols {
		f.cols[c] = make([]any, len(recs))
	}
	for r, rec := range recs {
		row := make(map[string]any, len(rec))
		for _, fd := range rec {
			row[fd.Name] = fd.Value
		}
		for c, n := range names {
			f.cols[c][r] = row[n] // absent fields stay nil under RepairUnion
		}
	}

	if o.Keys != nil {
		if err := prependKeys(f, o.Keys); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BindCols concatenates frames column-wise. Row counts must be equal or 1
// (one-row frames recycle); column-name collisions are repaired by
// suffixing the later column with its 1-based output position.
func BindCols(frames ...*Frame) (*Frame, error) {
	rows := 0
	for _, fr := range frames {
		if fr.Len() > rows {
			rows = fr.Len()
		}
	}
	for i, fr := range frames {
		if fr.Len() != rows && fr.Len() != 1 {
			return nil, fmt.Errorf("%w: frame %d has %d rows, want %d or 1", ErrRowCount, i, fr.Len(), rows)
		}
	}

	out := &Frame{}
	seen := make(map[string]bool)
	for _, fr := range frames {
		for c, n := range fr.names {
			col := fr.cols[c]
			if len(col) == 1 && rows > 1 {
				rep := make([]any, rows)
				for i := range rep {
					rep[i] = col[0]
				}
				col = rep
			}
			if seen[n] {
				n = fmt.Sprintf("%s...%d", n, len(out.names)+1)
			}
			seen[n] = true
			out.names = append(out.names, n)
			out.cols = append(out.cols, col)
		}
	}

	return out, nil
}

// columnNames resolves the output column set from the records under the
// given repair policy.
func columnNames(recs []Record, repair Repair) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	for r, rec := range recs {
		inRec := make(map[string]bool, len(rec))
		for _, fd := range rec {
			if inRec[fd.Name] {
				return nil, fmt.Errorf("%w: record %d repeats field %q", ErrFieldMismatch, r, fd.Name)
			}
			inRec[fd.Name] = true
			if !seen[fd.Name] {
				if r > 0 && repair == RepairNone {
					return nil, fmt.Errorf("%w: record %d adds field %q", ErrFieldMismatch, r, fd.Name)
				}
				seen[fd.Name] = true
				names = append(names, fd.Name)
			}
		}
		if repair == RepairNone && len(rec) != len(names) {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", ErrFieldMismatch, r, len(rec), len(names))
		}
	}

	return names, nil
}

// prependKeys adds the identity column in front, recycling labels to the
// row count.
func prependKeys(f *Frame, labels []string) error {
	rows := f.Len()
	if len(labels) != rows && len(labels) != 1 {
		return fmt.Errorf("%w: %d labels for %d rows", ErrKeyCount, len(labels), rows)
	}
	col := make([]any, rows)
	for i := range col {
		if len(labels) == 1 {
			col[i] = labels[0]
		} else {
			col[i] = labels[i]
		}
	}
	f.names = append([]string{KeyColumn}, f.names...)
	f.cols = append([][]any{col}, f.cols...)

	return nil
}
