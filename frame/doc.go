// Package frame assembles per-window records into tabular frames:
// row-binding stacks one record per window aligning columns by field
// name, column-binding concatenates frames side by side.
//
// A Record is an ordered list of named fields — the shape a window
// function returns when one window produces one row:
//
//	frame.Record{frame.F("mean", 3.5), frame.F("n", 4)}
//
// BindRows stacks records: every record must carry the same field set
// (order may differ; alignment is by name) unless WithRepair(RepairUnion)
// is declared, which takes the union of all field names in first-seen
// order and fills gaps with nil. WithKeys prepends an identity column
// derived from caller-supplied labels — the usual way to tag which input
// sequence produced each row in n-ary runs.
//
// BindCols concatenates frames column-wise: row counts must be equal or 1
// (a one-row frame recycles), and column-name collisions are repaired by
// suffixing the later column with its 1-based output position
// ("price...3").
//
// The package is a plain data-shaping facility: it never runs window
// functions and holds no window logic.
package frame
