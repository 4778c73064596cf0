package frame

// Repair selects how BindRows reconciles mismatched field sets.
type Repair int

const (
	// RepairNone rejects mismatched field sets with ErrFieldMismatch.
	RepairNone Repair = iota

	// RepairUnion takes the union of all field names in first-seen order
	// and fills absent fields with nil.
	RepairUnion
)

// KeyColumn is the name of the identity column WithKeys prepends.
const KeyColumn = "key"

// Options configures BindRows.
type Options struct {
	// Repair is the field-set reconciliation policy.
	Repair Repair
	// Keys, when non-nil, prepends the identity column; labels recycle to
	// the row count (length equal to rows, or 1).
	Keys []string
}

// DefaultOptions returns strict binding: no repair, no key column.
func DefaultOptions() Options { return Options{} }

// Option mutates Options.
type Option func(*Options)

// WithRepair declares the field-set reconciliation policy.
func WithRepair(r Repair) Option {
	return func(o *Options) { o.Repair = r }
}

// WithKeys prepends an identity column built from labels, recycled to the
// row count.
func WithKeys(labels []string) Option {
	return func(o *Options) { o.Keys = labels }
}
