package aishub

// Header is the provider's response header, normalized across the three
// wire formats. The CSV serialization carries no native header, so Username
// and Format are empty there and the remaining fields are synthesized.
type Header struct {
	// HasError reports a provider-side rejection (bad credentials, rate
	// limit). When set, RecordCount is meaningless and ErrorMessage holds
	// the provider's message if the wire format carries one.
	HasError bool

	// Username echoes the account name the request was made with.
	Username string

	// Format echoes the field format of the returned records.
	Format string

	// RecordCount is the number of vessel records the provider declared.
	RecordCount int

	// ErrorMessage is the provider's rejection message; empty unless
	// HasError is set.
	ErrorMessage string
}

// Record is one vessel's field set. The provider controls the schema and it
// varies by output serialization and field format, so fields stay a dynamic
// name-to-value mapping rather than a fixed struct. Values are strings for
// XML and CSV; JSON preserves the provider's scalar types.
type Record map[string]any

// Response is the normalized result of one service call.
type Response struct {
	Header  Header
	Records []Record
}
