package models

// ChangedMarker is the text written to the state-change column.
const ChangedMarker = "CHANGED"

// HexRow is the packed encoding of one input data row.
type HexRow struct {
	// Row is the input row index (1-based).
	Row int `json:"row"`
	// Value is the packed bit pattern, most significant bit leftmost.
	Value uint64 `json:"value"`
	// Hex is Value formatted as a 0x-prefixed, zero padded literal.
	Hex string `json:"hex"`
	// Changed reports whether the row was marked as a state change.
	Changed bool `json:"changed,omitempty"`
}
