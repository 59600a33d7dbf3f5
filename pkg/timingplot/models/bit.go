package models

// BitLabel describes one labeled bit column and where it was plotted.
type BitLabel struct {
	// Bit is the bit number (0 = least significant, rightmost input column).
	Bit int `json:"bit"`
	// Column is the input column index (1-based).
	Column int `json:"column"`
	// Label is the text of the label cell.
	Label string `json:"label"`
	// PlotRow is the row on the plot sheet (0 if not plotted).
	PlotRow int `json:"plot_row,omitempty"`
}
