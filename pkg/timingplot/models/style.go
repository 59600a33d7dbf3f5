package models

// Border is a cell border preset used by the plot and the time axis.
type Border int

const (
	// BorderNone removes all borders.
	BorderNone Border = iota
	// BorderThickTop marks a 1 sample.
	BorderThickTop
	// BorderThickBottom marks a 0 sample.
	BorderThickBottom
	// BorderThickTopLeft marks a rising edge.
	BorderThickTopLeft
	// BorderThickBottomLeft marks a falling edge.
	BorderThickBottomLeft
	// BorderThinBottom underlines the time axis.
	BorderThinBottom
	// BorderThickLeftThinBottom underlines a labeled time axis step.
	BorderThickLeftThinBottom
)

var borderNames = map[Border]string{
	BorderNone:                "none",
	BorderThickTop:            "thick-top",
	BorderThickBottom:         "thick-bottom",
	BorderThickTopLeft:        "thick-top-left",
	BorderThickBottomLeft:     "thick-bottom-left",
	BorderThinBottom:          "thin-bottom",
	BorderThickLeftThinBottom: "thick-left-thin-bottom",
}

func (b Border) String() string {
	if s, ok := borderNames[b]; ok {
		return s
	}
	return "unknown"
}

// Fill is a cell background preset.
type Fill int

const (
	// FillNone removes the background.
	FillNone Fill = iota
	// FillTimeMarker shades the columns carrying a time axis label.
	FillTimeMarker
)

// Font is a cell font preset.
type Font int

const (
	// FontDefault resets color and weight.
	FontDefault Font = iota
	// FontFaint renders plotted 0/1 samples in light grey.
	FontFaint
	// FontLabel renders bit labels bold black.
	FontLabel
)

// Align is a horizontal alignment preset.
type Align int

const (
	// AlignDefault uses the general alignment.
	AlignDefault Align = iota
	// AlignLeft left-aligns bit labels.
	AlignLeft
	// AlignCenter centers plotted samples.
	AlignCenter
)
