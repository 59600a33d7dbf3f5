// Package timingplot transposes a clock timing table and renders it as a
// timing diagram inside the same workbook.
package timingplot

import (
	"fmt"
	"strings"

	"github.com/ukaji3/timingplot-go/pkg/timingplot/layout"
	"go.uber.org/zap"
)

// Mode represents the processing mode.
type Mode string

const (
	// ModeFull clears the outputs, then transposes, plots and encodes.
	ModeFull Mode = "full"
	// ModeClearOnly clears the outputs and saves.
	ModeClearOnly Mode = "clear_only"
)

// ClearOnlyArg is the command line spelling of ModeClearOnly.
const ClearOnlyArg = "ClearOnly"

// ParseMode maps the optional second command line argument to a Mode.
// An empty argument selects ModeFull; any case of "ClearOnly" selects
// ModeClearOnly.
func ParseMode(arg string) (Mode, error) {
	switch {
	case arg == "":
		return ModeFull, nil
	case strings.EqualFold(arg, ClearOnlyArg):
		return ModeClearOnly, nil
	default:
		return "", fmt.Errorf("%w: %q, must be any case of %q to clear only, no second parameter to clear then process",
			ErrInvalidClearFlag, arg, ClearOnlyArg)
	}
}

// Options configures a run.
type Options struct {
	// Mode specifies the processing mode (full, clear_only).
	Mode Mode
	// Layout gives the sheet names and positions. If nil, layout.Default is used.
	Layout *layout.Layout
	// Logger receives progress output. If nil, logging is discarded.
	Logger *zap.Logger
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeFull,
	}
}

// ClearOnly reports whether the run stops after clearing.
func (o Options) ClearOnly() bool {
	return o.Mode == ModeClearOnly
}

// EffectiveLayout returns the configured layout or the default one.
func (o Options) EffectiveLayout() layout.Layout {
	if o.Layout != nil {
		return *o.Layout
	}
	return layout.Default()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
