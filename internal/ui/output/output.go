// Package output builds termenv outputs for rankings and log lines.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorProfile picks the profile for terminal output. DOCKQ_COLOR=always or
// never wins, then NO_COLOR and TERM=dumb disable color, otherwise the
// environment is probed.
func ColorProfile() termenv.Profile {
	switch strings.ToLower(os.Getenv("DOCKQ_COLOR")) {
	case "always":
		return termenv.TrueColor
	case "never":
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New returns an output for w (stderr when nil) using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, append(opts, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))...)
}
