package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the rapport banner to w, colored for the detected terminal profile.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	lines := []struct {
		text  string
		color string
	}{
		{"  ___  __ _ _ __  _ __   ___  _ __| |_", "#818cf8"},
		{" | '_|/ _` | '_ \\| '_ \\ / _ \\| '__| __|", "#a78bfa"},
		{" | | | (_| | |_) | |_) | (_) | |  | |_", "#e879f9"},
		{" |_|  \\__,_| .__/| .__/ \\___/|_|   \\__|", "#f472b6"},
		{"           |_|   |_|", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
