package plot

import (
	"bufio"
	"fmt"
	"html"
	"io"
)

// WriteSVG draws layout as an SVG document: the circle, one tick and label per
// base and one chord per pair.
func WriteSVG(w io.Writer, layout Layout) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		layout.Width, layout.Width, layout.Width, layout.Width)
	fmt.Fprintf(out, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="black" stroke-width="2"/>`+"\n",
		layout.Center.X, layout.Center.Y, layout.Radius)

	fmt.Fprintln(out, `<g stroke="black" stroke-width="1">`)
	for _, base := range layout.Bases {
		fmt.Fprintf(out, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
			base.TickStart.X, base.TickStart.Y, base.TickEnd.X, base.TickEnd.Y)
	}
	fmt.Fprintln(out, `</g>`)

	fmt.Fprintln(out, `<g font-family="Arial" font-size="20" text-anchor="middle" dominant-baseline="middle">`)
	for _, base := range layout.Bases {
		fmt.Fprintf(out, `<text x="%.2f" y="%.2f">%s</text>`+"\n",
			base.Label.X, base.Label.Y, html.EscapeString(string(base.Symbol)))
	}
	fmt.Fprintln(out, `</g>`)

	fmt.Fprintln(out, `<g stroke="blue" stroke-width="3">`)
	for _, chord := range layout.Chords {
		fmt.Fprintf(out, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
			chord.From.X, chord.From.Y, chord.To.X, chord.To.Y)
	}
	fmt.Fprintln(out, `</g>`)
	fmt.Fprintln(out, `</svg>`)

	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	return nil
}
