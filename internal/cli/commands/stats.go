package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printStats renders per-frame statistics as a table, with a total row
// when there is more than one frame.
func printStats(w io.Writer, frames []frame) error {
	p := message.NewPrinter(language.English)
	num := func(n int) string { return p.Sprintf("%d", n) }

	t := table.NewWriter()
	t.SetOutputMirror(w)
	// StyleLight upper-cases headers and footers, which mangles units
	// like "ms" in the total row.
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.AppendHeader(table.Row{"Frame", "Triangles", "Drawn", "Culled", "Clipped", "Offscreen", "Pixels", "Depth rejects", "Time"})

	var columns []table.ColumnConfig
	for n := 2; n <= 9; n++ {
		columns = append(columns, table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.SetColumnConfigs(columns)

	var total struct {
		pixels, rejects int
		elapsed         time.Duration
	}
	for _, f := range frames {
		s := f.Stats
		t.AppendRow(table.Row{
			f.Index, num(s.Triangles), num(s.Rasterized), num(s.Culled), num(s.Clipped),
			num(s.Offscreen), num(s.Pixels), num(s.DepthRejects), s.Elapsed.Round(time.Microsecond),
		})
		total.pixels += s.Pixels
		total.rejects += s.DepthRejects
		total.elapsed += s.Elapsed
	}
	if len(frames) > 1 {
		t.AppendFooter(table.Row{"Total", "", "", "", "", "", num(total.pixels), num(total.rejects), total.elapsed.Round(time.Microsecond)})
	}

	t.Render()
	if len(frames) == 1 && frames[0].Path != "-" {
		_, err := fmt.Fprintf(w, "Wrote %s\n", frames[0].Path)
		return err
	}
	return nil
}
