package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/config"
	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/transform"
)

// formatFloat prints v with the given number of decimals, or the shortest
// representation that round-trips when precision is -1.
func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// render writes res to w in the requested format.
func render(w io.Writer, res transform.Result, format string, precision int) error {
	switch format {
	case config.OutputJSON:
		return renderJSON(w, res)
	case config.OutputTable:
		return renderTable(w, res, precision)
	default:
		return renderLines(w, res.Output, precision)
	}
}

// renderLines writes x, y and z one per line.
func renderLines(w io.Writer, v transform.Vector, precision int) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		formatFloat(v.X, precision),
		formatFloat(v.Y, precision),
		formatFloat(v.Z, precision),
	)
	return err
}

func renderJSON(w io.Writer, res transform.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

func renderTable(w io.Writer, res transform.Result, precision int) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"frame", "x (km)", "y (km)", "z (km)"})
	for _, row := range []struct {
		frame string
		v     transform.Vector
	}{
		{res.Direction.Source(), res.Input},
		{res.Direction.Target(), res.Output},
	} {
		t.AppendRow(table.Row{
			strings.ToUpper(row.frame),
			formatFloat(row.v.X, precision),
			formatFloat(row.v.Y, precision),
			formatFloat(row.v.Z, precision),
		})
	}
	t.AppendFooter(table.Row{"", "jd " + formatFloat(res.JulianDate, precision), "gmst " + formatFloat(res.GMST, precision) + " rad", ""})
	t.Render()
	return nil
}
