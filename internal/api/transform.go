package api

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/httputil"
	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/metrics"
	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/transform"
)

// transformHandler converts the position given in the query string.
//
// GET /api/v1/ecef-to-eci?year=&month=&day=&hour=&minute=&second=&x=&y=&z=
func transformHandler(dir transform.Direction, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		epoch, vec, err := parseQuery(r.URL.Query())
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		res := transform.Convert(dir, epoch, vec)
		if !finite(res.Input) || !finite(res.Output) {
			httputil.WriteError(w, http.StatusUnprocessableEntity, "position is not finite")
			return
		}
		metrics.RecordTransform(dir.String())
		logger.Debug("converted position",
			"component", "api",
			"direction", dir.String(),
			"jd", res.JulianDate,
			"gmst_rad", res.GMST,
		)

		httputil.WriteJSON(w, http.StatusOK, res)
	}
}

// parseQuery reads the epoch and position from q. Every parameter is
// required; only type conversion is performed.
func parseQuery(q url.Values) (transform.Epoch, transform.Vector, error) {
	var (
		e   transform.Epoch
		v   transform.Vector
		err error
	)

	ints := []struct {
		name string
		dst  *int
	}{
		{"year", &e.Year},
		{"month", &e.Month},
		{"day", &e.Day},
		{"hour", &e.Hour},
		{"minute", &e.Minute},
	}
	for _, f := range ints {
		raw, ok := lookup(q, f.name)
		if !ok {
			return e, v, fmt.Errorf("missing query parameter %q", f.name)
		}
		if *f.dst, err = strconv.Atoi(raw); err != nil {
			return e, v, fmt.Errorf("parse %s %q: %w", f.name, raw, err)
		}
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"second", &e.Second},
		{"x", &v.X},
		{"y", &v.Y},
		{"z", &v.Z},
	}
	for _, f := range floats {
		raw, ok := lookup(q, f.name)
		if !ok {
			return e, v, fmt.Errorf("missing query parameter %q", f.name)
		}
		if *f.dst, err = strconv.ParseFloat(raw, 64); err != nil {
			return e, v, fmt.Errorf("parse %s %q: %w", f.name, raw, err)
		}
	}

	return e, v, nil
}

// finite reports whether v can be represented in a JSON response.
func finite(v transform.Vector) bool {
	for _, c := range [...]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func lookup(q url.Values, name string) (string, bool) {
	vals, ok := q[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}
