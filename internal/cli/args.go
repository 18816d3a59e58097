package cli

import (
	"fmt"
	"strconv"

	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/transform"
)

// argCount is the number of positional values every transform command takes.
const argCount = 9

// Usage returns the usage line for the command converting in dir.
func Usage(name string, dir transform.Direction) string {
	src := dir.Source()
	return fmt.Sprintf("Usage: %s year month day hour minute second %s_x_km %s_y_km %s_z_km", name, src, src, src)
}

var epochFields = [...]string{"year", "month", "day", "hour", "minute"}

// ParseArgs converts the nine positional values into an epoch and a vector.
// Only type conversion happens here: a month of 13 or a NaN coordinate is
// passed through unchanged.
func ParseArgs(args []string) (transform.Epoch, transform.Vector, error) {
	if len(args) != argCount {
		return transform.Epoch{}, transform.Vector{}, fmt.Errorf("expected %d arguments, got %d", argCount, len(args))
	}

	var ints [len(epochFields)]int
	for i, name := range epochFields {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return transform.Epoch{}, transform.Vector{}, fmt.Errorf("parse %s %q: %w", name, args[i], err)
		}
		ints[i] = n
	}

	floatNames := [...]string{"second", "x", "y", "z"}
	var floats [len(floatNames)]float64
	for i, name := range floatNames {
		raw := args[len(epochFields)+i]
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return transform.Epoch{}, transform.Vector{}, fmt.Errorf("parse %s %q: %w", name, raw, err)
		}
		floats[i] = f
	}

	epoch := transform.Epoch{
		Year:   ints[0],
		Month:  ints[1],
		Day:    ints[2],
		Hour:   ints[3],
		Minute: ints[4],
		Second: floats[0],
	}
	vec := transform.Vector{X: floats[1], Y: floats[2], Z: floats[3]}
	return epoch, vec, nil
}
