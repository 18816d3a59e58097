package transform

import "fmt"

// Direction selects the source and target frame of a conversion.
type Direction int

const (
	ToECI  Direction = iota // ECEF → ECI
	ToECEF                  // ECI → ECEF
)

// String returns the direction name used on the command line and in URLs.
func (d Direction) String() string {
	switch d {
	case ToECI:
		return "ecef-to-eci"
	case ToECEF:
		return "eci-to-ecef"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Source returns the name of the frame the input vector is expressed in.
func (d Direction) Source() string {
	if d == ToECEF {
		return "eci"
	}
	return "ecef"
}

// Target returns the name of the frame the output vector is expressed in.
func (d Direction) Target() string {
	if d == ToECEF {
		return "ecef"
	}
	return "eci"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if d != ToECI && d != ToECEF {
		return nil, fmt.Errorf("unknown direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses "ecef-to-eci" or "eci-to-ecef".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "ecef-to-eci":
		return ToECI, nil
	case "eci-to-ecef":
		return ToECEF, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Result is the outcome of one conversion, with the intermediate values.
type Result struct {
	Direction  Direction `json:"direction"`
	Epoch      Epoch     `json:"epoch"`
	JulianDate float64   `json:"julian_date"`
	GMST       float64   `json:"gmst_rad"` // [0, 2π)
	Input      Vector    `json:"input"`    // km, source frame
	Output     Vector    `json:"output"`   // km, target frame
}

// Convert rotates v from the direction's source frame into its target frame at
// epoch e: Julian date, then GMST angle, then the polar-axis rotation.
func Convert(dir Direction, e Epoch, v Vector) Result {
	return DefaultParams.Convert(dir, e, v)
}

// Convert is Convert with explicit constants.
func (p Params) Convert(dir Direction, e Epoch, v Vector) Result {
	jd := e.JulianDateFraction()
	theta := p.GMSTAngle(jd)

	var out Vector
	if dir == ToECEF {
		out = ECIToECEF(theta, v)
	} else {
		out = ECEFToECI(theta, v)
	}

	return Result{
		Direction:  dir,
		Epoch:      e,
		JulianDate: jd,
		GMST:       theta,
		Input:      v,
		Output:     out,
	}
}
