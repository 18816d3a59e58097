package transform

import (
	"math"
	"time"
)

const twoPi = 2 * math.Pi

// OmegaEarth is Earth's rotation rate in rad/s.
const OmegaEarth = 7.292115e-5

// Params holds the physical constants used by the sidereal angle calculation.
type Params struct {
	OmegaEarth float64 // rad/s
}

// DefaultParams are the reference constants.
var DefaultParams = Params{OmegaEarth: OmegaEarth}

// GMSTSeconds evaluates the IAU-82 GMST polynomial (Vallado Eq 3-47) for a
// Julian date, in seconds of time. The result is not reduced.
//
//	θ_GMST = 67310.54841 + (876600h + 8640184.812866)*T + 0.093104*T² - 6.2e-6*T³
//
// where T is Julian centuries from J2000.0.
func GMSTSeconds(jd float64) float64 {
	t := (jd - j2000) / 36525.0

	// 876600h = 876600 * 3600 = 3155760000 seconds.
	return 67310.54841 +
		(876600*3600+8640184.812866)*t +
		0.093104*t*t -
		6.2e-6*t*t*t
}

// GMSTAngle returns the Earth rotation angle in radians, in [0, 2π), for a
// Julian date using DefaultParams.
func GMSTAngle(jd float64) float64 {
	return DefaultParams.GMSTAngle(jd)
}

// GMSTAngle returns the Earth rotation angle in radians, in [0, 2π).
//
// GMST seconds are reduced modulo one day, scaled by the rotation rate, then
// shifted by 2π and reduced again so the angle is never negative.
func (p Params) GMSTAngle(jd float64) float64 {
	sec := floorMod(GMSTSeconds(jd), secondsPerDay)
	theta := floorMod(sec*p.OmegaEarth+twoPi, twoPi)
	if theta >= twoPi {
		// -ε + 2π can round to exactly 2π.
		theta = 0
	}
	return theta
}

// GMST calculates the Earth rotation angle in radians for a UTC time.
func GMST(t time.Time) float64 {
	return GMSTAngle(JulianDate(t))
}

// floorMod returns x mod y with the sign of y.
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}
