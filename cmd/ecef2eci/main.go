// Command ecef2eci converts an ECEF position to ECI at a UTC epoch.
//
//	ecef2eci year month day hour minute second ecef_x_km ecef_y_km ecef_z_km
package main

import (
	"fmt"
	"os"

	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/cli"
	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/transform"
)

func main() {
	if err := cli.NewTransformCommand(transform.ToECI).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
