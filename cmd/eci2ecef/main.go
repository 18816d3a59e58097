// Command eci2ecef converts an ECI position to ECEF at a UTC epoch.
package main

import (
	"fmt"
	"os"

	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/cli"
	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/transform"
)

func main() {
	if err := cli.NewTransformCommand(transform.ToECEF).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
