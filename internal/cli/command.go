// Package cli provides the command-line interface shared by the ecef2eci and
// eci2ecef commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/config"
	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/logging"
	"github.com/olivia-powell-1/aoe-4414-a04-q19/internal/transform"
	"github.com/spf13/cobra"
)

// CommandName returns the binary name for a direction.
func CommandName(dir transform.Direction) string {
	if dir == transform.ToECEF {
		return "eci2ecef"
	}
	return "ecef2eci"
}

// NewTransformCommand creates the command converting a position in dir.
func NewTransformCommand(dir transform.Direction) *cobra.Command {
	name := CommandName(dir)
	src, dst := dir.Source(), dir.Target()

	cmd := &cobra.Command{
		Use:   name + " year month day hour minute second x_km y_km z_km",
		Short: fmt.Sprintf("Convert a position from the %s frame to the %s frame", strings.ToUpper(src), strings.ToUpper(dst)),
		Long: fmt.Sprintf(`Convert a position vector from the %[1]s frame to the %[2]s frame at a
civil UTC date/time, rotating about the polar axis by the Greenwich Mean
Sidereal Time angle.

Prints the %[2]s x, y and z components (km), one per line. Flags must come
before the positional values; use -- when the year is negative.

Example:
  %[3]s 2000 1 1 12 0 0 1000.0 2000.0 3000.0`, strings.ToUpper(src), strings.ToUpper(dst), name),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, dir, args)
		},
	}

	// Negative coordinates must not be mistaken for shorthand flags.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().String("config", "", "Path to configuration file (YAML)")
	cmd.Flags().StringP("output", "o", config.DefaultOutput, "Output format (lines|json|table)")
	cmd.Flags().Int("precision", config.DefaultPrecision, "Digits after the decimal point (-1 for shortest round-trip)")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputLines, config.OutputJSON, config.OutputTable}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runTransform(cmd *cobra.Command, dir transform.Direction, args []string) error {
	if len(args) != argCount {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), Usage(CommandName(dir), dir))
		return err
	}

	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	epoch, vec, err := ParseArgs(args)
	if err != nil {
		return err
	}

	res := transform.Convert(dir, epoch, vec)
	logger.Debug("converted position",
		"direction", dir.String(),
		"jd", res.JulianDate,
		"gmst_rad", res.GMST,
	)

	return render(cmd.OutOrStdout(), res, cfg.Output, cfg.Precision)
}
