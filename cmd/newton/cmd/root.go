package cmd

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "newton",
		SilenceUsage:  true,
		SilenceErrors: true,
		Short:         "Find roots and stationary points of polynomials by Newton's method",
	}

	flags := cmd.PersistentFlags()
	flags.String(CustomConfigLocation, "", "Path to a YAML configuration file")
	flags.String("poly", "", "Polynomial coefficients, highest degree first, separated by commas")
	flags.Float64("x0", 0, "Initial guess")
	flags.Int("max-iterations", 1000, "Maximum number of Newton updates")
	flags.Float64("tolerance", 1e-10, "Stop once |f(x)| is below this value")
	flags.Float64("step-size", 1, "Multiplier on the Newton step")
	flags.Bool("allow-unconverged", false, "Print the last iterate instead of failing when the budget runs out")
	flags.Bool("trace", false, "Log every iteration")
	flags.Bool("verbose", false, "Enable debug logging")

	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return errors.Wrap(v.BindPFlags(flags), "binding flags")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(
		findRootCmd(v),
		minimizeCmd(v),
	)

	return cmd
}

// ConfigureLogging sets up the standard logger used to report command errors
func ConfigureLogging(out io.Writer) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(out)
}

// Execute runs the command and logs any error it returns
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		log.Error(err)
	}
	return err
}
