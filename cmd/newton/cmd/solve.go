package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btracey/newton/univariate"
)

func findRootCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Find a root of the polynomial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), config)

			settings := univariate.DefaultSettings()
			config.apply(settings.CommonSettings, settings.RootSettings, logger)

			logger.WithField("poly", config.Poly).Debugf("searching for a root from %v", config.X0)
			result, err := univariate.FindRoot(config.Poly.Eval, config.Poly.Deriv().Eval, config.X0, settings)
			if err != nil {
				return errors.Wrap(err, "finding root")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "x = %.10g\n", result.Loc)
			fmt.Fprintf(out, "f(x) = %.10g\n", result.F)
			fmt.Fprintf(out, "iterations = %d\n", result.Iterations)
			fmt.Fprintf(out, "status = %v\n", result.Status)
			return nil
		},
	}
}

func minimizeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "minimize",
		Short: "Find a stationary point of the polynomial",
		Long: "Find a stationary point of the polynomial by searching for a root of its derivative.\n" +
			"The point found may be a maximum or a saddle.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), config)

			settings := univariate.DefaultSettings()
			config.apply(settings.CommonSettings, settings.RootSettings, logger)

			grad := config.Poly.Deriv()
			hess := grad.Deriv()
			logger.WithField("poly", config.Poly).Debugf("searching for a stationary point from %v", config.X0)
			result, err := univariate.Minimize(config.Poly.Eval, grad.Eval, hess.Eval, config.X0, settings)
			if err != nil {
				return errors.Wrap(err, "minimizing")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "x = %.10g\n", result.Loc)
			fmt.Fprintf(out, "f(x) = %.10g\n", result.Obj)
			fmt.Fprintf(out, "f'(x) = %.10g\n", result.F)
			fmt.Fprintf(out, "iterations = %d\n", result.Iterations)
			fmt.Fprintf(out, "status = %v\n", result.Status)
			return nil
		},
	}
}
