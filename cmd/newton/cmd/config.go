package cmd

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/btracey/newton/common"
	"github.com/btracey/newton/write"
)

const (
	CustomConfigLocation = "config"
	envPrefix            = "NEWTON"
)

// Configuration is what a single run of the command needs
type Configuration struct {
	Poly             Polynomial
	X0               float64
	MaxIterations    int
	Tolerance        float64
	StepSize         float64
	AllowUnconverged bool
	Trace            bool
	Verbose          bool
}

// loadConfig merges the config file, environment and flags bound to v
func loadConfig(v *viper.Viper) (Configuration, error) {
	var config Configuration
	if path := v.GetString(CustomConfigLocation); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	poly, err := ParsePolynomial(v.GetString("poly"))
	if err != nil {
		return config, err
	}
	config.Poly = poly
	config.X0 = v.GetFloat64("x0")
	config.MaxIterations = v.GetInt("max-iterations")
	config.Tolerance = v.GetFloat64("tolerance")
	config.StepSize = v.GetFloat64("step-size")
	config.AllowUnconverged = v.GetBool("allow-unconverged")
	config.Trace = v.GetBool("trace")
	config.Verbose = v.GetBool("verbose")
	return config, nil
}

func newLogger(out io.Writer, config Configuration) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if config.Verbose || config.Trace {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// apply copies the run configuration onto library settings
func (c Configuration) apply(cs *common.CommonSettings, rs *common.RootSettings, logger log.FieldLogger) {
	cs.MaximumIterations = c.MaxIterations
	rs.FunctionAbsTol = c.Tolerance
	rs.StepSize = c.StepSize
	rs.AllowUnconverged = c.AllowUnconverged
	if c.Trace {
		cs.WriteSettings = &write.WriteSettings{
			DisplayWriters: []write.Writer{{T: write.Structured, Log: logger}},
		}
	}
}
