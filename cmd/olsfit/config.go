package main

import (
	"flag"
	"io"

	"github.com/pkg/profile"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
)

// Config holds the command line settings of one olsfit run.
type Config struct {
	TrainPath   string
	PredictPath string
	OutPath     string

	PNGPath  string
	SVGPath  string
	HTMLPath string

	LogLevel  string
	LogFormat string

	Profile    string
	ProfileDir string
}

func parseFlags(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("olsfit", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.TrainPath, "train", "", "training CSV with x,y columns (\"-\" for stdin)")
	fs.StringVar(&cfg.PredictPath, "predict", "", "CSV whose first column holds x values to predict")
	fs.StringVar(&cfg.OutPath, "out", "", "write the JSON report here instead of stdout")
	fs.StringVar(&cfg.PNGPath, "png", "", "render the fit as a PNG image")
	fs.StringVar(&cfg.SVGPath, "svg", "", "render the fit as an SVG image")
	fs.StringVar(&cfg.HTMLPath, "html", "", "render the fit as an interactive HTML page")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", "json", "json or console")
	fs.StringVar(&cfg.Profile, "profile", "", "write a cpu or mem profile")
	fs.StringVar(&cfg.ProfileDir, "profile-dir", ".", "directory for profile output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.TrainPath == "" {
		return errors.Wrap(errors.ErrInvalidInput, "-train is required")
	}
	if c.TrainPath == "-" && c.PredictPath == "-" {
		return errors.Wrap(errors.ErrInvalidInput, "-train and -predict cannot both read stdin")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "invalid log format: %q", c.LogFormat)
	}
	if _, err := c.profileMode(); err != nil {
		return err
	}
	return nil
}

// profileMode maps -profile to a pkg/profile mode. nil means profiling is off.
func (c *Config) profileMode() (func(*profile.Profile), error) {
	switch c.Profile {
	case "":
		return nil, nil
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid profile mode: %q", c.Profile)
	}
}

func (c *Config) logger(w io.Writer) log.Logger {
	level, _ := log.ParseLevel(c.LogLevel)
	if c.LogFormat == "console" {
		return log.NewConsoleLogger(w, level)
	}
	return log.NewZerologLogger(w, level)
}
