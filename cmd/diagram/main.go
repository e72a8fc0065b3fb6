package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/muesli/termenv"
	"github.com/rmcsoft/diagram"
	"github.com/sirupsen/logrus"
)

type options struct {
	Script  string `short:"s" long:"script"   description:"Script file (.toml, .yaml) to run instead of the built-in demo"`
	Verbose bool   `short:"v" long:"verbose"  description:"Log debug messages to stderr"`
	NoColor bool   `short:"n" long:"no-color" description:"Disable terminal styling"`
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	return opts
}

func setupLogger(opts *options) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

func loadScript(opts *options, logger *logrus.Logger) *diagram.Script {
	if opts.Script == "" {
		return diagram.DefaultScript()
	}

	script, err := diagram.LoadScript(opts.Script)
	if err != nil {
		logger.WithError(err).Fatal("Couldn't load script")
	}
	return script
}

func main() {
	opts := parseCmd()
	logger := setupLogger(&opts)
	diagram.SetLogger(logger)

	var contrastOut *termenv.Output
	if opts.NoColor {
		contrastOut = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	} else {
		contrastOut = termenv.NewOutput(os.Stdout)
	}

	paintEngine := diagram.NewTextPaintEngine(os.Stdout)
	df := diagram.NewDiagramFactory(
		paintEngine,
		diagram.NewRegularSubscriber(os.Stdout),
		diagram.NewContrastSubscriber(contrastOut),
	)

	script := loadScript(&opts, logger)
	if err := script.Run(df, paintEngine); err != nil {
		logger.WithError(err).Error("Script failed")
	}
}
