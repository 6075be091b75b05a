package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gnolang/bython/lint"
)

const defaultTimeout = 5 * time.Minute

var errMissingPath = errors.New("please provide a file path")

var (
	cfgFile   string
	timeout   time.Duration
	colorMode string
	verbose   bool
	format    string
	outPath   string
	noBrowser bool

	config lint.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "bython [file]",
	Short:             "bython - a docstring and style linter for Python files",
	TraverseChildren:  true, // Prioritize subcommands
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		// Format: bython file.py => behaves like the lint subcommand
		lintCmd.Run(lintCmd, args)
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", lint.DefaultConfigPath, "Configuration file (YAML, or TOML with a .toml extension)")
	flags.DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the linter")
	flags.StringVar(&colorMode, "color", lint.ColorAuto, "Colorize output (auto|always|never)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&format, "format", lint.FormatText, "Output format (text|json|yaml)")
	flags.StringVarP(&outPath, "output", "o", "", "Write the report to a file instead of stdout")
	flags.BoolVar(&noBrowser, "no-browser", false, "Do not open the result page when the run ends")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(watchCmd)
}

// setup builds the logger and merges the configuration file with the
// flags given on the command line. Flags win.
func setup(cmd *cobra.Command, _ []string) error {
	if err := setupLogger(); err != nil {
		return err
	}

	var err error
	config, err = lint.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") || config.Format == "" {
		config.Format = format
	}
	if flags.Changed("color") || config.Color == "" {
		config.Color = colorMode
	}
	if noBrowser {
		disabled := false
		config.OpenResultPage = &disabled
	}
	if err := config.Validate(); err != nil {
		return err
	}

	applyColorMode(config.Color, outPath != "")
	return nil
}

func setupLogger() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return err
}

// applyColorMode turns colors on or off. Reports written to a file are
// never colorized.
func applyColorMode(mode string, toFile bool) {
	switch {
	case toFile:
		color.NoColor = true
	case mode == lint.ColorAlways:
		color.NoColor = false
	case mode == lint.ColorNever:
		color.NoColor = true
	default:
		color.NoColor = os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
