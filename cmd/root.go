/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile      string
	showWarnings bool
	logger       *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorconv",
	Short: "Converts a color between color models",
	Long: `colorconv converts a single color, given as RGB, CIELAB, CIELCHab,
CIELUV, CIELCHuv, CIEXYZ, a spectral distribution, a wavelength or the
dominant color of an image, into every supported color model under both
standard observers and a list of illuminants. The result is printed as JSON.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		if showWarnings || viper.GetBool("show_warnings") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var e error
		logger, e = config.Build()
		if e != nil {
			return fmt.Errorf("failed to initialize logger: %w", e)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	e error
}

func (e *usageError) Error() string { return e.e.Error() }
func (e *usageError) Unwrap() error { return e.e }

func usage(e error) error {
	if e == nil {
		return nil
	}
	return &usageError{e}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Usage errors print the usage and exit with status 2.
func Execute() {
	cmd, e := rootCmd.ExecuteC()
	if e == nil {
		return
	}

	var ue *usageError
	if errors.As(e, &ue) {
		cmd.SetOutput(os.Stderr)
		_ = cmd.Usage()
		fmt.Fprintf(os.Stderr, "Error: %s\n", e)
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", e)
	os.Exit(1)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, e error) error {
		return usage(e)
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorconv.yaml)")
	rootCmd.PersistentFlags().BoolVar(&showWarnings, "show_warnings", false, "show warnings and debug output on stderr")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			fmt.Fprintln(os.Stderr, e)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".colorconv")
	}

	viper.SetEnvPrefix("colorconv")
	viper.AutomaticEnv()

	// a missing config file is fine; flags and defaults still apply
	_ = viper.ReadInConfig()
}
