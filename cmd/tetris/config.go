package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration, ready to be saved as
~/.tetris/config.yaml or ./configs/tetris.yaml and edited.

With --resolved, print the configuration the game would actually use after
searching --config, ~/.tetris/config.yaml, ./configs/tetris.yaml and the
embedded default, in that order.

Examples:
  tetris config > ~/.tetris/config.yaml
  tetris config --resolved
  tetris config --resolved --config ./wide.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the configuration after the search order is applied")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	out, err := yaml.Marshal(loadGameConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(out)
}
