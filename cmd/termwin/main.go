// Package main is the entry point for termwin, a set of demo programs for
// the terminal window toolkit.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global flags
var (
	configPath string
	debugMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "termwin",
		Short: "Terminal window toolkit demos",
		Long: `termwin - terminal window toolkit demos

Runs small programs built on bordered windows, text fields, focus
cycling and mouse focus. Every demo exits on F4.`,
		Example: `  # Run the default demo
  termwin

  # Cycle focus between two text fields with TAB
  termwin focus

  # Focus text fields by clicking them
  termwin mouse

  # Drive a text field from a Lua script
  termwin script handlers.lua`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), buildDemo)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	focusCmd := &cobra.Command{
		Use:   "focus",
		Short: "Cycle focus between text fields",
		Long: `Show two text fields under a banner. The focus key (TAB by default)
moves input focus from one field to the next; arrow keys move the
cursor inside the focused field.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), buildFocus)
		},
	}

	mouseCmd := &cobra.Command{
		Use:   "mouse",
		Short: "Focus text fields with the mouse",
		Long: `Show four text fields under a banner. Clicking a field gives it
input focus. Needs a terminal at least 32 rows tall.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), buildMouse)
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Run Lua event handlers",
		Long: `Bind the on_key, on_term, on_mouse and on_resize functions of a
Lua script to a text field. Without a file a built-in script is used
that moves the cursor with the arrow keys and exits on F4.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDemo(cmd.Context(), scriptBuilder(path))
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage termwin configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	var force bool
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := writeDefaultConfig(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	configInitCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	configCheckCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := checkConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			return nil
		},
	}

	configCmd.AddCommand(configPathCmd, configInitCmd, configCheckCmd)
	rootCmd.AddCommand(focusCmd, mouseCmd, scriptCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}
