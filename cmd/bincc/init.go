package main

import (
	"fmt"
	"os"

	"github.com/davidepi/bincc/internal/config"
	"github.com/spf13/cobra"
)

// InitCommand scaffolds a starter .bincc.toml. Grounded on
// cmd/pyscn/init.go.
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand returns a command defaulting to ./.bincc.toml.
func NewInitCommand() *InitCommand {
	return &InitCommand{configPath: config.ConfigFileName}
}

// CreateCobraCommand builds the `bincc init` cobra.Command.
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a .bincc.toml configuration file",
		Long: `Creates a .bincc.toml file in the current directory with the
built-in defaults for structuring, disassembler, output, and batch mode
settings.`,
		RunE: i.run,
	}
	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite an existing configuration file")
	cmd.Flags().StringVarP(&i.configPath, "config", "c", config.ConfigFileName, "Configuration file path")
	return cmd
}

func (i *InitCommand) run(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(i.configPath); err == nil && !i.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", i.configPath)
	}
	if err := config.SaveTOML(i.configPath, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", i.configPath)
	return nil
}

// NewInitCmd returns the cobra command for `bincc init`.
func NewInitCmd() *cobra.Command {
	return NewInitCommand().CreateCobraCommand()
}
