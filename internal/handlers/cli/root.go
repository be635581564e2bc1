package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lazyasf/lazyasf/internal/config"
	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"github.com/lazyasf/lazyasf/internal/core/ports"
	"github.com/lazyasf/lazyasf/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// AliasSourceFunc opens a set of aliases to import, usually a YAML file.
type AliasSourceFunc func(path string) (ports.PredefinedAliasProvider, error)

// NewRootCommand wires every subcommand. logLevel is raised to Debug by --verbose.
func NewRootCommand(
	version string,
	managementService ports.AliasManagementService,
	prompts config.Prompts,
	openAliasSource AliasSourceFunc,
	logLevel *slog.LevelVar,
	logger *slog.Logger,
) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lazyasf",
		Short: "lazyasf manages the aliases in your ~/.zshrc.",
		Long: `lazyasf adds, removes and lists 'alias name='command'' lines in your
~/.zshrc. The file is backed up to ~/.zshrc.bak before every change.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				if logLevel != nil {
					logLevel.Set(slog.LevelDebug)
				}
				if logger != nil {
					logger.Debug("verbose logging enabled", "command", cmd.Name())
				}
			}
			if managementService == nil {
				return fmt.Errorf("alias management service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed logs.")

	rootCmd.AddCommand(NewAddCommand(managementService, prompts))
	rootCmd.AddCommand(NewRemoveCommand(managementService))
	rootCmd.AddCommand(NewListCommand(managementService))
	rootCmd.AddCommand(NewImportCommand(managementService, openAliasSource))
	rootCmd.AddCommand(NewRestoreCommand(managementService))

	return rootCmd
}

// PrintError writes err for the user, prefixed with its alias error code when it has one.
func PrintError(w io.Writer, err error) {
	if code := alias.CodeOf(err); code != "" {
		fmt.Fprintln(w, ui.ErrorColor(fmt.Sprintf("Error [%s]: %v", code, err)))
		return
	}
	fmt.Fprintln(w, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
}
