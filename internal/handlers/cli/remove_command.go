package cli

import (
	"fmt"

	"github.com/lazyasf/lazyasf/internal/core/ports"
	"github.com/lazyasf/lazyasf/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [alias]",
		Aliases: []string{"rm"},
		Short:   "Remove an alias from your shell configuration.",
		Long: `Removes the first line defining the alias. Without an argument you pick
the alias from the ones currently defined (fzf if available).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemoveCmd(cmd, args, aliasManagementService)
		},
	}
	return cmd
}

func runRemoveCmd(cmd *cobra.Command, args []string, aliasManagementService ports.AliasManagementService) error {
	out := cmd.OutOrStdout()

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		aliases, err := aliasManagementService.ListAliases()
		if err != nil {
			return fmt.Errorf("could not list aliases: %w", err)
		}
		if len(aliases) == 0 {
			fmt.Fprintln(out, ui.InfoColor("No aliases defined. Nothing to remove."))
			return nil
		}
		selected, err := selectAliases(newPrompter(cmd.InOrStdin(), out), aliases, false)
		if err != nil {
			return fmt.Errorf("could not select an alias: %w", err)
		}
		if len(selected) == 0 {
			return nil
		}
		name = selected[0].Name
	}

	removed, err := aliasManagementService.RemoveAlias(name)
	if err != nil {
		return fmt.Errorf("could not remove alias '%s': %w", name, err)
	}
	if !removed {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Alias '%s' does not exist. Nothing changed.", name)))
		return nil
	}

	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Alias '%s' removed.", name)))
	fmt.Fprintln(out, ui.SourceHint(aliasManagementService.ConfigPath()))
	return nil
}
