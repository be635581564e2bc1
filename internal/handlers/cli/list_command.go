package cli

import (
	"fmt"
	"strconv"

	"github.com/lazyasf/lazyasf/internal/core/ports"
	"github.com/lazyasf/lazyasf/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the aliases defined in your shell configuration.",
		Long:    `Displays every 'alias name=command' line of your rc file in file order.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, aliasManagementService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	aliasManagementService ports.AliasManagementService,
) error {
	out := cmd.OutOrStdout()

	aliases, err := aliasManagementService.ListAliases()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases defined in %s.", aliasManagementService.ConfigPath())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases in %s:", aliasManagementService.ConfigPath())))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Alias Name", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, a := range aliases {
		table.Append([]string{strconv.Itoa(i + 1), a.Name, a.Command})
	}
	table.Render()
	return nil
}
