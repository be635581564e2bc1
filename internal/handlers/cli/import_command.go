package cli

import (
	"fmt"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"github.com/lazyasf/lazyasf/internal/core/ports"
	"github.com/lazyasf/lazyasf/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the 'import' subcommand, which adds a set of
// aliases from a YAML file.
func NewImportCommand(managementSvc ports.AliasManagementService, openAliasSource AliasSourceFunc) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Interactively import aliases from a YAML file.",
		Long: `Reads a YAML list of aliases:

  - alias: gs
    command: git status

lets you select which ones to add, and writes them to your rc file in one
step. Existing aliases with the same name are overwritten. A single backup is
taken for the whole import, so 'restore' undoes all of it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if openAliasSource == nil {
				return fmt.Errorf("alias source is not configured")
			}
			return runImportCmd(cmd, args[0], yes, managementSvc, openAliasSource)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Import every valid alias without asking.")
	return cmd
}

func runImportCmd(
	cmd *cobra.Command,
	path string,
	yes bool,
	managementSvc ports.AliasManagementService,
	openAliasSource AliasSourceFunc,
) error {
	out := cmd.OutOrStdout()

	provider, err := openAliasSource(path)
	if err != nil {
		return fmt.Errorf("could not open alias file: %w", err)
	}
	loaded, err := provider.GetPredefinedAliases()
	if err != nil {
		return fmt.Errorf("could not load aliases: %w", err)
	}
	if len(loaded) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases found in %s.", path)))
		return nil
	}

	valid := filterValidAliases(cmd, loaded, managementSvc)
	if len(valid) == 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d aliases were found, but none have a valid name.", len(loaded))))
		return nil
	}
	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Found %d aliases. %d are valid and available for selection.", len(loaded), len(valid))))

	selected := valid
	if !yes {
		p := newPrompter(cmd.InOrStdin(), out)
		selected, err = selectAliases(p, valid, true)
		if err != nil {
			return fmt.Errorf("could not select aliases: %w", err)
		}
		if len(selected) == 0 {
			fmt.Fprintln(out, ui.InfoColor("No aliases were selected to be imported."))
			return nil
		}
		ok, err := p.confirm(fmt.Sprintf("Add these %d selected aliases?", len(selected)), true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, ui.WarningColor("Cancelled. Nothing was written."))
			return nil
		}
	}

	overwritten, err := managementSvc.AddAliases(selected)
	if err != nil {
		return fmt.Errorf("could not import %d aliases, nothing was written: %w", len(selected), err)
	}
	printImportOutcome(cmd, len(selected)-overwritten, overwritten, managementSvc.ConfigPath())
	return nil
}

func filterValidAliases(cmd *cobra.Command, loaded []alias.Alias, managementSvc ports.AliasManagementService) []alias.Alias {
	valid := make([]alias.Alias, 0, len(loaded))
	for _, a := range loaded {
		if err := managementSvc.ValidateName(a.Name); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor(fmt.Sprintf("Skipping '%s': %v", a.Name, err)))
			continue
		}
		valid = append(valid, a)
	}
	return valid
}

func printImportOutcome(cmd *cobra.Command, added, overwritten int, rcPath string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("\n%d alias(es) added, %d overwritten.", added, overwritten)))
	fmt.Fprintln(out, ui.DetailColor("Run 'lazyasf restore' to undo this import."))
	fmt.Fprintln(out, ui.SourceHint(rcPath))
}
