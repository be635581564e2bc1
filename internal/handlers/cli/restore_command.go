package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/lazyasf/lazyasf/internal/core/ports"
	"github.com/lazyasf/lazyasf/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRestoreCommand creates the 'restore' subcommand, which undoes the last
// change by copying the backup back over the rc file.
func NewRestoreCommand(aliasManagementService ports.AliasManagementService) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore your shell configuration from the last backup.",
		Long: `Only one backup is kept. It is taken right before every add, remove or
import; an import backs up once for all of its aliases. Restoring undoes the
most recent of these commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestoreCmd(cmd, yes, aliasManagementService)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	return cmd
}

func runRestoreCmd(cmd *cobra.Command, yes bool, aliasManagementService ports.AliasManagementService) error {
	out := cmd.OutOrStdout()

	info, err := aliasManagementService.BackupInfo()
	if err != nil {
		return fmt.Errorf("could not inspect backup: %w", err)
	}

	fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Backup: %s", info.Path)))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("  size %s, saved %s", humanize.Bytes(uint64(info.Size)), humanize.Time(info.ModTime))))

	if !yes {
		p := newPrompter(cmd.InOrStdin(), out)
		ok, err := p.confirm(fmt.Sprintf("Replace %s with this backup?", aliasManagementService.ConfigPath()), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, ui.WarningColor("Cancelled. Nothing was written."))
			return nil
		}
	}

	if err := aliasManagementService.RestoreBackup(); err != nil {
		return fmt.Errorf("could not restore backup: %w", err)
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%s restored from backup.", aliasManagementService.ConfigPath())))
	fmt.Fprintln(out, ui.SourceHint(aliasManagementService.ConfigPath()))
	return nil
}
