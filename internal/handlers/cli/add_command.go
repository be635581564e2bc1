package cli

import (
	"fmt"

	"github.com/lazyasf/lazyasf/internal/config"
	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"github.com/lazyasf/lazyasf/internal/core/ports"
	"github.com/lazyasf/lazyasf/internal/handlers/ui"
	"github.com/spf13/cobra"
)

type addCommandFlags struct {
	aliasName   string
	fullCommand string
	yes         bool
}

// NewAddCommand creates the interactive 'add' subcommand.
func NewAddCommand(aliasManagementService ports.AliasManagementService, prompts config.Prompts) *cobra.Command {
	var flags addCommandFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Interactively add an alias to your shell configuration.",
		Long: `Asks for the full command, the short alias and a confirmation, then writes
alias <name>='<command>' to your rc file. An existing alias with the same name
is overwritten in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, flags, prompts, aliasManagementService)
		},
	}

	cmd.Flags().StringVarP(&flags.aliasName, "alias", "a", "", "Short alias name (skips the prompt).")
	cmd.Flags().StringVarP(&flags.fullCommand, "command", "c", "", "Full command (skips the prompt).")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Do not ask for confirmation.")

	return cmd
}

func runAddCmd(
	cmd *cobra.Command,
	flags addCommandFlags,
	prompts config.Prompts,
	aliasManagementService ports.AliasManagementService,
) error {
	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	out := cmd.OutOrStdout()

	fullCommand := flags.fullCommand
	if cmd.Flags().Changed("command") {
		if err := notBlank("A command is required.")(fullCommand); err != nil {
			return alias.NewError(alias.CodeInvalidInput, err.Error(), nil)
		}
	} else {
		var err error
		fullCommand, err = p.askText(prompts.FullCommand, notBlank("A command is required."))
		if err != nil {
			return err
		}
	}

	aliasName := flags.aliasName
	if cmd.Flags().Changed("alias") {
		if err := notBlank("An alias is required.")(aliasName); err != nil {
			return alias.NewError(alias.CodeInvalidInput, err.Error(), nil)
		}
	} else {
		var err error
		aliasName, err = p.askText(prompts.ShortAlias, func(input string) error {
			if err := notBlank("An alias is required.")(input); err != nil {
				return err
			}
			return aliasManagementService.ValidateName(input)
		})
		if err != nil {
			return err
		}
	}

	if !flags.yes {
		ok, err := p.confirm(fmt.Sprintf("%s (%s=%s)", prompts.Confirm, aliasName, fullCommand), true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, ui.WarningColor("Cancelled. Nothing was written."))
			return nil
		}
	}

	overwritten, err := aliasManagementService.AddAlias(aliasName, fullCommand)
	if err != nil {
		return fmt.Errorf("could not add alias '%s': %w", aliasName, err)
	}

	if overwritten {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Alias '%s' already existed and was overwritten.", aliasName)))
	}
	fmt.Fprintf(out, "%s %s\n", ui.SuccessColor("Saved:"), ui.AliasLine(alias.Alias{Name: aliasName, Command: fullCommand}))
	fmt.Fprintln(out, ui.SourceHint(aliasManagementService.ConfigPath()))
	return nil
}
