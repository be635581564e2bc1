package ports

import "github.com/lazyasf/lazyasf/internal/core/domain/alias"

// AliasManagementService defines the contract for managing shell aliases.
type AliasManagementService interface {
	// AddAlias validates and writes an alias to the rc file.
	// It returns true if an existing alias of the same name was overwritten.
	AddAlias(aliasName, aliasCommand string) (bool, error)

	// AddAliases validates every alias, then writes them all with a single
	// backup. Nothing is written if any alias is invalid. It returns how many
	// existing aliases were overwritten.
	AddAliases(aliases []alias.Alias) (int, error)

	// RemoveAlias deletes an alias. It returns false if the alias was not defined.
	RemoveAlias(aliasName string) (bool, error)

	// ListAliases retrieves all aliases from the rc file, in file order.
	ListAliases() ([]alias.Alias, error)

	// ValidateName checks a candidate alias name without touching the rc file.
	ValidateName(aliasName string) error

	// BackupInfo describes the last backup taken before a mutation.
	BackupInfo() (BackupInfo, error)

	// RestoreBackup replaces the rc file with its last backup.
	RestoreBackup() error

	// ConfigPath is the path of the rc file being managed.
	ConfigPath() string
}
