package ports

import (
	"time"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
)

// BackupInfo describes the single-generation backup of the rc file.
type BackupInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

/*
AliasStore defines the interface for reading and rewriting alias lines in the
user's shell rc file. This is a driven port, implemented by a repository
adapter that owns the rc file and its backup.

Implementations reject blank names and commands with alias.ErrInvalidInput,
but do not check the name's character class. Callers that accept user input
validate names with an alias.Validator first.
*/
type AliasStore interface {
	/*
	   Upsert writes the alias line, replacing the first existing definition of
	   the same name or appending a new one. The rc file is backed up first.
	   It returns true if an existing definition was overwritten.
	*/
	Upsert(a alias.Alias) (bool, error)

	/*
	   UpsertAll applies Upsert for every alias in order, with a single read,
	   a single backup and a single write. Restoring the backup afterwards
	   undoes the whole batch. It returns how many existing definitions were
	   overwritten. Nothing is written if any alias is rejected.
	*/
	UpsertAll(aliases []alias.Alias) (int, error)

	/*
	   Remove deletes the first definition of name. It returns false, with no
	   backup and no write, if name is not defined.
	*/
	Remove(name string) (bool, error)

	// List returns every alias line in file order.
	List() ([]alias.Alias, error)

	// Backup reports the current backup file, or alias.ErrBackupMissing.
	Backup() (BackupInfo, error)

	// Restore copies the backup file back over the rc file.
	Restore() error

	// RcPath is the path of the managed rc file.
	RcPath() string
}
