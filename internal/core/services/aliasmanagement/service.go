package aliasmanagement

import (
	"log/slog"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"github.com/lazyasf/lazyasf/internal/core/ports"
)

type service struct {
	store     ports.AliasStore
	validator *alias.Validator
	logger    *slog.Logger
}

// NewService creates a new alias management service.
// It panics if the store or the validator is nil.
func NewService(store ports.AliasStore, validator *alias.Validator, logger *slog.Logger) ports.AliasManagementService {
	if store == nil {
		panic("alias store cannot be nil")
	}
	if validator == nil {
		panic("validator cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{store: store, validator: validator, logger: logger}
}

// AddAlias validates the alias and writes it to the rc file.
// Store errors are returned unchanged so callers can inspect their code.
func (s *service) AddAlias(name, command string) (bool, error) {
	newAlias := alias.Alias{Name: name, Command: command}
	if err := s.validator.Validate(newAlias); err != nil {
		return false, err
	}
	overwritten, err := s.store.Upsert(newAlias)
	if err != nil {
		return false, err
	}
	s.logger.Debug("alias saved", "alias", name, "overwritten", overwritten)
	return overwritten, nil
}

// AddAliases validates the whole batch before the store is touched, so the
// single backup it takes covers every alias written.
func (s *service) AddAliases(aliases []alias.Alias) (int, error) {
	for _, a := range aliases {
		if err := s.validator.Validate(a); err != nil {
			return 0, err
		}
	}
	if len(aliases) == 0 {
		return 0, nil
	}
	overwritten, err := s.store.UpsertAll(aliases)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("alias batch saved", "count", len(aliases), "overwritten", overwritten)
	return overwritten, nil
}

// RemoveAlias deletes an alias from the rc file. Only emptiness is checked;
// names that were written by hand outside the allowed class can still be removed.
func (s *service) RemoveAlias(name string) (bool, error) {
	if name == "" {
		return false, alias.NewError(alias.CodeInvalidInput, "alias name cannot be empty", nil)
	}
	removed, err := s.store.Remove(name)
	if err != nil {
		return false, err
	}
	s.logger.Debug("alias remove finished", "alias", name, "removed", removed)
	return removed, nil
}

// ListAliases retrieves every alias currently defined in the rc file.
func (s *service) ListAliases() ([]alias.Alias, error) {
	return s.store.List()
}

func (s *service) ValidateName(name string) error {
	return s.validator.ValidateName(name)
}

func (s *service) BackupInfo() (ports.BackupInfo, error) {
	return s.store.Backup()
}

// RestoreBackup copies the last backup over the rc file.
func (s *service) RestoreBackup() error {
	if err := s.store.Restore(); err != nil {
		return err
	}
	s.logger.Debug("rc file restored from backup", "path", s.store.RcPath())
	return nil
}

func (s *service) ConfigPath() string {
	return s.store.RcPath()
}
