package shellconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"github.com/lazyasf/lazyasf/internal/core/ports"
	"github.com/natefinch/atomic"
)

// FileAliasStore keeps alias lines in a shell rc file and takes a
// single-generation backup of that file before every mutation.
type FileAliasStore struct {
	rcPath     string
	backupPath string
	logger     *slog.Logger
}

// NewFileAliasStore creates a store for rcPath, backing it up to backupPath.
// A nil logger discards log output.
func NewFileAliasStore(rcPath, backupPath string, logger *slog.Logger) (ports.AliasStore, error) {
	if rcPath == "" {
		return nil, fmt.Errorf("rc file path cannot be empty")
	}
	if backupPath == "" {
		return nil, fmt.Errorf("backup file path cannot be empty")
	}
	if rcPath == backupPath {
		return nil, fmt.Errorf("backup path must differ from rc file path %s", rcPath)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileAliasStore{
		rcPath:     rcPath,
		backupPath: backupPath,
		logger:     logger,
	}, nil
}

// RcPath implements the ports.AliasStore interface.
func (s *FileAliasStore) RcPath() string {
	return s.rcPath
}

// Upsert implements the ports.AliasStore interface.
// Only the first existing definition of the name is replaced.
func (s *FileAliasStore) Upsert(a alias.Alias) (bool, error) {
	if err := checkAlias(a); err != nil {
		return false, err
	}
	content, err := s.read()
	if err != nil {
		return false, err
	}

	updated, overwritten := upsertAliasLine(content, a)
	s.logger.Debug("prepared alias line", "alias", a.Name, "overwrite", overwritten)

	if err := s.backup(content); err != nil {
		return false, err
	}
	if err := s.write(updated); err != nil {
		return false, err
	}
	return overwritten, nil
}

// UpsertAll implements the ports.AliasStore interface.
func (s *FileAliasStore) UpsertAll(aliases []alias.Alias) (int, error) {
	for _, a := range aliases {
		if err := checkAlias(a); err != nil {
			return 0, err
		}
	}
	content, err := s.read()
	if err != nil {
		return 0, err
	}

	updated := content
	overwrittenCount := 0
	for _, a := range aliases {
		var overwritten bool
		updated, overwritten = upsertAliasLine(updated, a)
		if overwritten {
			overwrittenCount++
		}
	}
	s.logger.Debug("prepared alias batch", "count", len(aliases), "overwritten", overwrittenCount)

	if err := s.backup(content); err != nil {
		return 0, err
	}
	if err := s.write(updated); err != nil {
		return 0, err
	}
	return overwrittenCount, nil
}

// Remove implements the ports.AliasStore interface.
// The matched line is emptied, not collapsed, so a blank line remains.
func (s *FileAliasStore) Remove(name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, alias.NewError(alias.CodeInvalidInput, "alias name cannot be empty", nil)
	}
	content, err := s.read()
	if err != nil {
		return false, err
	}

	updated, found := removeAliasLine(content, name)
	if !found {
		s.logger.Debug("alias not defined, nothing to remove", "alias", name)
		return false, nil
	}

	if err := s.backup(content); err != nil {
		return false, err
	}
	if err := s.write(updated); err != nil {
		return false, err
	}
	return true, nil
}

// List implements the ports.AliasStore interface.
func (s *FileAliasStore) List() ([]alias.Alias, error) {
	content, err := s.read()
	if err != nil {
		return nil, err
	}
	aliases := parseAliasLines(content)
	s.logger.Debug("listed aliases", "count", len(aliases))
	return aliases, nil
}

// Backup implements the ports.AliasStore interface.
func (s *FileAliasStore) Backup() (ports.BackupInfo, error) {
	info, err := os.Stat(s.backupPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ports.BackupInfo{}, alias.NewError(alias.CodeBackupMissing,
				fmt.Sprintf("no backup found at %s", toUserFriendlyPath(s.backupPath)), nil)
		}
		return ports.BackupInfo{}, alias.NewError(alias.CodeReadError,
			fmt.Sprintf("failed to inspect backup %s", toUserFriendlyPath(s.backupPath)), err)
	}
	return ports.BackupInfo{
		Path:    s.backupPath,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Restore implements the ports.AliasStore interface.
// The backup itself is left in place.
func (s *FileAliasStore) Restore() error {
	data, err := os.ReadFile(s.backupPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return alias.NewError(alias.CodeBackupMissing,
				fmt.Sprintf("no backup found at %s", toUserFriendlyPath(s.backupPath)), nil)
		}
		return alias.NewError(alias.CodeReadError,
			fmt.Sprintf("failed to read backup %s", toUserFriendlyPath(s.backupPath)), err)
	}
	return s.write(string(data))
}

func (s *FileAliasStore) read() (string, error) {
	data, err := os.ReadFile(s.rcPath)
	if err != nil {
		return "", alias.NewError(alias.CodeReadError,
			fmt.Sprintf("failed to read %s", toUserFriendlyPath(s.rcPath)), err)
	}
	s.logger.Debug("read rc file", "path", s.rcPath, "bytes", len(data))
	return string(data), nil
}

// backup stores the pre-mutation content. It must succeed before write is attempted.
func (s *FileAliasStore) backup(content string) error {
	if err := atomic.WriteFile(s.backupPath, strings.NewReader(content)); err != nil {
		return alias.NewError(alias.CodeBackupError,
			fmt.Sprintf("failed to save backup to %s", toUserFriendlyPath(s.backupPath)), err)
	}
	s.logger.Debug("saved backup", "path", s.backupPath)
	return nil
}

func (s *FileAliasStore) write(content string) error {
	target := resolveWriteTarget(s.rcPath)
	if err := atomic.WriteFile(target, strings.NewReader(content)); err != nil {
		return alias.NewError(alias.CodeWriteError,
			fmt.Sprintf("failed to write %s", toUserFriendlyPath(s.rcPath)), err)
	}
	s.logger.Debug("wrote rc file", "path", target, "bytes", len(content))
	return nil
}
