package testutil

import (
	"errors"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"github.com/lazyasf/lazyasf/internal/core/ports"
)

// MockAliasStore is a mock implementation of ports.AliasStore for testing.
type MockAliasStore struct {
	UpsertFunc    func(a alias.Alias) (bool, error)
	UpsertAllFunc func(aliases []alias.Alias) (int, error)
	RemoveFunc    func(name string) (bool, error)
	ListFunc      func() ([]alias.Alias, error)
	BackupFunc    func() (ports.BackupInfo, error)
	RestoreFunc   func() error
	Path          string
}

func (m *MockAliasStore) Upsert(a alias.Alias) (bool, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(a)
	}
	return false, errors.New("MockAliasStore: UpsertFunc not implemented")
}

func (m *MockAliasStore) UpsertAll(aliases []alias.Alias) (int, error) {
	if m.UpsertAllFunc != nil {
		return m.UpsertAllFunc(aliases)
	}
	return 0, errors.New("MockAliasStore: UpsertAllFunc not implemented")
}

func (m *MockAliasStore) Remove(name string) (bool, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(name)
	}
	return false, errors.New("MockAliasStore: RemoveFunc not implemented")
}

func (m *MockAliasStore) List() ([]alias.Alias, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, errors.New("MockAliasStore: ListFunc not implemented")
}

func (m *MockAliasStore) Backup() (ports.BackupInfo, error) {
	if m.BackupFunc != nil {
		return m.BackupFunc()
	}
	return ports.BackupInfo{}, errors.New("MockAliasStore: BackupFunc not implemented")
}

func (m *MockAliasStore) Restore() error {
	if m.RestoreFunc != nil {
		return m.RestoreFunc()
	}
	return errors.New("MockAliasStore: RestoreFunc not implemented")
}

func (m *MockAliasStore) RcPath() string {
	return m.Path
}
