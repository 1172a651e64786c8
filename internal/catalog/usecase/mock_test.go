package usecase

import (
	"context"

	"wardrobe-catalog/internal/catalog/repository"
	"wardrobe-catalog/pkg/catalogquery"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepo struct {
	wardrobe []catalogquery.Record
	listings []catalogquery.Record
	err      error

	lastOpt     repository.ListOptions
	invalidated []string
}

func (m *mockRepo) ListWardrobeItems(ctx context.Context, opt repository.ListOptions) ([]catalogquery.Record, error) {
	m.lastOpt = opt
	if m.err != nil {
		return nil, m.err
	}
	return m.wardrobe, nil
}

func (m *mockRepo) ListListings(ctx context.Context, opt repository.ListOptions) ([]catalogquery.Record, error) {
	m.lastOpt = opt
	if m.err != nil {
		return nil, m.err
	}
	return m.listings, nil
}

func (m *mockRepo) Invalidate(ctx context.Context, opt repository.ListOptions) {
	m.invalidated = append(m.invalidated, opt.Token)
}
