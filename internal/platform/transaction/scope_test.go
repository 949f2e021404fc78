package transaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
)

type mockScope struct {
	executeFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.executeFn(ctx, fn)
}

func TestExecuteWithResult_Success(t *testing.T) {
	scope := &mockScope{
		executeFn: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}

	result, err := transaction.ExecuteWithResult(context.Background(), scope, func(ctx context.Context) (string, error) {
		return "success", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "success" {
		t.Errorf("expected 'success', got %q", result)
	}
}

func TestExecuteWithResult_FnError(t *testing.T) {
	scope := &mockScope{
		executeFn: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}

	errFn := errors.New("fn error")
	result, err := transaction.ExecuteWithResult(context.Background(), scope, func(ctx context.Context) (string, error) {
		return "", errFn
	})

	if !errors.Is(err, errFn) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if result != "" {
		t.Errorf("expected zero value result, got %q", result)
	}
}

func TestExecuteWithResult_ScopeError(t *testing.T) {
	errScope := errors.New("commit failed")
	scope := &mockScope{
		executeFn: func(ctx context.Context, fn func(ctx context.Context) error) error {
			if err := fn(ctx); err != nil {
				return err
			}
			return errScope
		},
	}

	result, err := transaction.ExecuteWithResult(context.Background(), scope, func(ctx context.Context) (int, error) {
		return 42, nil
	})

	if !errors.Is(err, errScope) {
		t.Fatalf("expected scope error, got %v", err)
	}
	// The result is still populated; callers must check err first.
	if result != 42 {
		t.Errorf("expected 42, got %d", result)
	}
}
