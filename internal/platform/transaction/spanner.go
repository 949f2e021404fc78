package transaction

import (
	"context"

	"cloud.google.com/go/spanner"
)

// SpannerScope implements Scope for Cloud Spanner read-write transactions.
type SpannerScope struct {
	client *spanner.Client
}

// NewSpannerScope creates a new Spanner-backed transaction scope.
// It should be called once per application startup in main.
func NewSpannerScope(client *spanner.Client) *SpannerScope {
	return &SpannerScope{client: client}
}

// Execute runs fn within a Spanner ReadWriteTransaction.
// The transaction is embedded in ctx for repositories to access via
// ReadWriteTxFromContext.
//
// IMPORTANT: Spanner may retry fn on Aborted errors. Therefore:
//   - fn must be idempotent
//   - fn must NOT perform external side effects (email, API calls, etc.)
//   - Any state (like TransactionalPublisher) should be created inside fn
func (s *SpannerScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := s.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		// Embed transaction in context for repositories
		ctx = WithReadWriteTx(ctx, txn)
		return fn(ctx)
	})
	return err
}

// SpannerReadOnlyScope implements Scope for Spanner read-only transactions.
// Use this when multiple queries need point-in-time consistency without writes.
type SpannerReadOnlyScope struct {
	client *spanner.Client
}

// NewSpannerReadOnlyScope creates a new Spanner-backed read-only scope.
func NewSpannerReadOnlyScope(client *spanner.Client) *SpannerReadOnlyScope {
	return &SpannerReadOnlyScope{client: client}
}

// Execute runs fn within a Spanner ReadOnlyTransaction.
// The transaction is closed automatically when Execute returns.
func (s *SpannerReadOnlyScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	txn := s.client.ReadOnlyTransaction()
	defer txn.Close()

	return fn(WithReadTx(ctx, txn))
}

// Compile-time interface checks.
var (
	_ Scope = (*SpannerScope)(nil)
	_ Scope = (*SpannerReadOnlyScope)(nil)
)
