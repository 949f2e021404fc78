package transaction

import (
	"context"

	"cloud.google.com/go/spanner"
)

// ReadTransaction is the read surface shared by Spanner read-only and
// read-write transactions. Repositories accept it so reads work inside
// either kind of transaction.
type ReadTransaction interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Read(ctx context.Context, table string, keys spanner.KeySet, columns []string) *spanner.RowIterator
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// rwKey is the context key for storing read-write transactions.
type rwKey struct{}

// roKey is the context key for storing read transactions.
type roKey struct{}

// WithReadWriteTx embeds a Spanner ReadWriteTransaction in the context.
func WithReadWriteTx(ctx context.Context, txn *spanner.ReadWriteTransaction) context.Context {
	return context.WithValue(ctx, rwKey{}, txn)
}

// ReadWriteTxFromContext extracts a Spanner ReadWriteTransaction from context.
// Returns (nil, false) if no transaction is present.
func ReadWriteTxFromContext(ctx context.Context) (*spanner.ReadWriteTransaction, bool) {
	txn, ok := ctx.Value(rwKey{}).(*spanner.ReadWriteTransaction)
	return txn, ok
}

// WithReadTx embeds a read transaction in the context.
func WithReadTx(ctx context.Context, txn ReadTransaction) context.Context {
	return context.WithValue(ctx, roKey{}, txn)
}

// ReadTxFromContext extracts a read transaction from context. A read-write
// transaction embedded via WithReadWriteTx also satisfies reads.
func ReadTxFromContext(ctx context.Context) (ReadTransaction, bool) {
	if txn, ok := ctx.Value(rwKey{}).(*spanner.ReadWriteTransaction); ok {
		return txn, true
	}
	txn, ok := ctx.Value(roKey{}).(ReadTransaction)
	return txn, ok
}
