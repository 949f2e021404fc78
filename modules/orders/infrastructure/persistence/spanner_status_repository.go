package persistence

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
)

// SpannerStatusRepository reads the seeded status catalog.
type SpannerStatusRepository struct {
	client *spanner.Client
}

func NewSpannerStatusRepository(client *spanner.Client) *SpannerStatusRepository {
	return &SpannerStatusRepository{client: client}
}

func (r *SpannerStatusRepository) ListStatuses(ctx context.Context) ([]domain.StatusDefinition, error) {
	stmt := spanner.Statement{
		SQL: `SELECT StatusID, Name, CompNo FROM StatusDefinitions ORDER BY CompNo`,
	}

	var iter *spanner.RowIterator
	if reader, ok := transaction.ReadTxFromContext(ctx); ok {
		iter = reader.Query(ctx, stmt)
	} else {
		iter = r.client.Single().Query(ctx, stmt)
	}
	defer iter.Stop()

	var catalog []domain.StatusDefinition
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate statuses: %w", err)
		}

		var id, ordinal int64
		var name string
		if err := row.Columns(&id, &name, &ordinal); err != nil {
			return nil, fmt.Errorf("failed to scan status: %w", err)
		}
		catalog = append(catalog, domain.StatusDefinition{
			ID:      id,
			Name:    name,
			Ordinal: int(ordinal),
		})
	}
	return catalog, nil
}
