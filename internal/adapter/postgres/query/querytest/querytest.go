// Package querytest builds query clients over pgxmock for repository tests.
package querytest

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
)

// NewMock returns a Client backed by a mock connection. Unmet expectations
// fail the test at cleanup.
func NewMock(t *testing.T, opts ...query.Option) (*query.Client, pgxmock.PgxConnIface) {
	t.Helper()

	mock, err := pgxmock.NewConn()
	if err != nil {
		t.Fatalf("querytest: pgxmock.NewConn: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("querytest: unmet expectations: %v", err)
		}
		mock.Close(context.Background())
	})

	return query.New(mock, opts...), mock
}
