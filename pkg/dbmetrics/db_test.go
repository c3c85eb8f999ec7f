package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedQuery struct {
	operation string
	failed    bool
}

type fakeRecorder struct {
	mu      sync.Mutex
	queries []recordedQuery
	pools   int
}

func (r *fakeRecorder) RecordDBQuery(operation string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, recordedQuery{operation: operation, failed: err != nil})
}

func (r *fakeRecorder) SetDBPoolStats(_, _, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools++
}

func TestDB_RecordsQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := &fakeRecorder{}
	wrapped := Wrap(db, rec)

	mock.ExpectExec("UPDATE slots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id").WillReturnError(sql.ErrConnDone)

	_, err = wrapped.ExecContext(context.Background(), "UPDATE slots SET is_blocked = true")
	require.NoError(t, err)

	_, err = wrapped.QueryContext(context.Background(), "SELECT id FROM slots")
	require.Error(t, err)

	require.Len(t, rec.queries, 2)
	assert.Equal(t, recordedQuery{operation: "exec"}, rec.queries[0])
	assert.Equal(t, recordedQuery{operation: "query", failed: true}, rec.queries[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, wrapped, GetExecutor(ctx, wrapped))

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, wrapped))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectPoolStats_StopsOnSignal(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := &fakeRecorder{}
	wrapped := Wrap(db, rec)

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		wrapped.CollectPoolStats(time.Hour, stop)
		close(done)
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.GreaterOrEqual(t, rec.pools, 1)
}
