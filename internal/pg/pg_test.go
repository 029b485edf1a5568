package pg

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	assert.False(t, InTx(ctx))

	mock.ExpectBegin()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, InTx(txCtx))
	got, ok := txFromContext(txCtx)
	assert.True(t, ok)
	assert.Equal(t, tx, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}
