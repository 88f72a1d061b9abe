package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/internal/repository/testutil"
)

func TestSharingRepository_CreateToken(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewSharingRepository(db)
	token := "tok123"

	// Test case 1: Requester owns the project
	mock.ExpectExec(`INSERT INTO tokens`).
		WithArgs(token, int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateToken(context.Background(), 3, 7, token)
	require.NoError(t, err)

	// Test case 2: Project missing or owned by someone else
	mock.ExpectExec(`INSERT INTO tokens`).
		WithArgs(token, int64(3), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.CreateToken(context.Background(), 3, 8, token)
	require.Error(t, err)
	var notFound *domain.ErrProjectNotFound
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(3), notFound.ProjectID)

	// Test case 3: Database error
	mock.ExpectExec(`INSERT INTO tokens`).
		WithArgs(token, int64(3), int64(7)).
		WillReturnError(errors.New("database error"))

	err = repo.CreateToken(context.Background(), 3, 7, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSharingRepository_Redeem(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewSharingRepository(db)

	// Test case 1: Token redeemed, grant recorded
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT project_id FROM tokens WHERE token = \$1`).
		WithArgs("tok123").
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}).AddRow(int64(3)))
	mock.ExpectExec(`INSERT INTO sharing \(friend_id, project_id\)`).
		WithArgs(int64(9), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Redeem(context.Background(), "tok123", 9)
	require.NoError(t, err)

	// Test case 2: Unknown token
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT project_id FROM tokens WHERE token = \$1`).
		WithArgs("bogus").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err = repo.Redeem(context.Background(), "bogus", 9)
	require.Error(t, err)
	var notFound *domain.ErrShareTokenNotFound
	assert.ErrorAs(t, err, &notFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
