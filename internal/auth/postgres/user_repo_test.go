// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordfall/wordfall/internal/auth"
	"github.com/wordfall/wordfall/pkg/errutil"
)

func TestUserRepository_Create(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantID    int64
		wantErr   bool
		errCode   string
		errIs     error
	}{
		{
			name: "creates user and returns assigned id",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
					AddRow(int64(1), "player", "hashed", createdAt)
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("player", "hashed").
					WillReturnRows(rows)
			},
			wantID: 1,
		},
		{
			name: "maps unique violation to duplicate username",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("player", "hashed").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: true,
			errCode: "USER_DUPLICATE",
			errIs:   auth.ErrDuplicateUsername,
		},
		{
			name: "wraps other database errors",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("player", "hashed").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
			errCode: "USER_CREATE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository(mock)
			user, err := repo.Create(context.Background(), "player", "hashed")

			if tt.wantErr {
				require.Error(t, err)
				errutil.AssertErrorCode(t, err, tt.errCode)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, user.ID)
				assert.Equal(t, "player", user.Username)
				assert.Equal(t, createdAt, user.CreatedAt)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   bool
		errCode   string
		errIs     error
	}{
		{
			name: "returns user",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
					AddRow(int64(7), "player", "hashed", createdAt)
				mock.ExpectQuery(`SELECT id, username, password_hash, created_at`).
					WithArgs(int64(7)).
					WillReturnRows(rows)
			},
		},
		{
			name: "missing user maps to not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, username, password_hash, created_at`).
					WithArgs(int64(7)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: true,
			errCode: "USER_NOT_FOUND",
			errIs:   auth.ErrNotFound,
		},
		{
			name: "wraps database errors",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, username, password_hash, created_at`).
					WithArgs(int64(7)).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
			errCode: "USER_GET_BY_ID_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository(mock)
			user, err := repo.GetByID(context.Background(), 7)

			if tt.wantErr {
				require.Error(t, err)
				errutil.AssertErrorCode(t, err, tt.errCode)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				assert.EqualValues(t, 7, user.ID)
				assert.Equal(t, "player", user.Username)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("matches exact username", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(int64(7), "Player", "hashed", createdAt)
		mock.ExpectQuery(`SELECT id, username, password_hash, created_at`).
			WithArgs("Player").
			WillReturnRows(rows)

		repo := NewUserRepository(mock)
		user, err := repo.GetByUsername(context.Background(), "Player")
		require.NoError(t, err)
		assert.Equal(t, "Player", user.Username)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, username, password_hash, created_at`).
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		repo := NewUserRepository(mock)
		_, err = repo.GetByUsername(context.Background(), "ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
