package postgres

import (
	"context"
	"database/sql"
	"testing"

	"confcentral/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success takes one seat",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(3))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("conf-1", "user-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO conference_registrations`).
					WithArgs("conf-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available - 1`).
					WithArgs("conf-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantErr: nil,
		},
		{
			name: "conference not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
					WithArgs("conf-1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "already registered",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(3))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("conf-1", "user-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name: "no seats available",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(0))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("conf-1", "user-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrNoSeatsAvailable,
		},
		{
			name: "seat update failure rolls back the registration",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(3))
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("conf-1", "user-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectExec(`INSERT INTO conference_registrations`).
					WithArgs("conf-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available - 1`).
					WithArgs("conf-1").
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Register(ctx, "conf-1", "user-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_Unregister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantRemoved bool
		wantErr     error
	}{
		{
			name: "removes registration and returns the seat",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(2))
				mock.ExpectExec(`DELETE FROM conference_registrations`).
					WithArgs("conf-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE conferences SET seats_available = seats_available \+ 1`).
					WithArgs("conf-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantRemoved: true,
		},
		{
			name: "not registered is a no-op, not an error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
					WithArgs("conf-1").
					WillReturnRows(sqlmock.NewRows([]string{"seats_available"}).AddRow(2))
				mock.ExpectExec(`DELETE FROM conference_registrations`).
					WithArgs("conf-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			wantRemoved: false,
		},
		{
			name: "conference not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT seats_available FROM conferences WHERE id = \$1 FOR UPDATE`).
					WithArgs("conf-1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			removed, err := repo.Unregister(ctx, "conf-1", "user-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRemoved, removed)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
