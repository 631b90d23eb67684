package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSequenceRepo_NextAndAdvance(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expected      int64
		expectedError bool
	}{
		{
			name:     "first allocation",
			mockRows: sqlmock.NewRows([]string{"?column?"}).AddRow(1),
			expected: 1,
		},
		{
			name:     "existing counter",
			mockRows: sqlmock.NewRows([]string{"?column?"}).AddRow(57),
			expected: 57,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("serialization failure"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSequenceRepo(db)

			if tt.mockError != nil {
				mock.ExpectQuery("INSERT INTO question_sequence").WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery("INSERT INTO question_sequence").WillReturnRows(tt.mockRows)
			}

			n, err := repo.NextAndAdvance(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Zero(t, n)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, n)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSequenceRepo_Current(t *testing.T) {
	tests := []struct {
		name      string
		mockRows  *sqlmock.Rows
		mockError error
		expected  int64
	}{
		{
			name:     "stored value",
			mockRows: sqlmock.NewRows([]string{"next_value"}).AddRow(12),
			expected: 12,
		},
		{
			name:      "unset counter starts at one",
			mockError: sql.ErrNoRows,
			expected:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSequenceRepo(db)

			query := "SELECT next_value FROM question_sequence WHERE id = 1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			n, err := repo.Current(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, n)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
