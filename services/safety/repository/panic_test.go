package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/models"
)

func setupPanicRepoTest(t *testing.T) (*PanicRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewPanicRepository(&models.Config{}, sqlxDB)
	return repo, mock, func() { sqlxDB.Close() }
}

func newAlert() *models.PanicAlert {
	return &models.PanicAlert{
		ID:        uuid.New(),
		TripID:    uuid.New(),
		UserID:    uuid.New(),
		AlertType: models.PanicTypeVolumeButton,
		CreatedAt: time.Now(),
	}
}

func TestCreatePanicAlert_InsertAndCounterCommitTogether(t *testing.T) {
	repo, mock, cleanup := setupPanicRepoTest(t)
	defer cleanup()

	alert := newAlert()

	mock.ExpectBegin()
	mock.ExpectExec("^INSERT INTO panic_alerts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE trips SET panic_alert_count = panic_alert_count \\+ 1").
		WithArgs(alert.TripID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreatePanicAlert(context.Background(), alert)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePanicAlert_CounterFailureRollsBackInsert(t *testing.T) {
	repo, mock, cleanup := setupPanicRepoTest(t)
	defer cleanup()

	alert := newAlert()

	mock.ExpectBegin()
	mock.ExpectExec("^INSERT INTO panic_alerts").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE trips SET panic_alert_count").
		WithArgs(alert.TripID).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err := repo.CreatePanicAlert(context.Background(), alert)

	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolvePanicAlert(t *testing.T) {
	alertID := uuid.New()
	adminID := uuid.New()

	tests := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, applied bool, err error)
	}{
		{
			name: "open alert resolved",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE panic_alerts SET is_resolved = TRUE").
					WithArgs(adminID, "rider confirmed safe", alertID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, applied bool, err error) {
				assert.NoError(t, err)
				assert.True(t, applied)
			},
		},
		{
			name: "already resolved",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE panic_alerts SET is_resolved = TRUE").
					WithArgs(adminID, "rider confirmed safe", alertID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, applied bool, err error) {
				assert.NoError(t, err)
				assert.False(t, applied)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupPanicRepoTest(t)
			defer cleanup()

			tt.mockSetup(mock)
			applied, err := repo.ResolvePanicAlert(context.Background(), alertID, adminID, "rider confirmed safe")
			tt.assertFunc(t, applied, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListActive(t *testing.T) {
	repo, mock, cleanup := setupPanicRepoTest(t)
	defer cleanup()

	alertID := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM panic_alerts WHERE is_resolved = FALSE").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "trip_id", "user_id", "alert_type", "location", "is_resolved",
			"resolved_by", "resolved_at", "admin_notes", "emergency_contact_notified", "created_at",
		}).AddRow(
			alertID.String(), uuid.New().String(), uuid.New().String(),
			"volume_button", nil, false,
			nil, nil, nil, false, time.Now(),
		))

	alerts, err := repo.ListActive(context.Background())

	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, alertID, alerts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
