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

func setupNotificationRepoTest(t *testing.T) (*NotificationRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewNotificationRepository(&models.Config{}, sqlxDB)
	return repo, mock, func() { sqlxDB.Close() }
}

func TestCreateNotification(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	n := &models.Notification{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      models.NotificationTripAccepted,
		Title:     "Trip accepted",
		Body:      "Your driver is on the way",
		TripID:    uuid.NullUUID{UUID: uuid.New(), Valid: true},
		Data:      models.NotificationData{"trip_id": uuid.New().String()},
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("^INSERT INTO notifications").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateNotification(context.Background(), n)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPushSent(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	notificationID := uuid.New()
	mock.ExpectExec("^UPDATE notifications SET is_push_sent = TRUE").
		WithArgs(notificationID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkPushSent(context.Background(), notificationID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead(t *testing.T) {
	notificationID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, found bool, err error)
	}{
		{
			name: "owned record marked",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE notifications SET is_read = TRUE").
					WithArgs(notificationID, userID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, found bool, err error) {
				assert.NoError(t, err)
				assert.True(t, found)
			},
		},
		{
			name: "record owned by someone else",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE notifications SET is_read = TRUE").
					WithArgs(notificationID, userID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, found bool, err error) {
				assert.NoError(t, err)
				assert.False(t, found)
			},
		},
		{
			name: "storage unavailable",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE notifications SET is_read = TRUE").
					WithArgs(notificationID, userID).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, found bool, err error) {
				assert.False(t, found)
				assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupNotificationRepoTest(t)
			defer cleanup()

			tt.mockSetup(mock)
			found, err := repo.MarkRead(context.Background(), notificationID, userID)
			tt.assertFunc(t, found, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("^UPDATE notifications SET is_read = TRUE WHERE user_id").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 4))

	count, err := repo.MarkAllRead(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	notificationID := uuid.New()

	mock.ExpectQuery("^SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE user_id").
		WithArgs(userID, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "type", "title", "body", "trip_id", "data",
			"is_read", "is_push_sent", "push_sent_at", "created_at",
		}).AddRow(
			notificationID.String(), userID.String(), "trip_accepted",
			"Trip accepted", "Your driver is on the way", nil, nil,
			false, true, time.Now(), time.Now(),
		))

	items, total, err := repo.ListByUser(context.Background(), userID, 10, 0, false)

	assert.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, items, 1)
	assert.Equal(t, notificationID, items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_UnreadOnlyFilter(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectQuery("^SELECT COUNT(.+) AND is_read = FALSE").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("^SELECT (.+) AND is_read = FALSE").
		WithArgs(userID, 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "type", "title", "body", "trip_id", "data",
			"is_read", "is_push_sent", "push_sent_at", "created_at",
		}))

	items, total, err := repo.ListByUser(context.Background(), userID, 20, 0, true)

	assert.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnread(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery("^SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUnread(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
