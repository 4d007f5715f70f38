package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blincar/blincar/internal/pkg/apperrors"
	"github.com/blincar/blincar/internal/pkg/models"
	"github.com/blincar/blincar/services/notifications/mocks"
)

func TestMarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo)

	notificationID := uuid.New()
	userID := uuid.New()

	mockRepo.EXPECT().MarkRead(gomock.Any(), notificationID, userID).Return(true, nil)
	assert.NoError(t, uc.MarkRead(context.Background(), notificationID, userID))

	mockRepo.EXPECT().MarkRead(gomock.Any(), notificationID, userID).Return(false, nil)
	assert.ErrorIs(t, uc.MarkRead(context.Background(), notificationID, userID), apperrors.ErrNotFound)
}

func TestMarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo)

	userID := uuid.New()
	mockRepo.EXPECT().MarkAllRead(gomock.Any(), userID).Return(3, nil)

	count, err := uc.MarkAllRead(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestList_ClampsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo)
	userID := uuid.New()

	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults applied", page: 0, limit: 0, wantLimit: 20, wantOffset: 0},
		{name: "oversized limit clamped", page: 1, limit: 500, wantLimit: 100, wantOffset: 0},
		{name: "offset from page", page: 3, limit: 10, wantLimit: 10, wantOffset: 20},
		{name: "negative page treated as first", page: -2, limit: 10, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				ListByUser(gomock.Any(), userID, tt.wantLimit, tt.wantOffset, false).
				Return([]*models.Notification{}, 0, nil)
			mockRepo.EXPECT().CountUnread(gomock.Any(), userID).Return(0, nil)

			page, err := uc.List(context.Background(), userID, tt.page, tt.limit, false)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}
}

func TestList_ReturnsUnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	uc := NewNotificationUC(mockRepo)
	userID := uuid.New()

	items := []*models.Notification{
		{ID: uuid.New(), UserID: userID, Type: models.NotificationTripAccepted},
	}
	mockRepo.EXPECT().ListByUser(gomock.Any(), userID, 20, 0, true).Return(items, 7, nil)
	mockRepo.EXPECT().CountUnread(gomock.Any(), userID).Return(7, nil)

	page, err := uc.List(context.Background(), userID, 1, 0, true)

	require.NoError(t, err)
	assert.Len(t, page.Notifications, 1)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 7, page.UnreadCount)
}
