package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	mockService "backoffice/internal/mocks/service"
	mockUsecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// driverNotifierFixtures holds all test dependencies for driver notifier tests.
type driverNotifierFixtures struct {
	notifier      *driverNotifier
	notifications *mockUsecase.MockDriverNotificationUsecase
	publisher     *mockService.MockEventPublisher
}

func createTestDriverNotifier(t *testing.T, cfg *config.NotificationConfig) driverNotifierFixtures {
	notifications := mockUsecase.NewMockDriverNotificationUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)

	return driverNotifierFixtures{
		notifier:      newDriverNotifier(notifications, publisher, cfg, newDiscardLogger()),
		notifications: notifications,
		publisher:     publisher,
	}
}

func TestDriverNotifier_StoresThenPublishes(t *testing.T) {
	fx := createTestDriverNotifier(t, newTestConfig().Notification)
	reference := "ORD-1"

	stored := &entity.DriverNotification{
		NotificationBase: entity.NotificationBase{ID: 21, Type: "order_assigned", Title: "New order assigned"},
		DriverID:         3,
		ReferenceID:      &reference,
	}

	fx.notifications.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(input *usecase.DriverNotificationInput) bool {
			return input.DriverID == 3 && *input.ReferenceID == "ORD-1"
		})).
		RunAndReturn(func(ctx context.Context, _ *usecase.DriverNotificationInput) (*entity.DriverNotification, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return stored, nil
		})

	published := make(chan *service.DriverNotificationEvent, 1)
	fx.publisher.EXPECT().
		PublishDriverNotification(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.DriverNotificationEvent) error {
			published <- event

			return nil
		})

	fx.notifier.Start()

	ctx := deliverycontext.WithRequest(context.Background(), "req-42", nil)
	fx.notifier.Notify(ctx, &usecase.DriverNotificationInput{DriverID: 3, Title: "New order assigned", ReferenceID: &reference})

	select {
	case event := <-published:
		assert.Equal(t, constants.EventTypeDriverNotification, event.EventType)
		assert.Equal(t, uint64(21), event.NotificationID)
		assert.Equal(t, uint64(3), event.DriverID)
		assert.Equal(t, "req-42", event.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}

	require.NoError(t, fx.notifier.Stop(context.Background()))
}

func TestDriverNotifier_FailuresAreSwallowed(t *testing.T) {
	fx := createTestDriverNotifier(t, newTestConfig().Notification)

	fx.notifications.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(input *usecase.DriverNotificationInput) bool { return input.DriverID == 1 })).
		Return(nil, errors.New("insert failed")).
		Once()
	fx.notifications.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(input *usecase.DriverNotificationInput) bool { return input.DriverID == 2 })).
		Return(&entity.DriverNotification{DriverID: 2}, nil).
		Once()
	fx.publisher.EXPECT().
		PublishDriverNotification(mock.Anything, mock.Anything).
		Return(errors.New("topic unavailable")).
		Once()

	fx.notifier.Start()
	fx.notifier.Notify(context.Background(), &usecase.DriverNotificationInput{DriverID: 1})
	fx.notifier.Notify(context.Background(), &usecase.DriverNotificationInput{DriverID: 2})

	// Stop drains the queue, so every expectation has run once it returns.
	require.NoError(t, fx.notifier.Stop(context.Background()))
}

func TestDriverNotifier_DropsWhenQueueFull(t *testing.T) {
	cfg := newTestConfig().Notification
	cfg.DispatchQueueSize = 1
	fx := createTestDriverNotifier(t, cfg)

	// Workers are not started, so the second job finds the queue full.
	fx.notifier.Notify(context.Background(), &usecase.DriverNotificationInput{DriverID: 1})
	fx.notifier.Notify(context.Background(), &usecase.DriverNotificationInput{DriverID: 2})
	assert.Len(t, fx.notifier.queue, 1)

	fx.notifications.EXPECT().Create(mock.Anything, mock.Anything).Return(&entity.DriverNotification{DriverID: 1}, nil).Once()
	fx.publisher.EXPECT().PublishDriverNotification(mock.Anything, mock.Anything).Return(nil).Once()

	fx.notifier.Start()
	require.NoError(t, fx.notifier.Stop(context.Background()))
}

func TestDriverNotifier_NotifyAfterStopIsDropped(t *testing.T) {
	fx := createTestDriverNotifier(t, newTestConfig().Notification)

	fx.notifier.Start()
	require.NoError(t, fx.notifier.Stop(context.Background()))

	assert.NotPanics(t, func() {
		fx.notifier.Notify(context.Background(), &usecase.DriverNotificationInput{DriverID: 1})
	})
}
