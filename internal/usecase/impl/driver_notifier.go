package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"go.uber.org/fx"
)

// notifyJob is one queued notification. scope carries the request id and logger of the
// enqueuing request, without its cancellation, so the background work can be traced back to it.
type notifyJob struct {
	input  usecase.DriverNotificationInput
	scope  context.Context
	logger *slog.Logger
}

// driverNotifier creates driver notifications on a bounded pool of workers and then
// publishes them. Failures never reach the caller.
type driverNotifier struct {
	notifications  usecase.DriverNotificationUsecase
	publisher      service.EventPublisher
	logger         *slog.Logger
	workers        int
	storeTimeout   time.Duration
	publishTimeout time.Duration

	queue chan notifyJob
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// DriverNotifierParams holds dependencies for the notifier, injected by Fx
type DriverNotifierParams struct {
	fx.In

	Lc            fx.Lifecycle
	Config        *config.Config
	Logger        *slog.Logger
	Notifications usecase.DriverNotificationUsecase
	Publisher     service.EventPublisher
}

// NewDriverNotifier creates the notifier and ties its workers to the Fx lifecycle.
func NewDriverNotifier(params DriverNotifierParams) usecase.DriverNotifier {
	notifier := newDriverNotifier(params.Notifications, params.Publisher, params.Config.Notification, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			notifier.Start()

			return nil
		},
		OnStop: notifier.Stop,
	})

	return notifier
}

func newDriverNotifier(
	notifications usecase.DriverNotificationUsecase,
	publisher service.EventPublisher,
	cfg *config.NotificationConfig,
	logger *slog.Logger,
) *driverNotifier {
	return &driverNotifier{
		notifications:  notifications,
		publisher:      publisher,
		logger:         logger,
		workers:        cfg.DispatchWorkers,
		storeTimeout:   cfg.DispatchTimeout,
		publishTimeout: cfg.PublishTimeout,
		queue:          make(chan notifyJob, cfg.DispatchQueueSize),
	}
}

// Start launches the workers.
func (n *driverNotifier) Start() {
	for range n.workers {
		n.wg.Add(1)
		go n.work()
	}

	n.logger.Info("Driver notifier started",
		slog.Int("workers", n.workers),
		slog.Int("queue_size", cap(n.queue)),
	)
}

// Stop closes the queue and waits for queued jobs to finish, or for ctx to expire.
func (n *driverNotifier) Stop(ctx context.Context) error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.logger.Info("Driver notifier stopped")

		return nil
	case <-ctx.Done():
		n.logger.Warn("Driver notifier stopped before the queue drained", slog.Int("pending", len(n.queue)))

		return ctx.Err()
	}
}

// Notify enqueues the notification and returns immediately. A full or closed queue
// drops it with a log line.
func (n *driverNotifier) Notify(ctx context.Context, input *usecase.DriverNotificationInput) {
	logger := deliverycontext.LoggerFrom(ctx, n.logger)
	job := notifyJob{
		input:  *input,
		scope:  deliverycontext.Detach(ctx),
		logger: logger,
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		logger.Warn("Driver notifier closed, dropping notification", slog.Uint64("driver_id", input.DriverID))

		return
	}

	select {
	case n.queue <- job:
	default:
		logger.Warn("Driver notification queue full, dropping notification",
			slog.Uint64("driver_id", input.DriverID),
			slog.Int("queue_size", cap(n.queue)),
		)
	}
}

func (n *driverNotifier) work() {
	defer n.wg.Done()

	for job := range n.queue {
		n.process(job)
	}
}

// process stores the notification, then publishes it. Each step has its own deadline
// and is detached from the request that enqueued it.
func (n *driverNotifier) process(job notifyJob) {
	ctx := job.scope

	storeCtx, cancel := context.WithTimeout(ctx, n.storeTimeout)
	notification, err := n.notifications.Create(storeCtx, &job.input)
	cancel()
	if err != nil {
		job.logger.Error("Failed to create driver notification",
			slog.Uint64("driver_id", job.input.DriverID),
			slog.Any("error", err),
		)

		return
	}

	event := &service.DriverNotificationEvent{
		RequestID:      deliverycontext.RequestIDFrom(ctx),
		EventType:      constants.EventTypeDriverNotification,
		NotificationID: notification.ID,
		DriverID:       notification.DriverID,
		Type:           notification.Type,
		Title:          notification.Title,
		Message:        notification.Message,
		ReferenceID:    notification.ReferenceID,
		CreatedAt:      notification.CreatedAt,
	}

	publishCtx, cancel := context.WithTimeout(ctx, n.publishTimeout)
	defer cancel()

	if err := n.publisher.PublishDriverNotification(publishCtx, event); err != nil {
		job.logger.Warn("Failed to publish driver notification event",
			slog.Uint64("notification_id", notification.ID),
			slog.Uint64("driver_id", notification.DriverID),
			slog.Any("error", err),
		)

		return
	}

	job.logger.Debug("Driver notification dispatched",
		slog.Uint64("notification_id", notification.ID),
		slog.Uint64("driver_id", notification.DriverID),
	)
}
