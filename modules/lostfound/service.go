package lostfound

import (
	"context"
	"log/slog"

	"github.com/foundlab/lostfound/pkg/logger"
	"github.com/foundlab/lostfound/pkg/lostitem"
	"github.com/foundlab/lostfound/pkg/notify"
	"github.com/foundlab/lostfound/pkg/receivers"
)

// Service orchestrates the lost item lifecycle: it performs the store
// mutation first, then triggers an advisory notification whose outcome is
// discarded by contract. A dispatch failure never rolls back or blocks the
// mutation; a persistence failure always propagates and suppresses the
// notification.
type Service struct {
	items     lostitem.Store
	receivers receivers.Store
	notifier  *notify.Dispatcher
	log       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the Service.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService wires the orchestrator. The dispatcher is constructed and owned
// by the caller so the transport stays swappable in tests.
func NewService(items lostitem.Store, recv receivers.Store, notifier *notify.Dispatcher, opts ...ServiceOption) *Service {
	s := &Service{
		items:     items,
		receivers: recv,
		notifier:  notifier,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReportItem persists a new lost item and notifies current receivers that it
// was created. The returned id is valid even when notification delivery
// fails.
func (s *Service) ReportItem(ctx context.Context, description string, contact, imageRef *string) (string, error) {
	id, err := s.items.Create(ctx, description, contact, imageRef)
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "lost item reported", logger.ItemID(id))

	s.notifyReceivers(ctx, notify.ActionCreated, notify.SnapshotOf(lostitem.LostItem{
		Description: description,
		Contact:     contact,
		ImageRef:    imageRef,
		Status:      lostitem.StatusUnclaimed,
	}))
	return id, nil
}

// EditItem overwrites the item's description, contact, and image reference,
// then notifies current receivers. The notification snapshot carries the
// just-written field values together with the status in effect before the
// call, since editing fields never changes status.
func (s *Service) EditItem(ctx context.Context, id, description string, contact, imageRef *string) error {
	current, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.items.UpdateFields(ctx, id, description, contact, imageRef); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "lost item updated", logger.ItemID(id))

	// The fetched record keeps its pre-update status; only the fields just
	// written are overlaid before the snapshot is taken.
	current.Description = description
	current.Contact = contact
	current.ImageRef = imageRef
	s.notifyReceivers(ctx, notify.ActionUpdated, notify.SnapshotOf(*current))
	return nil
}

// ToggleStatus flips the item between unclaimed and claimed. Status changes
// are internal housekeeping and do not notify receivers.
func (s *Service) ToggleStatus(ctx context.Context, id string, status lostitem.Status) error {
	if err := s.items.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "lost item status changed",
		logger.ItemID(id),
		slog.String("status", status.String()),
	)
	return nil
}

// ListItems returns items newest-first, optionally filtered by status.
func (s *Service) ListItems(ctx context.Context, statusFilter *lostitem.Status) ([]lostitem.LostItem, error) {
	return s.items.List(ctx, statusFilter)
}

// GetItem returns a single item by id.
func (s *Service) GetItem(ctx context.Context, id string) (*lostitem.LostItem, error) {
	return s.items.GetByID(ctx, id)
}

// ListReceivers returns the current notification receiver set.
func (s *Service) ListReceivers(ctx context.Context) ([]string, error) {
	return s.receivers.List(ctx)
}

// AddReceiver subscribes an email address to notifications.
func (s *Service) AddReceiver(ctx context.Context, email string) error {
	return s.receivers.Add(ctx, email)
}

// RemoveReceiver unsubscribes an email address.
func (s *Service) RemoveReceiver(ctx context.Context, email string) error {
	return s.receivers.Remove(ctx, email)
}

// notifyReceivers reads the receiver set and hands the event to the
// dispatcher. The read is point-in-time, not transactionally tied to the
// item mutation; a read failure is logged and treated as no receivers.
func (s *Service) notifyReceivers(ctx context.Context, action notify.Action, snapshot notify.Snapshot) {
	recipients, err := s.receivers.List(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "failed to load receivers, notification skipped",
			logger.Action(action),
			logger.Error(err),
		)
		return
	}
	s.notifier.Notify(ctx, action, snapshot, recipients)
}
