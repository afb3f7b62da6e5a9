package notify_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foundlab/lostfound/pkg/logger"
	"github.com/foundlab/lostfound/pkg/lostitem"
	"github.com/foundlab/lostfound/pkg/mailer"
	"github.com/foundlab/lostfound/pkg/notify"
)

// mockSender is a testify mock of the mail transport.
type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params mailer.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

// slowSender blocks until its context is done and reports the error.
type slowSender struct {
	sendErr error
}

func (s *slowSender) SendEmail(ctx context.Context, params mailer.SendEmailParams) error {
	<-ctx.Done()
	s.sendErr = ctx.Err()
	return ctx.Err()
}

func TestDispatch_SendsToAllRecipients(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	dispatcher := notify.NewDispatcher(sender)

	msg := notify.Compose(notify.ActionCreated, notify.Snapshot{
		Description: "Black wallet",
		Status:      lostitem.StatusUnclaimed,
	})
	recipients := []string{"a@example.com", "b@example.com"}

	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p mailer.SendEmailParams) bool {
		return len(p.SendTo) == 2 && p.Subject == msg.Subject && p.BodyHTML == msg.BodyHTML
	})).Return(nil).Once()

	dispatcher.Dispatch(context.Background(), recipients, msg)
	sender.AssertExpectations(t)
}

func TestDispatch_SuccessLogCarriesEventTag(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	sender.On("SendEmail", mock.Anything, mock.Anything).Return(nil).Once()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("test"), logger.WithOutput(&buf))
	dispatcher := notify.NewDispatcher(sender, notify.WithLogger(log))

	msg := notify.Compose(notify.ActionCreated, notify.Snapshot{
		Description: "Black wallet",
		Status:      lostitem.StatusUnclaimed,
	})
	dispatcher.Dispatch(context.Background(), []string{"a@example.com"}, msg)

	assert.Contains(t, buf.String(), "notification sent")
	assert.Contains(t, buf.String(), "lost-item-created")
}

func TestDispatch_EmptyRecipientsIsNoOp(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("test"), logger.WithOutput(&buf))
	dispatcher := notify.NewDispatcher(sender, notify.WithLogger(log))

	dispatcher.Dispatch(context.Background(), nil,
		notify.Compose(notify.ActionCreated, notify.Snapshot{Description: "x", Status: lostitem.StatusUnclaimed}))

	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	assert.Contains(t, buf.String(), "skipping notification")
}

func TestDispatch_NilSenderIsLoggedNoOp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("test"), logger.WithOutput(&buf))
	dispatcher := notify.NewDispatcher(nil, notify.WithLogger(log))

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), []string{"a@example.com"},
			notify.Compose(notify.ActionCreated, notify.Snapshot{Description: "x", Status: lostitem.StatusUnclaimed}))
	})
	assert.Contains(t, buf.String(), "transport unavailable")
}

func TestDispatch_TransportFailureIsAbsorbed(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	sender.On("SendEmail", mock.Anything, mock.Anything).Return(mailer.ErrFailedToSend).Once()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("test"), logger.WithOutput(&buf))
	dispatcher := notify.NewDispatcher(sender, notify.WithLogger(log))

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), []string{"a@example.com"},
			notify.Compose(notify.ActionCreated, notify.Snapshot{Description: "x", Status: lostitem.StatusUnclaimed}))
	})

	sender.AssertExpectations(t)
	assert.Contains(t, buf.String(), "failed to send notification")
}

func TestDispatch_TimeoutBoundsSlowTransport(t *testing.T) {
	t.Parallel()

	sender := &slowSender{}
	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("test"), logger.WithOutput(&buf))
	dispatcher := notify.NewDispatcher(sender,
		notify.WithLogger(log),
		notify.WithTimeout(10*time.Millisecond),
	)

	start := time.Now()
	dispatcher.Dispatch(context.Background(), []string{"a@example.com"},
		notify.Compose(notify.ActionCreated, notify.Snapshot{Description: "x", Status: lostitem.StatusUnclaimed}))

	assert.Less(t, time.Since(start), time.Second)
	require.ErrorIs(t, sender.sendErr, context.DeadlineExceeded)
	assert.Contains(t, buf.String(), "failed to send notification")
}

func TestNotify_ComposesAndDispatches(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	dispatcher := notify.NewDispatcher(sender)

	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p mailer.SendEmailParams) bool {
		return p.Subject == "[Lost & Found] Lost Item Updated" && p.Tag == "lost-item-updated"
	})).Return(nil).Once()

	dispatcher.Notify(context.Background(), notify.ActionUpdated, notify.Snapshot{
		Description: "Black wallet - has ID",
		Status:      lostitem.StatusUnclaimed,
	}, []string{"a@example.com"})

	sender.AssertExpectations(t)
}
