// Package notification delivers user-facing messages (order confirmations,
// status updates) outside the request path.
package notification

import (
	"context"
	"sync"

	"github.com/marketlink/backend/internal/domain/shared/service"
	"go.uber.org/zap"
)

// Sender performs the actual delivery of a single message
type Sender interface {
	Send(ctx context.Context, recipient, subject, message string) error
}

// Message is one queued notification
type Message struct {
	Recipient string
	Subject   string
	Body      string
}

// AsyncNotifier queues messages into a buffered channel drained by a single
// worker. Notify never blocks: when the queue is full the message is dropped
// and logged. Delivery failures are logged and never surface to callers.
type AsyncNotifier struct {
	sender Sender
	logger *zap.Logger
	queue  chan Message
	wg     sync.WaitGroup
	stop   chan struct{}
	once   sync.Once
}

// NewAsyncNotifier creates a notifier with the given queue capacity
func NewAsyncNotifier(sender Sender, queueSize int, logger *zap.Logger) *AsyncNotifier {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &AsyncNotifier{
		sender: sender,
		logger: logger.Named("notifier"),
		queue:  make(chan Message, queueSize),
		stop:   make(chan struct{}),
	}
}

// Start launches the delivery worker
func (n *AsyncNotifier) Start() {
	n.wg.Add(1)
	go n.worker()
	n.logger.Info("notifier started", zap.Int("queue_capacity", cap(n.queue)))
}

// Stop drains the queue and waits for the worker to finish
func (n *AsyncNotifier) Stop(ctx context.Context) error {
	n.once.Do(func() { close(n.stop) })

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		n.logger.Info("notifier stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Notify enqueues a message for delivery
func (n *AsyncNotifier) Notify(_ context.Context, recipient, subject, message string) {
	select {
	case n.queue <- Message{Recipient: recipient, Subject: subject, Body: message}:
	default:
		n.logger.Warn("notification queue full, dropping message",
			zap.String("recipient", recipient),
			zap.String("subject", subject),
		)
	}
}

func (n *AsyncNotifier) worker() {
	defer n.wg.Done()
	for {
		select {
		case msg := <-n.queue:
			n.deliver(msg)
		case <-n.stop:
			// Drain whatever is already queued, then exit
			for {
				select {
				case msg := <-n.queue:
					n.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (n *AsyncNotifier) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := n.sender.Send(ctx, msg.Recipient, msg.Subject, msg.Body); err != nil {
		n.logger.Error("notification delivery failed",
			zap.String("recipient", msg.Recipient),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return
	}

	n.logger.Debug("notification delivered",
		zap.String("recipient", msg.Recipient),
		zap.String("subject", msg.Subject),
	)
}

var _ service.Notifier = (*AsyncNotifier)(nil)
