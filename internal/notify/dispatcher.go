package notify

import (
	"context"
	"log/slog"
)

type message struct {
	to      string
	subject string
	body    string
}

// Dispatcher decouples notification delivery from the request path: Notify
// enqueues onto a bounded channel and returns immediately, a background
// goroutine drains the queue through the wrapped Notifier. A full queue
// drops the message rather than block the business operation.
type Dispatcher struct {
	sink  Notifier
	queue chan message
	log   *slog.Logger
	done  chan struct{}
}

func NewDispatcher(sink Notifier, queueSize int, log *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		sink:  sink,
		queue: make(chan message, queueSize),
		log:   log,
		done:  make(chan struct{}),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case msg := <-d.queue:
				d.sink.Notify(ctx, msg.to, msg.subject, msg.body)
			case <-d.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	d.log.Info("notification dispatcher started")
}

func (d *Dispatcher) Stop() { close(d.done) }

func (d *Dispatcher) Notify(_ context.Context, to, subject, body string) {
	select {
	case d.queue <- message{to: to, subject: subject, body: body}:
	default:
		d.log.Warn("notification queue full, dropping", "to", to, "subject", subject)
	}
}
