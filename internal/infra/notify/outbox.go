package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"bookingcore/internal/infra"
	"bookingcore/internal/pkg/clock"
	"bookingcore/internal/usecase/commands"

	"github.com/google/uuid"
)

// OutboxNotifier queues customer notifications as notification_jobs rows for
// the external mailer to drain. Every write is best effort and happens after
// the booking transaction committed: a full jobs table or a dead database
// connection is logged, never propagated.
type OutboxNotifier struct {
	db    infra.DBTX
	clock clock.Clock
}

func NewOutboxNotifier(db infra.DBTX, clk clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{db: db, clock: clk}
}

const createJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at)
VALUES ($1, $2, $3, $4, 'queued', $5)`

func (n *OutboxNotifier) AppointmentBooked(ctx context.Context, bn commands.BookingNotification) {
	n.enqueue(ctx, "email", "appointment.booked", bn)
}

func (n *OutboxNotifier) AppointmentCancelled(ctx context.Context, bn commands.BookingNotification) {
	n.enqueue(ctx, "email", "appointment.cancelled", bn)
}

func (n *OutboxNotifier) enqueue(ctx context.Context, kind, topic string, bn commands.BookingNotification) {
	payload, err := json.Marshal(bn)
	if err != nil {
		slog.Warn("failed to encode notification payload", "topic", topic, "error", err.Error())
		return
	}

	_, err = n.db.Exec(ctx, createJobSQL, uuid.New(), kind, topic, payload, n.clock.Now())
	if err != nil {
		slog.Warn("failed to queue notification job",
			"topic", topic,
			"appointment_id", bn.AppointmentID.String(),
			"error", err.Error())
	}
}
