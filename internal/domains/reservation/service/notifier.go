package service

import (
	"context"
	"time"

	"lotus/infras/kafka"
	"lotus/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	eventReservationCreated   = "reservation.created"
	eventReservationCancelled = "reservation.cancelled"
)

type reservationEvent struct {
	Event         string    `json:"event"`
	ReservationID string    `json:"reservation_id"`
	ClientID      *string   `json:"client_id,omitempty"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	TotalPrice    float64   `json:"total_price"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// notify publishes a reservation event for the staff notification consumers.
// Fire and forget: a broker failure must never roll back the reservation.
func (s *serviceImpl) notify(ctx context.Context, event, reservationID string, clientID *string, date, start time.Time, totalPrice float64) {
	go func() {
		c := context.WithoutCancel(ctx)

		msg := kafka.Message{
			Key: reservationID,
			Value: reservationEvent{
				Event:         event,
				ReservationID: reservationID,
				ClientID:      clientID,
				Date:          date.Format("2006-01-02"),
				StartTime:     start.Format("15:04"),
				TotalPrice:    totalPrice,
				OccurredAt:    timezone.Now(),
			},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.ReservationEvents, msg); err != nil {
			log.Error().Err(err).Str("event", event).Str("reservationID", reservationID).Msg("failed to publish reservation event")
		}
	}()
}
