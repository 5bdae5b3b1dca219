package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	otelMocks "lotus/infras/otel/mocks"
)

type captureGetter struct {
	query string
	args  []interface{}
}

func (g *captureGetter) GetContext(_ context.Context, dest interface{}, query string, args ...interface{}) error {
	g.query = query
	g.args = args

	if count, ok := dest.(*int); ok {
		*count = 0
	}

	return nil
}

func TestCountOverlapping_Query(t *testing.T) {
	repo := &repositoryImpl{otel: otelMocks.NewOtel()}
	getter := &captureGetter{}

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	start := date.Add(10 * time.Hour)
	end := start.Add(90 * time.Minute)

	count, err := repo.countOverlapping(context.Background(), getter, date, start, end, "reservation-id-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	// Half-open interval test: a row overlaps [start, end) only with strict
	// comparisons, so back-to-back reservations are accepted.
	assert.Contains(t, getter.query, "start_time < $2")
	assert.Contains(t, getter.query, "end_time > $3")
	assert.NotContains(t, getter.query, "start_time <=")
	assert.NotContains(t, getter.query, "end_time >=")

	// Non-blocking statuses never occupy a slot.
	assert.Contains(t, getter.query, "status NOT IN ('cancelled', 'no_show', 'draft')")

	// The exclude clause compares the uuid column as text so the untyped $4
	// parameter resolves consistently.
	assert.Contains(t, getter.query, "($4 = '' OR id::text <> $4)")

	assert.Equal(t, []interface{}{date, end, start, "reservation-id-1"}, getter.args)
}

func TestCountOverlapping_QueryWithoutExclude(t *testing.T) {
	repo := &repositoryImpl{otel: otelMocks.NewOtel()}
	getter := &captureGetter{}

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	start := date.Add(10 * time.Hour)
	end := start.Add(time.Hour)

	_, err := repo.countOverlapping(context.Background(), getter, date, start, end, "")

	assert.NoError(t, err)
	assert.Equal(t, "", getter.args[3])
}
