package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harborpoint/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/harborpoint/stockroom-backend/pkg/errors"
	"github.com/harborpoint/stockroom-backend/pkg/logger"
)

func TestReservationExpiryJobExpiresRows(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reader := &fakeExpiredReader{rows: []models.Reservation{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}}
	expirer := &fakeExpirer{}
	job := newReservationExpiryJob(t, reader, expirer)
	job.now = func() time.Time { return now }

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reader.lastCutoff.Equal(now) {
		t.Fatalf("expected cutoff %s, got %s", now, reader.lastCutoff)
	}
	if reader.lastLimit != defaultExpiryBatchSize {
		t.Fatalf("expected batch size %d, got %d", defaultExpiryBatchSize, reader.lastLimit)
	}
	if len(expirer.expired) != 2 {
		t.Fatalf("expected 2 expirations, got %d", len(expirer.expired))
	}
}

func TestReservationExpiryJobContinuesPastFailures(t *testing.T) {
	bad := uuid.New()
	good := uuid.New()
	reader := &fakeExpiredReader{rows: []models.Reservation{{ID: bad}, {ID: good}}}
	expirer := &fakeExpirer{failOn: map[uuid.UUID]error{bad: errors.New("boom")}}
	job := newReservationExpiryJob(t, reader, expirer)

	err := job.Run(context.Background())
	if err == nil {
		t.Fatal("expected combined error")
	}
	// The bad row must not stop the sweep from reaching the good row.
	if len(expirer.expired) != 1 || expirer.expired[0] != good {
		t.Fatalf("expected good row expired, got %v", expirer.expired)
	}
}

func TestReservationExpiryJobIgnoresLostRaces(t *testing.T) {
	raced := uuid.New()
	reader := &fakeExpiredReader{rows: []models.Reservation{{ID: raced}}}
	expirer := &fakeExpirer{failOn: map[uuid.UUID]error{
		raced: pkgerrors.New(pkgerrors.CodeStateConflict, "reservation is released, not active"),
	}}
	job := newReservationExpiryJob(t, reader, expirer)

	// Losing the row lock to an explicit release is expected, not an error.
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestReservationExpiryJobPropagatesReaderError(t *testing.T) {
	reader := &fakeExpiredReader{err: errors.New("db down")}
	job := newReservationExpiryJob(t, reader, &fakeExpirer{})

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func newReservationExpiryJob(t *testing.T, reader *fakeExpiredReader, expirer *fakeExpirer) *reservationExpiryJob {
	t.Helper()
	jobIface, err := NewReservationExpiryJob(ReservationExpiryJobParams{
		Logger:    logger.New(logger.Options{ServiceName: "test"}),
		Expired:   reader,
		Inventory: expirer,
	})
	if err != nil {
		t.Fatalf("NewReservationExpiryJob: %v", err)
	}
	job, ok := jobIface.(*reservationExpiryJob)
	if !ok {
		t.Fatalf("expected reservationExpiryJob, got %T", jobIface)
	}
	return job
}

type fakeExpiredReader struct {
	rows       []models.Reservation
	err        error
	lastCutoff time.Time
	lastLimit  int
}

func (f *fakeExpiredReader) ListExpiredActive(_ context.Context, cutoff time.Time, limit int) ([]models.Reservation, error) {
	f.lastCutoff = cutoff
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeExpirer struct {
	expired []uuid.UUID
	failOn  map[uuid.UUID]error
}

func (f *fakeExpirer) ExpireReservation(_ context.Context, reservationID uuid.UUID) (*models.Reservation, error) {
	if err, ok := f.failOn[reservationID]; ok {
		return nil, err
	}
	f.expired = append(f.expired, reservationID)
	return &models.Reservation{ID: reservationID}, nil
}
