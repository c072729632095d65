package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/harborpoint/stockroom-backend/pkg/db/models"
	pkgerrors "github.com/harborpoint/stockroom-backend/pkg/errors"
	"github.com/harborpoint/stockroom-backend/pkg/logger"
)

const defaultExpiryBatchSize = 500

// ReservationExpiryJobParams configure the expiry sweeper.
type ReservationExpiryJobParams struct {
	Logger    *logger.Logger
	Expired   expiredReservationReader
	Inventory reservationExpirer
	BatchSize int
}

type expiredReservationReader interface {
	ListExpiredActive(ctx context.Context, cutoff time.Time, limit int) ([]models.Reservation, error)
}

type reservationExpirer interface {
	ExpireReservation(ctx context.Context, reservationID uuid.UUID) (*models.Reservation, error)
}

// NewReservationExpiryJob builds the job that releases holds whose TTL ran
// out, marking them expired rather than released.
func NewReservationExpiryJob(params ReservationExpiryJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Expired == nil {
		return nil, fmt.Errorf("expired reservation reader required")
	}
	if params.Inventory == nil {
		return nil, fmt.Errorf("inventory service required")
	}
	batchSize := params.BatchSize
	if batchSize <= 0 {
		batchSize = defaultExpiryBatchSize
	}
	return &reservationExpiryJob{
		logg:      params.Logger,
		expired:   params.Expired,
		inventory: params.Inventory,
		batchSize: batchSize,
		now:       time.Now,
	}, nil
}

type reservationExpiryJob struct {
	logg      *logger.Logger
	expired   expiredReservationReader
	inventory reservationExpirer
	batchSize int
	now       func() time.Time
}

func (j *reservationExpiryJob) Name() string { return "reservation-expiry" }

func (j *reservationExpiryJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC()
	rows, err := j.expired.ListExpiredActive(ctx, cutoff, j.batchSize)
	if err != nil {
		return fmt.Errorf("query expired reservations: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	expired := 0
	raced := 0
	var errs []error
	for _, reservation := range rows {
		if _, err := j.inventory.ExpireReservation(ctx, reservation.ID); err != nil {
			// A state conflict means an explicit release or a sibling sweep
			// got the row lock first. That is the expected race, not a
			// failure.
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeStateConflict {
				raced++
				continue
			}
			logCtx := j.logg.WithReservationID(ctx, reservation.ID.String())
			j.logg.Error(logCtx, "failed to expire reservation", err)
			errs = append(errs, fmt.Errorf("expire reservation %s: %w", reservation.ID, err))
			continue
		}
		expired++
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"cutoff":  cutoff,
		"scanned": len(rows),
		"expired": expired,
		"raced":   raced,
		"failed":  len(errs),
	})
	j.logg.Info(logCtx, "reservation expiry sweep complete")
	return multierr.Combine(errs...)
}
