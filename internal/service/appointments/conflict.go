package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"medislot/internal/domain"
)

// RangeFinder is the slice of the store the detector needs. Implementations may return
// records that do not actually intersect the window; they must not omit any that do.
type RangeFinder interface {
	FindByDoctorAndRange(ctx context.Context, doctorID string, start, end time.Time) ([]domain.Appointment, error)
}

type Detector struct {
	finder RangeFinder
}

func NewDetector(finder RangeFinder) *Detector {
	return &Detector{finder: finder}
}

// Conflicts returns the blocking appointments of doctorID that overlap iv, skipping
// exclude (uuid.Nil excludes nothing).
func (d *Detector) Conflicts(ctx context.Context, doctorID string, iv domain.Interval, exclude uuid.UUID) ([]domain.Appointment, error) {
	candidates, err := d.finder.FindByDoctorAndRange(ctx, doctorID, iv.Start, iv.End)
	if err != nil {
		return nil, err
	}

	var out []domain.Appointment
	for _, c := range candidates {
		if exclude != uuid.Nil && c.ID == exclude {
			continue
		}
		if c.DoctorID != doctorID || !c.Status.IsBlocking() {
			continue
		}
		if !c.Interval().Overlaps(iv) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (d *Detector) HasConflict(ctx context.Context, doctorID string, iv domain.Interval, exclude uuid.UUID) (bool, error) {
	conflicts, err := d.Conflicts(ctx, doctorID, iv, exclude)
	if err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}
