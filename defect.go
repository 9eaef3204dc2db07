package evaluator

import (
	"github.com/google/uuid"
)

// Defect represents one detected or reviewed anomaly on a container image.
type Defect struct {
	ID          uuid.UUID    `json:"id"`
	ImageID     uuid.UUID    `json:"imageId"`
	Bounds      BoundingBox  `json:"bounds"`
	Code        string       `json:"code"`
	Severity    Severity     `json:"severity"`
	Description string       `json:"description,omitempty"`
	Status      DefectStatus `json:"status"`
	RepairCost  Money        `json:"repairCost"`
}

// Billable reports whether the defect counts toward the quote.
// A defect need not be explicitly accepted to be billable, only not rejected.
func (d *Defect) Billable() bool {
	return d.Status != DefectStatusRejected
}

// BoundingBox is a defect extent in normalized 0-100 coordinates,
// independent of the image's pixel resolution.
type BoundingBox struct {
	XMin float64 `json:"xmin"`
	YMin float64 `json:"ymin"`
	XMax float64 `json:"xmax"`
	YMax float64 `json:"ymax"`
}

// Validate checks the 0 <= min < max <= 100 invariant on both axes.
func (b BoundingBox) Validate() error {
	if b.XMin < 0 || b.XMax > 100 || b.XMin >= b.XMax {
		return Invalid("Bounding box x coordinates must satisfy 0 <= xmin < xmax <= 100")
	}
	if b.YMin < 0 || b.YMax > 100 || b.YMin >= b.YMax {
		return Invalid("Bounding box y coordinates must satisfy 0 <= ymin < ymax <= 100")
	}
	return nil
}

// Severity represents the severity level of a defect.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Weight returns a numeric weight for sorting by severity.
func (s Severity) Weight() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether the severity is a known value.
func (s Severity) Valid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// DefectStatus represents the review status of a defect.
type DefectStatus string

const (
	DefectStatusPending  DefectStatus = "pending"
	DefectStatusAccepted DefectStatus = "accepted"
	DefectStatusRejected DefectStatus = "rejected"
)

// IsReviewed returns true if a reviewer has made a decision on the defect.
func (s DefectStatus) IsReviewed() bool {
	return s == DefectStatusAccepted || s == DefectStatusRejected
}

// Valid reports whether the status is a known value.
func (s DefectStatus) Valid() bool {
	return s == DefectStatusPending || s == DefectStatusAccepted || s == DefectStatusRejected
}

// SetDefectStatus returns a new defect list with the review status of
// exactly one record replaced. No other defect is touched; defects are
// never removed, only marked rejected.
// Returns ENOTFOUND if no defect has the given id.
func SetDefectStatus(defects []*Defect, id uuid.UUID, status DefectStatus) ([]*Defect, error) {
	if !status.Valid() {
		return nil, Invalid("Unknown defect status %q", status)
	}
	return replaceDefect(defects, id, func(d Defect) Defect {
		d.Status = status
		return d
	})
}

// SetDefectCost returns a new defect list with the repair cost of exactly
// one record replaced. A negative cost is rejected with EINVALID.
// Returns ENOTFOUND if no defect has the given id.
func SetDefectCost(defects []*Defect, id uuid.UUID, cost Money) ([]*Defect, error) {
	if cost.IsNegative() {
		return nil, Invalid("Repair cost must not be negative")
	}
	return replaceDefect(defects, id, func(d Defect) Defect {
		d.RepairCost = cost
		return d
	})
}

// replaceDefect copies the list and applies fn to the one matching record.
func replaceDefect(defects []*Defect, id uuid.UUID, fn func(Defect) Defect) ([]*Defect, error) {
	out := make([]*Defect, len(defects))
	found := false
	for i, d := range defects {
		if d.ID == id {
			updated := fn(*d)
			out[i] = &updated
			found = true
			continue
		}
		out[i] = d
	}
	if !found {
		return nil, NotFound("Defect not found")
	}
	return out, nil
}
