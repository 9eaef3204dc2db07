package evaluator

import (
	"github.com/google/uuid"
)

// ContainerImage represents one photographed side or view of a container.
// Images are created at detection time and are read-only during review.
type ContainerImage struct {
	ID         uuid.UUID `json:"id"`
	Side       Side      `json:"side"`
	StorageKey string    `json:"storageKey"`
}

// Side labels the container face a photo shows.
type Side string

const (
	SideFront    Side = "front"
	SideRear     Side = "rear"
	SideLeft     Side = "left"
	SideRight    Side = "right"
	SideTop      Side = "top"
	SideInterior Side = "interior"
)

// Valid reports whether the side is a known label.
func (s Side) Valid() bool {
	switch s {
	case SideFront, SideRear, SideLeft, SideRight, SideTop, SideInterior:
		return true
	}
	return false
}
