package models

import "time"

// SiteStatus is the lifecycle state of a construction site.
type SiteStatus string

const (
	SiteActive    SiteStatus = "active"
	SiteCompleted SiteStatus = "completed"
)

// Coordinate is a geographic point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Site represents a construction site that workers enroll into.
// Exactly one enrollment code is valid per site at any instant; rotating
// the code invalidates the previous one immediately.
type Site struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"ownerId,omitempty"`
	Name           string       `json:"name"`
	Address        string       `json:"address,omitempty"`
	Status         SiteStatus   `json:"status"`
	EnrollmentCode string       `json:"enrollmentCode,omitempty"`
	Location       *Coordinate  `json:"location,omitempty"`
	RadiusMeters   float64      `json:"radiusMeters,omitempty"`
	Boundary       []Coordinate `json:"boundary,omitempty"` // optional polygon fence
	CreatedAt      time.Time    `json:"createdAt"`
}

// HasFence reports whether the site can gate location-sensitive actions.
func (s Site) HasFence() bool {
	return len(s.Boundary) >= 3 || (s.Location != nil && s.RadiusMeters > 0)
}
