package entities

import "time"

// Constellation is read-only over the API; mutation is an administrative
// side channel through the repository.
type Constellation struct {
	ID           uint64
	Name         string
	Abbreviation string
	AreaInSqDeg  float64
}

// Galaxy is owned by exactly one user and references exactly one
// constellation, which cannot be deleted while referenced.
type Galaxy struct {
	ID                uint64
	Name              string
	NameOrigin        string
	GalaxyType        string
	Distance          float64
	ApparentMagnitude float64
	Size              float64
	Notes             string
	OwnerID           string
	ConstellationID   uint64
}

// Post survives its owner: the owner reference nulls out when the user
// goes away.
type Post struct {
	ID      uint64
	Title   string
	Content string
	Created time.Time
	Updated time.Time
	OwnerID *string
}

type Comment struct {
	ID      uint64
	Content string
	Created time.Time
	Updated time.Time
	PostID  uint64
	OwnerID *string
}

// PPOI is the point of primary interest: a normalized coordinate pair
// marking an image's focal point for crop-aware resizing.
type PPOI struct {
	X float64
	Y float64
}

type ConstellationImage struct {
	ID              uint64
	ConstellationID uint64
	Image           string
	PPOI            PPOI
}

type GalaxyImage struct {
	ID       uint64
	GalaxyID uint64
	Image    string
	PPOI     PPOI
}

type PostImage struct {
	ID     uint64
	PostID uint64
	Image  string
	PPOI   PPOI
}
