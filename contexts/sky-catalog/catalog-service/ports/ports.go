package ports

import (
	"context"
	"time"

	"celestialbay/contexts/sky-catalog/catalog-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// Repository persists the catalog. List methods return rows in primary-key
// order plus the total unpaginated count. The ByIDs methods are the bulk
// fetches behind relation expansion: one call covers every parent row.
type Repository interface {
	CreateConstellation(ctx context.Context, constellation entities.Constellation) (entities.Constellation, error)
	GetConstellation(ctx context.Context, id uint64) (entities.Constellation, error)
	ListConstellations(ctx context.Context, limit, offset int) ([]entities.Constellation, int, error)
	GalaxiesByConstellationIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.Galaxy, error)

	CreateConstellationImage(ctx context.Context, image entities.ConstellationImage) (entities.ConstellationImage, error)
	GetConstellationImage(ctx context.Context, id uint64) (entities.ConstellationImage, error)
	ConstellationImagesByConstellationIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.ConstellationImage, error)

	CreateGalaxy(ctx context.Context, galaxy entities.Galaxy) (entities.Galaxy, error)
	GetGalaxy(ctx context.Context, id uint64) (entities.Galaxy, error)
	ListGalaxies(ctx context.Context, limit, offset int) ([]entities.Galaxy, int, error)
	UpdateGalaxy(ctx context.Context, galaxy entities.Galaxy) error
	DeleteGalaxy(ctx context.Context, id uint64) error
	GalaxiesByOwnerIDs(ctx context.Context, ownerIDs []string) (map[string][]entities.Galaxy, error)

	CreateGalaxyImage(ctx context.Context, image entities.GalaxyImage) (entities.GalaxyImage, error)
	GetGalaxyImage(ctx context.Context, id uint64) (entities.GalaxyImage, error)
	ListGalaxyImages(ctx context.Context, limit, offset int) ([]entities.GalaxyImage, int, error)
	UpdateGalaxyImage(ctx context.Context, image entities.GalaxyImage) error
	DeleteGalaxyImage(ctx context.Context, id uint64) error
	GalaxyImagesByGalaxyIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.GalaxyImage, error)

	CreatePost(ctx context.Context, post entities.Post) (entities.Post, error)
	GetPost(ctx context.Context, id uint64) (entities.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]entities.Post, int, error)
	UpdatePost(ctx context.Context, post entities.Post) error
	DeletePost(ctx context.Context, id uint64) error

	CreatePostImage(ctx context.Context, image entities.PostImage) (entities.PostImage, error)
	GetPostImage(ctx context.Context, id uint64) (entities.PostImage, error)
	ListPostImages(ctx context.Context, limit, offset int) ([]entities.PostImage, int, error)
	UpdatePostImage(ctx context.Context, image entities.PostImage) error
	DeletePostImage(ctx context.Context, id uint64) error
	PostImagesByPostIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.PostImage, error)

	CreateComment(ctx context.Context, comment entities.Comment) (entities.Comment, error)
	GetComment(ctx context.Context, id uint64) (entities.Comment, error)
	ListComments(ctx context.Context, limit, offset int) ([]entities.Comment, int, error)
	UpdateComment(ctx context.Context, comment entities.Comment) error
	DeleteComment(ctx context.Context, id uint64) error
	CommentsByPostIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.Comment, error)
}

// Write inputs use pointer fields so replace and partial update share one
// shape: replace requires every required field, partial touches only the
// fields present. Any owner value in the request payload is ignored.

type ConstellationWrite struct {
	Name         *string
	Abbreviation *string
	AreaInSqDeg  *float64
}

type GalaxyWrite struct {
	Name              *string
	NameOrigin        *string
	GalaxyType        *string
	Distance          *float64
	ApparentMagnitude *float64
	Size              *float64
	Notes             *string
	Constellation     *uint64
}

type PostWrite struct {
	Title   *string
	Content *string
}

type CommentWrite struct {
	Content *string
	Post    *uint64
}

type ImageWrite struct {
	Parent *uint64
	Image  *string
	PPOI   *string
}
