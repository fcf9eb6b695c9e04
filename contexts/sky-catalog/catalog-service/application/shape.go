package application

import (
	"context"

	"celestialbay/internal/shared/shaping"
)

// Expansion tables. Each resource type declares its finite set of
// expandable relations; the loaders behind them are single bulk fetches
// against the repository.

func (s Service) constellationResource() *shaping.Resource {
	return &shaping.Resource{Relations: map[string]shaping.Relation{
		"galaxies": {Loader: s.loadConstellationGalaxies, Child: s.galaxyResource()},
		"images":   {Loader: s.loadConstellationImages, Child: imageResource()},
	}}
}

func (s Service) galaxyResource() *shaping.Resource {
	return &shaping.Resource{Relations: map[string]shaping.Relation{
		"images": {Loader: s.loadGalaxyImages, Child: imageResource()},
	}}
}

func (s Service) postResource() *shaping.Resource {
	return &shaping.Resource{Relations: map[string]shaping.Relation{
		"images":   {Loader: s.loadPostImages, Child: imageResource()},
		"comments": {Loader: s.loadPostComments, Child: &shaping.Resource{}},
	}}
}

func imageResource() *shaping.Resource {
	return &shaping.Resource{}
}

func (s Service) loadConstellationGalaxies(ctx context.Context, parentKeys []any) (map[any][]shaping.Document, error) {
	grouped, err := s.Repo.GalaxiesByConstellationIDs(ctx, uintKeys(parentKeys))
	if err != nil {
		return nil, err
	}
	out := make(map[any][]shaping.Document, len(grouped))
	for id, galaxies := range grouped {
		docs := make([]shaping.Document, 0, len(galaxies))
		for _, galaxy := range galaxies {
			docs = append(docs, galaxyDoc(galaxy))
		}
		out[id] = docs
	}
	return out, nil
}

func (s Service) loadConstellationImages(ctx context.Context, parentKeys []any) (map[any][]shaping.Document, error) {
	grouped, err := s.Repo.ConstellationImagesByConstellationIDs(ctx, uintKeys(parentKeys))
	if err != nil {
		return nil, err
	}
	out := make(map[any][]shaping.Document, len(grouped))
	for id, images := range grouped {
		docs := make([]shaping.Document, 0, len(images))
		for _, image := range images {
			docs = append(docs, constellationImageDoc(image))
		}
		out[id] = docs
	}
	return out, nil
}

func (s Service) loadGalaxyImages(ctx context.Context, parentKeys []any) (map[any][]shaping.Document, error) {
	grouped, err := s.Repo.GalaxyImagesByGalaxyIDs(ctx, uintKeys(parentKeys))
	if err != nil {
		return nil, err
	}
	out := make(map[any][]shaping.Document, len(grouped))
	for id, images := range grouped {
		docs := make([]shaping.Document, 0, len(images))
		for _, image := range images {
			docs = append(docs, galaxyImageDoc(image))
		}
		out[id] = docs
	}
	return out, nil
}

func (s Service) loadPostImages(ctx context.Context, parentKeys []any) (map[any][]shaping.Document, error) {
	grouped, err := s.Repo.PostImagesByPostIDs(ctx, uintKeys(parentKeys))
	if err != nil {
		return nil, err
	}
	out := make(map[any][]shaping.Document, len(grouped))
	for id, images := range grouped {
		docs := make([]shaping.Document, 0, len(images))
		for _, image := range images {
			docs = append(docs, postImageDoc(image))
		}
		out[id] = docs
	}
	return out, nil
}

func (s Service) loadPostComments(ctx context.Context, parentKeys []any) (map[any][]shaping.Document, error) {
	grouped, err := s.Repo.CommentsByPostIDs(ctx, uintKeys(parentKeys))
	if err != nil {
		return nil, err
	}
	out := make(map[any][]shaping.Document, len(grouped))
	for id, comments := range grouped {
		docs := make([]shaping.Document, 0, len(comments))
		for _, comment := range comments {
			docs = append(docs, commentDoc(comment))
		}
		out[id] = docs
	}
	return out, nil
}

// GalaxiesOwnedBy serves the identity context's expandable galaxies
// relation on the public user view.
func (s Service) GalaxiesOwnedBy(ctx context.Context, ownerIDs []string) (map[string][]shaping.Document, error) {
	grouped, err := s.Repo.GalaxiesByOwnerIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]shaping.Document, len(grouped))
	for ownerID, galaxies := range grouped {
		docs := make([]shaping.Document, 0, len(galaxies))
		for _, galaxy := range galaxies {
			docs = append(docs, galaxyDoc(galaxy))
		}
		out[ownerID] = docs
	}
	return out, nil
}

func uintKeys(keys []any) []uint64 {
	ids := make([]uint64, 0, len(keys))
	for _, key := range keys {
		if id, ok := key.(uint64); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
