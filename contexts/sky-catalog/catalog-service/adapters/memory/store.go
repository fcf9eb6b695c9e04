package memory

import (
	"context"
	"sync"
	"time"

	"celestialbay/contexts/sky-catalog/catalog-service/domain/entities"
	domainerrors "celestialbay/contexts/sky-catalog/catalog-service/domain/errors"
)

// Store is the in-memory Repository used for development and tests. Rows
// keep insertion order so listings are deterministic, matching the
// primary-key ordering contract of the Postgres adapter.
type Store struct {
	mu sync.RWMutex

	constellations      []entities.Constellation
	constellationImages []entities.ConstellationImage
	galaxies            []entities.Galaxy
	galaxyImages        []entities.GalaxyImage
	posts               []entities.Post
	postImages          []entities.PostImage
	comments            []entities.Comment

	nextID map[string]uint64
}

func NewStore() *Store {
	return &Store{nextID: make(map[string]uint64)}
}

func (s *Store) sequence(table string) uint64 {
	s.nextID[table]++
	return s.nextID[table]
}

func pageBounds(total, limit, offset int) (int, int) {
	if offset > total {
		offset = total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return offset, end
}

func (s *Store) CreateConstellation(ctx context.Context, constellation entities.Constellation) (entities.Constellation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.constellations {
		if existing.Name == constellation.Name {
			return entities.Constellation{}, domainerrors.ErrConstellationNameTaken
		}
	}
	constellation.ID = s.sequence("constellations")
	s.constellations = append(s.constellations, constellation)
	return constellation, nil
}

func (s *Store) GetConstellation(ctx context.Context, id uint64) (entities.Constellation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, constellation := range s.constellations {
		if constellation.ID == id {
			return constellation, nil
		}
	}
	return entities.Constellation{}, domainerrors.ErrConstellationNotFound
}

func (s *Store) ListConstellations(ctx context.Context, limit, offset int) ([]entities.Constellation, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.constellations)
	start, end := pageBounds(total, limit, offset)
	return append([]entities.Constellation(nil), s.constellations[start:end]...), total, nil
}

func (s *Store) CreateConstellationImage(ctx context.Context, image entities.ConstellationImage) (entities.ConstellationImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	image.ID = s.sequence("constellation_images")
	s.constellationImages = append(s.constellationImages, image)
	return image, nil
}

func (s *Store) GetConstellationImage(ctx context.Context, id uint64) (entities.ConstellationImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, image := range s.constellationImages {
		if image.ID == id {
			return image, nil
		}
	}
	return entities.ConstellationImage{}, domainerrors.ErrImageNotFound
}

func (s *Store) ConstellationImagesByConstellationIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.ConstellationImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := uintSet(ids)
	out := make(map[uint64][]entities.ConstellationImage)
	for _, image := range s.constellationImages {
		if wanted[image.ConstellationID] {
			out[image.ConstellationID] = append(out[image.ConstellationID], image)
		}
	}
	return out, nil
}

func (s *Store) CreateGalaxy(ctx context.Context, galaxy entities.Galaxy) (entities.Galaxy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.galaxies {
		if existing.Name == galaxy.Name {
			return entities.Galaxy{}, domainerrors.ErrGalaxyNameTaken
		}
	}
	galaxy.ID = s.sequence("galaxies")
	s.galaxies = append(s.galaxies, galaxy)
	return galaxy, nil
}

func (s *Store) GetGalaxy(ctx context.Context, id uint64) (entities.Galaxy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, galaxy := range s.galaxies {
		if galaxy.ID == id {
			return galaxy, nil
		}
	}
	return entities.Galaxy{}, domainerrors.ErrGalaxyNotFound
}

func (s *Store) ListGalaxies(ctx context.Context, limit, offset int) ([]entities.Galaxy, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.galaxies)
	start, end := pageBounds(total, limit, offset)
	return append([]entities.Galaxy(nil), s.galaxies[start:end]...), total, nil
}

func (s *Store) UpdateGalaxy(ctx context.Context, galaxy entities.Galaxy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.galaxies {
		if existing.Name == galaxy.Name && existing.ID != galaxy.ID {
			return domainerrors.ErrGalaxyNameTaken
		}
	}
	for i, existing := range s.galaxies {
		if existing.ID == galaxy.ID {
			s.galaxies[i] = galaxy
			return nil
		}
	}
	return domainerrors.ErrGalaxyNotFound
}

func (s *Store) DeleteGalaxy(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, galaxy := range s.galaxies {
		if galaxy.ID == id {
			s.galaxies = append(s.galaxies[:i], s.galaxies[i+1:]...)
			kept := s.galaxyImages[:0]
			for _, image := range s.galaxyImages {
				if image.GalaxyID != id {
					kept = append(kept, image)
				}
			}
			s.galaxyImages = kept
			return nil
		}
	}
	return domainerrors.ErrGalaxyNotFound
}

func (s *Store) GalaxiesByConstellationIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.Galaxy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := uintSet(ids)
	out := make(map[uint64][]entities.Galaxy)
	for _, galaxy := range s.galaxies {
		if wanted[galaxy.ConstellationID] {
			out[galaxy.ConstellationID] = append(out[galaxy.ConstellationID], galaxy)
		}
	}
	return out, nil
}

func (s *Store) GalaxiesByOwnerIDs(ctx context.Context, ownerIDs []string) (map[string][]entities.Galaxy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(ownerIDs))
	for _, id := range ownerIDs {
		wanted[id] = true
	}
	out := make(map[string][]entities.Galaxy)
	for _, galaxy := range s.galaxies {
		if wanted[galaxy.OwnerID] {
			out[galaxy.OwnerID] = append(out[galaxy.OwnerID], galaxy)
		}
	}
	return out, nil
}

func (s *Store) CreateGalaxyImage(ctx context.Context, image entities.GalaxyImage) (entities.GalaxyImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	image.ID = s.sequence("galaxy_images")
	s.galaxyImages = append(s.galaxyImages, image)
	return image, nil
}

func (s *Store) GetGalaxyImage(ctx context.Context, id uint64) (entities.GalaxyImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, image := range s.galaxyImages {
		if image.ID == id {
			return image, nil
		}
	}
	return entities.GalaxyImage{}, domainerrors.ErrImageNotFound
}

func (s *Store) ListGalaxyImages(ctx context.Context, limit, offset int) ([]entities.GalaxyImage, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.galaxyImages)
	start, end := pageBounds(total, limit, offset)
	return append([]entities.GalaxyImage(nil), s.galaxyImages[start:end]...), total, nil
}

func (s *Store) UpdateGalaxyImage(ctx context.Context, image entities.GalaxyImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.galaxyImages {
		if existing.ID == image.ID {
			s.galaxyImages[i] = image
			return nil
		}
	}
	return domainerrors.ErrImageNotFound
}

func (s *Store) DeleteGalaxyImage(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, image := range s.galaxyImages {
		if image.ID == id {
			s.galaxyImages = append(s.galaxyImages[:i], s.galaxyImages[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrImageNotFound
}

func (s *Store) GalaxyImagesByGalaxyIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.GalaxyImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := uintSet(ids)
	out := make(map[uint64][]entities.GalaxyImage)
	for _, image := range s.galaxyImages {
		if wanted[image.GalaxyID] {
			out[image.GalaxyID] = append(out[image.GalaxyID], image)
		}
	}
	return out, nil
}

func (s *Store) CreatePost(ctx context.Context, post entities.Post) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = s.sequence("posts")
	s.posts = append(s.posts, post)
	return post, nil
}

func (s *Store) GetPost(ctx context.Context, id uint64) (entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return entities.Post{}, domainerrors.ErrPostNotFound
}

func (s *Store) ListPosts(ctx context.Context, limit, offset int) ([]entities.Post, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.posts)
	start, end := pageBounds(total, limit, offset)
	return append([]entities.Post(nil), s.posts[start:end]...), total, nil
}

func (s *Store) UpdatePost(ctx context.Context, post entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.posts {
		if existing.ID == post.ID {
			s.posts[i] = post
			return nil
		}
	}
	return domainerrors.ErrPostNotFound
}

func (s *Store) DeletePost(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, post := range s.posts {
		if post.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			keptImages := s.postImages[:0]
			for _, image := range s.postImages {
				if image.PostID != id {
					keptImages = append(keptImages, image)
				}
			}
			s.postImages = keptImages
			keptComments := s.comments[:0]
			for _, comment := range s.comments {
				if comment.PostID != id {
					keptComments = append(keptComments, comment)
				}
			}
			s.comments = keptComments
			return nil
		}
	}
	return domainerrors.ErrPostNotFound
}

func (s *Store) CreatePostImage(ctx context.Context, image entities.PostImage) (entities.PostImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	image.ID = s.sequence("post_images")
	s.postImages = append(s.postImages, image)
	return image, nil
}

func (s *Store) GetPostImage(ctx context.Context, id uint64) (entities.PostImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, image := range s.postImages {
		if image.ID == id {
			return image, nil
		}
	}
	return entities.PostImage{}, domainerrors.ErrImageNotFound
}

func (s *Store) ListPostImages(ctx context.Context, limit, offset int) ([]entities.PostImage, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.postImages)
	start, end := pageBounds(total, limit, offset)
	return append([]entities.PostImage(nil), s.postImages[start:end]...), total, nil
}

func (s *Store) UpdatePostImage(ctx context.Context, image entities.PostImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.postImages {
		if existing.ID == image.ID {
			s.postImages[i] = image
			return nil
		}
	}
	return domainerrors.ErrImageNotFound
}

func (s *Store) DeletePostImage(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, image := range s.postImages {
		if image.ID == id {
			s.postImages = append(s.postImages[:i], s.postImages[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrImageNotFound
}

func (s *Store) PostImagesByPostIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.PostImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := uintSet(ids)
	out := make(map[uint64][]entities.PostImage)
	for _, image := range s.postImages {
		if wanted[image.PostID] {
			out[image.PostID] = append(out[image.PostID], image)
		}
	}
	return out, nil
}

func (s *Store) CreateComment(ctx context.Context, comment entities.Comment) (entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.sequence("comments")
	s.comments = append(s.comments, comment)
	return comment, nil
}

func (s *Store) GetComment(ctx context.Context, id uint64) (entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, comment := range s.comments {
		if comment.ID == id {
			return comment, nil
		}
	}
	return entities.Comment{}, domainerrors.ErrCommentNotFound
}

func (s *Store) ListComments(ctx context.Context, limit, offset int) ([]entities.Comment, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.comments)
	start, end := pageBounds(total, limit, offset)
	return append([]entities.Comment(nil), s.comments[start:end]...), total, nil
}

func (s *Store) UpdateComment(ctx context.Context, comment entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.comments {
		if existing.ID == comment.ID {
			s.comments[i] = comment
			return nil
		}
	}
	return domainerrors.ErrCommentNotFound
}

func (s *Store) DeleteComment(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, comment := range s.comments {
		if comment.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrCommentNotFound
}

func (s *Store) CommentsByPostIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := uintSet(ids)
	out := make(map[uint64][]entities.Comment)
	for _, comment := range s.comments {
		if wanted[comment.PostID] {
			out[comment.PostID] = append(out[comment.PostID], comment)
		}
	}
	return out, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func uintSet(ids []uint64) map[uint64]bool {
	set := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
