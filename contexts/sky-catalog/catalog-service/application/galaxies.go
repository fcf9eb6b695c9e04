package application

import (
	"context"
	"errors"
	"strings"

	"celestialbay/contexts/sky-catalog/catalog-service/domain/entities"
	domainerrors "celestialbay/contexts/sky-catalog/catalog-service/domain/errors"
	"celestialbay/contexts/sky-catalog/catalog-service/ports"
	"celestialbay/internal/shared/shaping"
)

// CreateGalaxy binds the owner to the caller regardless of any owner value
// in the request payload.
func (s Service) CreateGalaxy(ctx context.Context, callerID string, in ports.GalaxyWrite) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	if err := validateGalaxyWrite(in); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetConstellation(ctx, *in.Constellation); err != nil {
		if errors.Is(err, domainerrors.ErrConstellationNotFound) {
			return nil, invalidParent("constellation", *in.Constellation)
		}
		return nil, err
	}

	galaxy := entities.Galaxy{
		Name:            strings.TrimSpace(*in.Name),
		NameOrigin:      *in.NameOrigin,
		GalaxyType:      *in.GalaxyType,
		Distance:        *in.Distance,
		OwnerID:         callerID,
		ConstellationID: *in.Constellation,
	}
	applyGalaxyOptionals(&galaxy, in)

	created, err := s.Repo.CreateGalaxy(ctx, galaxy)
	if err != nil {
		if errors.Is(err, domainerrors.ErrGalaxyNameTaken) {
			return nil, domainerrors.NewValidation("name", "galaxy with this name already exists.")
		}
		return nil, err
	}

	s.log().Info("galaxy created",
		"event", "galaxy_created",
		"module", "contexts/sky-catalog/catalog-service",
		"layer", "application",
		"galaxy_id", created.ID,
		"owner_id", callerID,
	)
	return galaxyDoc(created), nil
}

func (s Service) GetGalaxy(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	galaxy, err := s.Repo.GetGalaxy(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := galaxyDoc(galaxy)
	if err := shaping.Shape(ctx, s.galaxyResource(), []shaping.Document{doc}, shape); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s Service) ListGalaxies(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	galaxies, total, err := s.Repo.ListGalaxies(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]shaping.Document, 0, len(galaxies))
	for _, galaxy := range galaxies {
		docs = append(docs, galaxyDoc(galaxy))
	}
	if err := shaping.Shape(ctx, s.galaxyResource(), docs, shape); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (s Service) UpdateGalaxy(ctx context.Context, callerID string, id uint64, in ports.GalaxyWrite, partial bool) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	galaxy, err := s.Repo.GetGalaxy(ctx, id)
	if err != nil {
		return nil, err
	}
	if galaxy.OwnerID != callerID {
		return nil, domainerrors.ErrPermissionDenied
	}
	if !partial {
		if err := validateGalaxyWrite(in); err != nil {
			return nil, err
		}
	}

	if in.Name != nil {
		galaxy.Name = strings.TrimSpace(*in.Name)
	}
	if in.NameOrigin != nil {
		galaxy.NameOrigin = *in.NameOrigin
	}
	if in.GalaxyType != nil {
		galaxy.GalaxyType = *in.GalaxyType
	}
	if in.Distance != nil {
		galaxy.Distance = *in.Distance
	}
	if in.Constellation != nil {
		if _, err := s.Repo.GetConstellation(ctx, *in.Constellation); err != nil {
			if errors.Is(err, domainerrors.ErrConstellationNotFound) {
				return nil, invalidParent("constellation", *in.Constellation)
			}
			return nil, err
		}
		galaxy.ConstellationID = *in.Constellation
	}
	applyGalaxyOptionals(&galaxy, in)

	if err := s.Repo.UpdateGalaxy(ctx, galaxy); err != nil {
		if errors.Is(err, domainerrors.ErrGalaxyNameTaken) {
			return nil, domainerrors.NewValidation("name", "galaxy with this name already exists.")
		}
		return nil, err
	}
	return galaxyDoc(galaxy), nil
}

func (s Service) DeleteGalaxy(ctx context.Context, callerID string, id uint64) error {
	if err := requireAuth(callerID); err != nil {
		return err
	}
	galaxy, err := s.Repo.GetGalaxy(ctx, id)
	if err != nil {
		return err
	}
	if galaxy.OwnerID != callerID {
		return domainerrors.ErrPermissionDenied
	}
	return s.Repo.DeleteGalaxy(ctx, id)
}

// Galaxy images: the owner is transitive through the parent galaxy.

func (s Service) CreateGalaxyImage(ctx context.Context, callerID string, in ports.ImageWrite) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	parent, image, ppoi, err := s.validateImage("galaxy", in)
	if err != nil {
		return nil, err
	}
	galaxy, err := s.Repo.GetGalaxy(ctx, parent)
	if err != nil {
		if errors.Is(err, domainerrors.ErrGalaxyNotFound) {
			return nil, invalidParent("galaxy", parent)
		}
		return nil, err
	}
	if galaxy.OwnerID != callerID {
		return nil, domainerrors.ErrPermissionDenied
	}
	created, err := s.Repo.CreateGalaxyImage(ctx, entities.GalaxyImage{
		GalaxyID: parent,
		Image:    image,
		PPOI:     ppoi,
	})
	if err != nil {
		return nil, err
	}
	return galaxyImageDoc(created), nil
}

func (s Service) GetGalaxyImage(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	image, err := s.Repo.GetGalaxyImage(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := galaxyImageDoc(image)
	if err := shaping.Shape(ctx, imageResource(), []shaping.Document{doc}, shape); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s Service) ListGalaxyImages(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	images, total, err := s.Repo.ListGalaxyImages(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]shaping.Document, 0, len(images))
	for _, image := range images {
		docs = append(docs, galaxyImageDoc(image))
	}
	shaping.Trim(docs, shape)
	return docs, total, nil
}

func (s Service) UpdateGalaxyImage(ctx context.Context, callerID string, id uint64, in ports.ImageWrite, partial bool) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	image, err := s.Repo.GetGalaxyImage(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireGalaxyOwner(ctx, callerID, image.GalaxyID); err != nil {
		return nil, err
	}
	if !partial {
		if _, _, _, err := s.validateImage("galaxy", in); err != nil {
			return nil, err
		}
	}

	if in.Parent != nil {
		if err := s.requireGalaxyOwner(ctx, callerID, *in.Parent); err != nil {
			if errors.Is(err, domainerrors.ErrGalaxyNotFound) {
				return nil, invalidParent("galaxy", *in.Parent)
			}
			return nil, err
		}
		image.GalaxyID = *in.Parent
	}
	if in.Image != nil {
		image.Image = strings.TrimSpace(*in.Image)
	}
	if in.PPOI != nil {
		ppoi, err := parsePPOI(in.PPOI)
		if err != nil {
			return nil, err
		}
		image.PPOI = ppoi
	}

	if err := s.Repo.UpdateGalaxyImage(ctx, image); err != nil {
		return nil, err
	}
	return galaxyImageDoc(image), nil
}

func (s Service) DeleteGalaxyImage(ctx context.Context, callerID string, id uint64) error {
	if err := requireAuth(callerID); err != nil {
		return err
	}
	image, err := s.Repo.GetGalaxyImage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireGalaxyOwner(ctx, callerID, image.GalaxyID); err != nil {
		return err
	}
	return s.Repo.DeleteGalaxyImage(ctx, id)
}

func (s Service) requireGalaxyOwner(ctx context.Context, callerID string, galaxyID uint64) error {
	galaxy, err := s.Repo.GetGalaxy(ctx, galaxyID)
	if err != nil {
		return err
	}
	if galaxy.OwnerID != callerID {
		return domainerrors.ErrPermissionDenied
	}
	return nil
}

func validateGalaxyWrite(in ports.GalaxyWrite) error {
	if err := requireString("name", in.Name); err != nil {
		return err
	}
	if err := requireString("name_origin", in.NameOrigin); err != nil {
		return err
	}
	if err := requireString("galaxy_type", in.GalaxyType); err != nil {
		return err
	}
	if in.Distance == nil {
		return domainerrors.NewValidation("distance", "This field is required.")
	}
	if in.Constellation == nil {
		return domainerrors.NewValidation("constellation", "This field is required.")
	}
	return nil
}

func applyGalaxyOptionals(galaxy *entities.Galaxy, in ports.GalaxyWrite) {
	if in.ApparentMagnitude != nil {
		galaxy.ApparentMagnitude = *in.ApparentMagnitude
	}
	if in.Size != nil {
		galaxy.Size = *in.Size
	}
	if in.Notes != nil {
		galaxy.Notes = *in.Notes
	}
}
