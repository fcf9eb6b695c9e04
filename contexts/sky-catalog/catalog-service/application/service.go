package application

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"celestialbay/contexts/sky-catalog/catalog-service/domain/entities"
	domainerrors "celestialbay/contexts/sky-catalog/catalog-service/domain/errors"
	"celestialbay/contexts/sky-catalog/catalog-service/ports"
	"celestialbay/internal/shared/shaping"
)

// Service implements the catalog operations and the ownership gate. A
// caller is identified by its user id; the empty string is anonymous.
// Reads are open to everyone; writes require authentication, and update or
// delete additionally require the caller to be the resource owner. Images
// have no owner of their own: creating, updating, or deleting one requires
// owning the parent resource.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Constellations are HTTP read-only; CreateConstellation is the
// administrative side channel.

func (s Service) CreateConstellation(ctx context.Context, in ports.ConstellationWrite) (entities.Constellation, error) {
	if err := requireString("name", in.Name); err != nil {
		return entities.Constellation{}, err
	}
	if err := requireString("abbreviation", in.Abbreviation); err != nil {
		return entities.Constellation{}, err
	}
	if in.AreaInSqDeg == nil {
		return entities.Constellation{}, domainerrors.NewValidation("area_in_sq_deg", "This field is required.")
	}

	constellation, err := s.Repo.CreateConstellation(ctx, entities.Constellation{
		Name:         strings.TrimSpace(*in.Name),
		Abbreviation: strings.TrimSpace(*in.Abbreviation),
		AreaInSqDeg:  *in.AreaInSqDeg,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrConstellationNameTaken) {
			return entities.Constellation{}, domainerrors.NewValidation("name", "constellation with this name already exists.")
		}
		return entities.Constellation{}, err
	}
	return constellation, nil
}

func (s Service) GetConstellation(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	constellation, err := s.Repo.GetConstellation(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := constellationDoc(constellation)
	if err := shaping.Shape(ctx, s.constellationResource(), []shaping.Document{doc}, shape); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s Service) ListConstellations(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	constellations, total, err := s.Repo.ListConstellations(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]shaping.Document, 0, len(constellations))
	for _, constellation := range constellations {
		docs = append(docs, constellationDoc(constellation))
	}
	if err := shaping.Shape(ctx, s.constellationResource(), docs, shape); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (s Service) CreateConstellationImage(ctx context.Context, in ports.ImageWrite) (entities.ConstellationImage, error) {
	parent, image, ppoi, err := s.validateImage("constellation", in)
	if err != nil {
		return entities.ConstellationImage{}, err
	}
	if _, err := s.Repo.GetConstellation(ctx, parent); err != nil {
		if errors.Is(err, domainerrors.ErrConstellationNotFound) {
			return entities.ConstellationImage{}, invalidParent("constellation", parent)
		}
		return entities.ConstellationImage{}, err
	}
	return s.Repo.CreateConstellationImage(ctx, entities.ConstellationImage{
		ConstellationID: parent,
		Image:           image,
		PPOI:            ppoi,
	})
}

func (s Service) GetConstellationImage(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	image, err := s.Repo.GetConstellationImage(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := constellationImageDoc(image)
	if err := shaping.Shape(ctx, imageResource(), []shaping.Document{doc}, shape); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s Service) validateImage(parentField string, in ports.ImageWrite) (uint64, string, entities.PPOI, error) {
	if in.Parent == nil {
		return 0, "", entities.PPOI{}, domainerrors.NewValidation(parentField, "This field is required.")
	}
	if err := requireString("image", in.Image); err != nil {
		return 0, "", entities.PPOI{}, err
	}
	ppoi, err := parsePPOI(in.PPOI)
	if err != nil {
		return 0, "", entities.PPOI{}, err
	}
	return *in.Parent, strings.TrimSpace(*in.Image), ppoi, nil
}

// parsePPOI reads the "0.5x0.5" wire form; both coordinates are normalized
// to [0, 1].
func parsePPOI(raw *string) (entities.PPOI, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return entities.PPOI{X: 0.5, Y: 0.5}, nil
	}
	parts := strings.Split(strings.TrimSpace(*raw), "x")
	if len(parts) != 2 {
		return entities.PPOI{}, domainerrors.NewValidation("image_ppoi", "Use the WIDTHxHEIGHT form, such as 0.5x0.5.")
	}
	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	if errX != nil || errY != nil || x < 0 || x > 1 || y < 0 || y > 1 {
		return entities.PPOI{}, domainerrors.NewValidation("image_ppoi", "Coordinates must be between 0 and 1.")
	}
	return entities.PPOI{X: x, Y: y}, nil
}

func invalidParent(field string, id uint64) error {
	return domainerrors.NewValidation(field, "Invalid pk \""+strconv.FormatUint(id, 10)+"\" - object does not exist.")
}

func requireAuth(callerID string) error {
	if callerID == "" {
		return domainerrors.ErrAuthenticationRequired
	}
	return nil
}

func requireString(field string, value *string) error {
	if value == nil || strings.TrimSpace(*value) == "" {
		return domainerrors.NewValidation(field, "This field is required.")
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) log() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
