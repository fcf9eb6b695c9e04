package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"celestialbay/contexts/sky-catalog/catalog-service/domain/entities"
	domainerrors "celestialbay/contexts/sky-catalog/catalog-service/domain/errors"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateConstellation(ctx context.Context, constellation entities.Constellation) (entities.Constellation, error) {
	row := constellationModelFromEntity(constellation)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Constellation{}, domainerrors.ErrConstellationNameTaken
		}
		return entities.Constellation{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetConstellation(ctx context.Context, id uint64) (entities.Constellation, error) {
	var row constellationModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Constellation{}, domainerrors.ErrConstellationNotFound
		}
		return entities.Constellation{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListConstellations(ctx context.Context, limit, offset int) ([]entities.Constellation, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&constellationModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []constellationModel
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	out := make([]entities.Constellation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, int(total), nil
}

func (r *Repository) CreateConstellationImage(ctx context.Context, image entities.ConstellationImage) (entities.ConstellationImage, error) {
	row := constellationImageModelFromEntity(image)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.ConstellationImage{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetConstellationImage(ctx context.Context, id uint64) (entities.ConstellationImage, error) {
	var row constellationImageModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ConstellationImage{}, domainerrors.ErrImageNotFound
		}
		return entities.ConstellationImage{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ConstellationImagesByConstellationIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.ConstellationImage, error) {
	out := make(map[uint64][]entities.ConstellationImage)
	if len(ids) == 0 {
		return out, nil
	}
	var rows []constellationImageModel
	err := r.db.WithContext(ctx).
		Where("constellation_id IN ?", ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ConstellationID] = append(out[row.ConstellationID], row.toEntity())
	}
	return out, nil
}

func (r *Repository) CreateGalaxy(ctx context.Context, galaxy entities.Galaxy) (entities.Galaxy, error) {
	row := galaxyModelFromEntity(galaxy)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Galaxy{}, domainerrors.ErrGalaxyNameTaken
		}
		return entities.Galaxy{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetGalaxy(ctx context.Context, id uint64) (entities.Galaxy, error) {
	var row galaxyModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Galaxy{}, domainerrors.ErrGalaxyNotFound
		}
		return entities.Galaxy{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListGalaxies(ctx context.Context, limit, offset int) ([]entities.Galaxy, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&galaxyModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []galaxyModel
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	out := make([]entities.Galaxy, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, int(total), nil
}

func (r *Repository) UpdateGalaxy(ctx context.Context, galaxy entities.Galaxy) error {
	result := r.db.WithContext(ctx).
		Model(&galaxyModel{}).
		Where("id = ?", galaxy.ID).
		Updates(map[string]any{
			"name":               galaxy.Name,
			"name_origin":        galaxy.NameOrigin,
			"galaxy_type":        galaxy.GalaxyType,
			"distance":           galaxy.Distance,
			"apparent_magnitude": galaxy.ApparentMagnitude,
			"size":               galaxy.Size,
			"notes":              galaxy.Notes,
			"constellation_id":   galaxy.ConstellationID,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrGalaxyNameTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrGalaxyNotFound
	}
	return nil
}

// DeleteGalaxy removes the galaxy and its images in one transaction,
// mirroring the cascade the schema would apply.
func (r *Repository) DeleteGalaxy(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("galaxy_id = ?", id).Delete(&galaxyImageModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&galaxyModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrGalaxyNotFound
		}
		return nil
	})
}

func (r *Repository) GalaxiesByConstellationIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.Galaxy, error) {
	out := make(map[uint64][]entities.Galaxy)
	if len(ids) == 0 {
		return out, nil
	}
	var rows []galaxyModel
	err := r.db.WithContext(ctx).
		Where("constellation_id IN ?", ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ConstellationID] = append(out[row.ConstellationID], row.toEntity())
	}
	return out, nil
}

func (r *Repository) GalaxiesByOwnerIDs(ctx context.Context, ownerIDs []string) (map[string][]entities.Galaxy, error) {
	out := make(map[string][]entities.Galaxy)
	if len(ownerIDs) == 0 {
		return out, nil
	}
	var rows []galaxyModel
	err := r.db.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], row.toEntity())
	}
	return out, nil
}

func (r *Repository) CreateGalaxyImage(ctx context.Context, image entities.GalaxyImage) (entities.GalaxyImage, error) {
	row := galaxyImageModelFromEntity(image)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.GalaxyImage{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetGalaxyImage(ctx context.Context, id uint64) (entities.GalaxyImage, error) {
	var row galaxyImageModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.GalaxyImage{}, domainerrors.ErrImageNotFound
		}
		return entities.GalaxyImage{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListGalaxyImages(ctx context.Context, limit, offset int) ([]entities.GalaxyImage, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&galaxyImageModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []galaxyImageModel
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	out := make([]entities.GalaxyImage, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, int(total), nil
}

func (r *Repository) UpdateGalaxyImage(ctx context.Context, image entities.GalaxyImage) error {
	result := r.db.WithContext(ctx).
		Model(&galaxyImageModel{}).
		Where("id = ?", image.ID).
		Updates(map[string]any{
			"galaxy_id": image.GalaxyID,
			"image":     image.Image,
			"ppoi_x":    image.PPOI.X,
			"ppoi_y":    image.PPOI.Y,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrImageNotFound
	}
	return nil
}

func (r *Repository) DeleteGalaxyImage(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&galaxyImageModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrImageNotFound
	}
	return nil
}

func (r *Repository) GalaxyImagesByGalaxyIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.GalaxyImage, error) {
	out := make(map[uint64][]entities.GalaxyImage)
	if len(ids) == 0 {
		return out, nil
	}
	var rows []galaxyImageModel
	err := r.db.WithContext(ctx).
		Where("galaxy_id IN ?", ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.GalaxyID] = append(out[row.GalaxyID], row.toEntity())
	}
	return out, nil
}

func (r *Repository) CreatePost(ctx context.Context, post entities.Post) (entities.Post, error) {
	row := postModelFromEntity(post)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Post{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetPost(ctx context.Context, id uint64) (entities.Post, error) {
	var row postModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Post{}, domainerrors.ErrPostNotFound
		}
		return entities.Post{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListPosts(ctx context.Context, limit, offset int) ([]entities.Post, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&postModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []postModel
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	out := make([]entities.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, int(total), nil
}

func (r *Repository) UpdatePost(ctx context.Context, post entities.Post) error {
	result := r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":   post.Title,
			"content": post.Content,
			"updated": post.Updated.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}
	return nil
}

// DeletePost removes the post plus its images and comments in one
// transaction.
func (r *Repository) DeletePost(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&postImageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&commentModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&postModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrPostNotFound
		}
		return nil
	})
}

func (r *Repository) CreatePostImage(ctx context.Context, image entities.PostImage) (entities.PostImage, error) {
	row := postImageModelFromEntity(image)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.PostImage{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetPostImage(ctx context.Context, id uint64) (entities.PostImage, error) {
	var row postImageModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.PostImage{}, domainerrors.ErrImageNotFound
		}
		return entities.PostImage{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListPostImages(ctx context.Context, limit, offset int) ([]entities.PostImage, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&postImageModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []postImageModel
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	out := make([]entities.PostImage, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, int(total), nil
}

func (r *Repository) UpdatePostImage(ctx context.Context, image entities.PostImage) error {
	result := r.db.WithContext(ctx).
		Model(&postImageModel{}).
		Where("id = ?", image.ID).
		Updates(map[string]any{
			"post_id": image.PostID,
			"image":   image.Image,
			"ppoi_x":  image.PPOI.X,
			"ppoi_y":  image.PPOI.Y,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrImageNotFound
	}
	return nil
}

func (r *Repository) DeletePostImage(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&postImageModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrImageNotFound
	}
	return nil
}

func (r *Repository) PostImagesByPostIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.PostImage, error) {
	out := make(map[uint64][]entities.PostImage)
	if len(ids) == 0 {
		return out, nil
	}
	var rows []postImageModel
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = append(out[row.PostID], row.toEntity())
	}
	return out, nil
}

func (r *Repository) CommentsByPostIDs(ctx context.Context, ids []uint64) (map[uint64][]entities.Comment, error) {
	out := make(map[uint64][]entities.Comment)
	if len(ids) == 0 {
		return out, nil
	}
	var rows []commentModel
	err := r.db.WithContext(ctx).
		Where("post_id IN ?", ids).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PostID] = append(out[row.PostID], row.toEntity())
	}
	return out, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment entities.Comment) (entities.Comment, error) {
	row := commentModelFromEntity(comment)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Comment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetComment(ctx context.Context, id uint64) (entities.Comment, error) {
	var row commentModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, domainerrors.ErrCommentNotFound
		}
		return entities.Comment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListComments(ctx context.Context, limit, offset int) ([]entities.Comment, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&commentModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []commentModel
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	out := make([]entities.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, int(total), nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment entities.Comment) error {
	result := r.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content": comment.Content,
			"post_id": comment.PostID,
			"updated": comment.Updated.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCommentNotFound
	}
	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&commentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCommentNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
