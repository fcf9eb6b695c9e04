package postgresadapter

import (
	"time"

	"celestialbay/contexts/sky-catalog/catalog-service/domain/entities"
)

type constellationModel struct {
	ID           uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string  `gorm:"column:name;size:50;uniqueIndex;not null"`
	Abbreviation string  `gorm:"column:abbreviation;size:10;not null"`
	AreaInSqDeg  float64 `gorm:"column:area_in_sq_deg;not null"`
}

func (constellationModel) TableName() string { return "constellations" }

type constellationImageModel struct {
	ID              uint64              `gorm:"column:id;primaryKey;autoIncrement"`
	ConstellationID uint64              `gorm:"column:constellation_id;index;not null"`
	Image           string              `gorm:"column:image;size:255;not null"`
	PPOIX           float64             `gorm:"column:ppoi_x;not null"`
	PPOIY           float64             `gorm:"column:ppoi_y;not null"`
	Constellation   *constellationModel `gorm:"foreignKey:ConstellationID;constraint:OnDelete:CASCADE"`
}

func (constellationImageModel) TableName() string { return "constellation_images" }

// Owner columns reference the identity context's users table across the
// context boundary and carry no database constraint; user deletion has no
// API surface, so owner cleanup never arises from request handling.
type galaxyModel struct {
	ID                uint64              `gorm:"column:id;primaryKey;autoIncrement"`
	Name              string              `gorm:"column:name;size:100;uniqueIndex;not null"`
	NameOrigin        string              `gorm:"column:name_origin;size:255;not null"`
	GalaxyType        string              `gorm:"column:galaxy_type;size:50;not null"`
	Distance          float64             `gorm:"column:distance;not null"`
	ApparentMagnitude float64             `gorm:"column:apparent_magnitude"`
	Size              float64             `gorm:"column:size"`
	Notes             string              `gorm:"column:notes;type:text"`
	OwnerID           string              `gorm:"column:owner_id;type:uuid;index;not null"`
	ConstellationID   uint64              `gorm:"column:constellation_id;index;not null"`
	Constellation     *constellationModel `gorm:"foreignKey:ConstellationID;constraint:OnDelete:RESTRICT"`
}

func (galaxyModel) TableName() string { return "galaxies" }

type galaxyImageModel struct {
	ID       uint64       `gorm:"column:id;primaryKey;autoIncrement"`
	GalaxyID uint64       `gorm:"column:galaxy_id;index;not null"`
	Image    string       `gorm:"column:image;size:255;not null"`
	PPOIX    float64      `gorm:"column:ppoi_x;not null"`
	PPOIY    float64      `gorm:"column:ppoi_y;not null"`
	Galaxy   *galaxyModel `gorm:"foreignKey:GalaxyID;constraint:OnDelete:CASCADE"`
}

func (galaxyImageModel) TableName() string { return "galaxy_images" }

type postModel struct {
	ID      uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Title   string    `gorm:"column:title;size:200;not null"`
	Content string    `gorm:"column:content;type:text;not null"`
	Created time.Time `gorm:"column:created;not null"`
	Updated time.Time `gorm:"column:updated;not null"`
	OwnerID *string   `gorm:"column:owner_id;type:uuid;index"`
}

func (postModel) TableName() string { return "posts" }

type postImageModel struct {
	ID     uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	PostID uint64     `gorm:"column:post_id;index;not null"`
	Image  string     `gorm:"column:image;size:255;not null"`
	PPOIX  float64    `gorm:"column:ppoi_x;not null"`
	PPOIY  float64    `gorm:"column:ppoi_y;not null"`
	Post   *postModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (postImageModel) TableName() string { return "post_images" }

type commentModel struct {
	ID      uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	Content string     `gorm:"column:content;type:text;not null"`
	Created time.Time  `gorm:"column:created;not null"`
	Updated time.Time  `gorm:"column:updated;not null"`
	PostID  uint64     `gorm:"column:post_id;index;not null"`
	OwnerID *string    `gorm:"column:owner_id;type:uuid;index"`
	Post    *postModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (commentModel) TableName() string { return "comments" }

// Models lists the persisted models for schema migration.
func Models() []any {
	return []any{
		&constellationModel{},
		&constellationImageModel{},
		&galaxyModel{},
		&galaxyImageModel{},
		&postModel{},
		&postImageModel{},
		&commentModel{},
	}
}

func (m constellationModel) toEntity() entities.Constellation {
	return entities.Constellation{
		ID:           m.ID,
		Name:         m.Name,
		Abbreviation: m.Abbreviation,
		AreaInSqDeg:  m.AreaInSqDeg,
	}
}

func constellationModelFromEntity(c entities.Constellation) constellationModel {
	return constellationModel{
		ID:           c.ID,
		Name:         c.Name,
		Abbreviation: c.Abbreviation,
		AreaInSqDeg:  c.AreaInSqDeg,
	}
}

func (m constellationImageModel) toEntity() entities.ConstellationImage {
	return entities.ConstellationImage{
		ID:              m.ID,
		ConstellationID: m.ConstellationID,
		Image:           m.Image,
		PPOI:            entities.PPOI{X: m.PPOIX, Y: m.PPOIY},
	}
}

func constellationImageModelFromEntity(i entities.ConstellationImage) constellationImageModel {
	return constellationImageModel{
		ID:              i.ID,
		ConstellationID: i.ConstellationID,
		Image:           i.Image,
		PPOIX:           i.PPOI.X,
		PPOIY:           i.PPOI.Y,
	}
}

func (m galaxyModel) toEntity() entities.Galaxy {
	return entities.Galaxy{
		ID:                m.ID,
		Name:              m.Name,
		NameOrigin:        m.NameOrigin,
		GalaxyType:        m.GalaxyType,
		Distance:          m.Distance,
		ApparentMagnitude: m.ApparentMagnitude,
		Size:              m.Size,
		Notes:             m.Notes,
		OwnerID:           m.OwnerID,
		ConstellationID:   m.ConstellationID,
	}
}

func galaxyModelFromEntity(g entities.Galaxy) galaxyModel {
	return galaxyModel{
		ID:                g.ID,
		Name:              g.Name,
		NameOrigin:        g.NameOrigin,
		GalaxyType:        g.GalaxyType,
		Distance:          g.Distance,
		ApparentMagnitude: g.ApparentMagnitude,
		Size:              g.Size,
		Notes:             g.Notes,
		OwnerID:           g.OwnerID,
		ConstellationID:   g.ConstellationID,
	}
}

func (m galaxyImageModel) toEntity() entities.GalaxyImage {
	return entities.GalaxyImage{
		ID:       m.ID,
		GalaxyID: m.GalaxyID,
		Image:    m.Image,
		PPOI:     entities.PPOI{X: m.PPOIX, Y: m.PPOIY},
	}
}

func galaxyImageModelFromEntity(i entities.GalaxyImage) galaxyImageModel {
	return galaxyImageModel{
		ID:       i.ID,
		GalaxyID: i.GalaxyID,
		Image:    i.Image,
		PPOIX:    i.PPOI.X,
		PPOIY:    i.PPOI.Y,
	}
}

func (m postModel) toEntity() entities.Post {
	return entities.Post{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		Created: m.Created,
		Updated: m.Updated,
		OwnerID: m.OwnerID,
	}
}

func postModelFromEntity(p entities.Post) postModel {
	return postModel{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Created: p.Created.UTC(),
		Updated: p.Updated.UTC(),
		OwnerID: p.OwnerID,
	}
}

func (m postImageModel) toEntity() entities.PostImage {
	return entities.PostImage{
		ID:     m.ID,
		PostID: m.PostID,
		Image:  m.Image,
		PPOI:   entities.PPOI{X: m.PPOIX, Y: m.PPOIY},
	}
}

func postImageModelFromEntity(i entities.PostImage) postImageModel {
	return postImageModel{
		ID:     i.ID,
		PostID: i.PostID,
		Image:  i.Image,
		PPOIX:  i.PPOI.X,
		PPOIY:  i.PPOI.Y,
	}
}

func (m commentModel) toEntity() entities.Comment {
	return entities.Comment{
		ID:      m.ID,
		Content: m.Content,
		Created: m.Created,
		Updated: m.Updated,
		PostID:  m.PostID,
		OwnerID: m.OwnerID,
	}
}

func commentModelFromEntity(c entities.Comment) commentModel {
	return commentModel{
		ID:      c.ID,
		Content: c.Content,
		Created: c.Created.UTC(),
		Updated: c.Updated.UTC(),
		PostID:  c.PostID,
		OwnerID: c.OwnerID,
	}
}
