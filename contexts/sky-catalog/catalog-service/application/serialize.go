package application

import (
	"strconv"

	"celestialbay/contexts/sky-catalog/catalog-service/domain/entities"
	"celestialbay/internal/shared/shaping"
)

// Default document shapes. Dates use the date-only wire form; forward
// relations appear as their primary key, reverse relations only when
// expanded.

const dateLayout = "2006-01-02"

func constellationDoc(c entities.Constellation) shaping.Document {
	return shaping.Document{
		"pk":             c.ID,
		"name":           c.Name,
		"abbreviation":   c.Abbreviation,
		"area_in_sq_deg": c.AreaInSqDeg,
	}
}

func galaxyDoc(g entities.Galaxy) shaping.Document {
	return shaping.Document{
		"pk":                 g.ID,
		"name":               g.Name,
		"name_origin":        g.NameOrigin,
		"galaxy_type":        g.GalaxyType,
		"distance":           g.Distance,
		"apparent_magnitude": g.ApparentMagnitude,
		"size":               g.Size,
		"notes":              g.Notes,
		"owner":              g.OwnerID,
		"constellation":      g.ConstellationID,
	}
}

func postDoc(p entities.Post) shaping.Document {
	doc := shaping.Document{
		"pk":      p.ID,
		"title":   p.Title,
		"content": p.Content,
		"created": p.Created.UTC().Format(dateLayout),
		"updated": p.Updated.UTC().Format(dateLayout),
		"owner":   nil,
	}
	if p.OwnerID != nil {
		doc["owner"] = *p.OwnerID
	}
	return doc
}

func commentDoc(c entities.Comment) shaping.Document {
	doc := shaping.Document{
		"pk":      c.ID,
		"content": c.Content,
		"created": c.Created.UTC().Format(dateLayout),
		"updated": c.Updated.UTC().Format(dateLayout),
		"post":    c.PostID,
		"owner":   nil,
	}
	if c.OwnerID != nil {
		doc["owner"] = *c.OwnerID
	}
	return doc
}

func constellationImageDoc(i entities.ConstellationImage) shaping.Document {
	return shaping.Document{
		"pk":            i.ID,
		"constellation": i.ConstellationID,
		"image":         i.Image,
		"image_ppoi":    ppoiString(i.PPOI),
	}
}

func galaxyImageDoc(i entities.GalaxyImage) shaping.Document {
	return shaping.Document{
		"pk":         i.ID,
		"galaxy":     i.GalaxyID,
		"image":      i.Image,
		"image_ppoi": ppoiString(i.PPOI),
	}
}

func postImageDoc(i entities.PostImage) shaping.Document {
	return shaping.Document{
		"pk":         i.ID,
		"post":       i.PostID,
		"image":      i.Image,
		"image_ppoi": ppoiString(i.PPOI),
	}
}

func ppoiString(p entities.PPOI) string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + "x" + strconv.FormatFloat(p.Y, 'g', -1, 64)
}
