package memory

import (
	"context"
	"errors"
	"testing"

	"celestialbay/contexts/sky-catalog/catalog-service/domain/entities"
	domainerrors "celestialbay/contexts/sky-catalog/catalog-service/domain/errors"
)

func seedConstellation(t *testing.T, store *Store, name string) entities.Constellation {
	t.Helper()
	constellation, err := store.CreateConstellation(context.Background(), entities.Constellation{
		Name:         name,
		Abbreviation: "abc",
		AreaInSqDeg:  100,
	})
	if err != nil {
		t.Fatal(err)
	}
	return constellation
}

func seedGalaxy(t *testing.T, store *Store, name, owner string, constellationID uint64) entities.Galaxy {
	t.Helper()
	galaxy, err := store.CreateGalaxy(context.Background(), entities.Galaxy{
		Name:            name,
		NameOrigin:      "greek",
		GalaxyType:      "spiral",
		Distance:        2500,
		OwnerID:         owner,
		ConstellationID: constellationID,
	})
	if err != nil {
		t.Fatal(err)
	}
	return galaxy
}

func TestConstellationNameUniqueness(t *testing.T) {
	store := NewStore()
	seedConstellation(t, store, "Andromeda")

	_, err := store.CreateConstellation(context.Background(), entities.Constellation{Name: "Andromeda"})
	if !errors.Is(err, domainerrors.ErrConstellationNameTaken) {
		t.Fatalf("err = %v", err)
	}
}

func TestListConstellationsKeepsInsertionOrderAndTotal(t *testing.T) {
	store := NewStore()
	seedConstellation(t, store, "Andromeda")
	seedConstellation(t, store, "Orion")
	seedConstellation(t, store, "Lyra")

	page, total, err := store.ListConstellations(context.Background(), 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Fatalf("total = %d", total)
	}
	if len(page) != 2 || page[0].Name != "Andromeda" || page[1].Name != "Orion" {
		t.Fatalf("page = %+v", page)
	}

	rest, _, err := store.ListConstellations(context.Background(), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 1 || rest[0].Name != "Lyra" {
		t.Fatalf("rest = %+v", rest)
	}
}

func TestGalaxyNameUniquenessAcrossCreateAndUpdate(t *testing.T) {
	store := NewStore()
	constellation := seedConstellation(t, store, "Andromeda")
	seedGalaxy(t, store, "M31", "user-1", constellation.ID)
	second := seedGalaxy(t, store, "M33", "user-1", constellation.ID)

	if _, err := store.CreateGalaxy(context.Background(), entities.Galaxy{Name: "M31"}); !errors.Is(err, domainerrors.ErrGalaxyNameTaken) {
		t.Fatalf("create err = %v", err)
	}

	second.Name = "M31"
	if err := store.UpdateGalaxy(context.Background(), second); !errors.Is(err, domainerrors.ErrGalaxyNameTaken) {
		t.Fatalf("update err = %v", err)
	}

	// Renaming to its own current name is not a conflict.
	first, _ := store.GetGalaxy(context.Background(), 1)
	if err := store.UpdateGalaxy(context.Background(), first); err != nil {
		t.Fatalf("self-rename err = %v", err)
	}
}

func TestDeleteGalaxyCascadesImages(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	constellation := seedConstellation(t, store, "Andromeda")
	galaxy := seedGalaxy(t, store, "M31", "user-1", constellation.ID)

	image, err := store.CreateGalaxyImage(ctx, entities.GalaxyImage{GalaxyID: galaxy.ID, Image: "m31.jpg"})
	if err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteGalaxy(ctx, galaxy.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetGalaxyImage(ctx, image.ID); !errors.Is(err, domainerrors.ErrImageNotFound) {
		t.Fatalf("image survived cascade: %v", err)
	}
}

func TestDeletePostCascadesImagesAndComments(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	post, err := store.CreatePost(ctx, entities.Post{Title: "First light"})
	if err != nil {
		t.Fatal(err)
	}
	image, err := store.CreatePostImage(ctx, entities.PostImage{PostID: post.ID, Image: "scope.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	comment, err := store.CreateComment(ctx, entities.Comment{PostID: post.ID, Content: "nice"})
	if err != nil {
		t.Fatal(err)
	}

	if err := store.DeletePost(ctx, post.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetPostImage(ctx, image.ID); !errors.Is(err, domainerrors.ErrImageNotFound) {
		t.Fatalf("post image survived cascade: %v", err)
	}
	if _, err := store.GetComment(ctx, comment.ID); !errors.Is(err, domainerrors.ErrCommentNotFound) {
		t.Fatalf("comment survived cascade: %v", err)
	}
}

func TestBulkLoadersGroupByParent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	constellation := seedConstellation(t, store, "Andromeda")
	other := seedConstellation(t, store, "Orion")
	a := seedGalaxy(t, store, "M31", "user-1", constellation.ID)
	b := seedGalaxy(t, store, "M32", "user-1", constellation.ID)
	c := seedGalaxy(t, store, "M42x", "user-2", other.ID)

	grouped, err := store.GalaxiesByConstellationIDs(ctx, []uint64{constellation.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(grouped) != 1 || len(grouped[constellation.ID]) != 2 {
		t.Fatalf("grouped = %v", grouped)
	}
	if grouped[constellation.ID][0].ID != a.ID || grouped[constellation.ID][1].ID != b.ID {
		t.Fatalf("order = %v", grouped[constellation.ID])
	}

	byOwner, err := store.GalaxiesByOwnerIDs(ctx, []string{"user-2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byOwner["user-2"]) != 1 || byOwner["user-2"][0].ID != c.ID {
		t.Fatalf("byOwner = %v", byOwner)
	}
}

func TestCommentsByPostIDs(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	post, _ := store.CreatePost(ctx, entities.Post{Title: "First light"})
	other, _ := store.CreatePost(ctx, entities.Post{Title: "Second light"})
	if _, err := store.CreateComment(ctx, entities.Comment{PostID: post.ID, Content: "one"}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateComment(ctx, entities.Comment{PostID: other.ID, Content: "two"}); err != nil {
		t.Fatal(err)
	}

	grouped, err := store.CommentsByPostIDs(ctx, []uint64{post.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(grouped) != 1 || len(grouped[post.ID]) != 1 || grouped[post.ID][0].Content != "one" {
		t.Fatalf("grouped = %v", grouped)
	}
}

func TestPageBoundsClampsOffsetPastEnd(t *testing.T) {
	store := NewStore()
	seedConstellation(t, store, "Andromeda")

	page, total, err := store.ListConstellations(context.Background(), 10, 99)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(page) != 0 {
		t.Fatalf("total = %d, page = %v", total, page)
	}
}
