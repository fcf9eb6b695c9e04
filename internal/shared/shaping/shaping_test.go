package shaping

import (
	"context"
	"errors"
	"net/url"
	"reflect"
	"testing"
)

func TestParseParamsSplitsListsAndPaths(t *testing.T) {
	query := url.Values{}
	query.Set("fields", "pk, name ,abbreviation")
	query.Set("omit", "notes")
	query.Set("expand", "galaxies.images,images")

	params := ParseParams(query)

	if !reflect.DeepEqual(params.Fields, []string{"pk", "name", "abbreviation"}) {
		t.Fatalf("fields = %v", params.Fields)
	}
	if !reflect.DeepEqual(params.Omit, []string{"notes"}) {
		t.Fatalf("omit = %v", params.Omit)
	}
	want := [][]string{{"galaxies", "images"}, {"images"}}
	if !reflect.DeepEqual(params.Expand, want) {
		t.Fatalf("expand = %v", params.Expand)
	}
}

func TestTrimFieldsKeepsPK(t *testing.T) {
	docs := []Document{
		{"pk": uint64(1), "name": "Andromeda", "notes": "spiral"},
		{"pk": uint64(2), "name": "Whirlpool", "notes": ""},
	}

	Trim(docs, Params{Fields: []string{"name"}})

	for _, doc := range docs {
		if _, ok := doc["pk"]; !ok {
			t.Fatalf("pk dropped: %v", doc)
		}
		if _, ok := doc["notes"]; ok {
			t.Fatalf("notes kept: %v", doc)
		}
	}
}

func TestTrimOmitNeverRemovesPK(t *testing.T) {
	docs := []Document{{"pk": uint64(1), "name": "Andromeda"}}

	Trim(docs, Params{Omit: []string{"pk", "name"}})

	if _, ok := docs[0]["pk"]; !ok {
		t.Fatal("pk removed by omit")
	}
	if _, ok := docs[0]["name"]; ok {
		t.Fatal("name survived omit")
	}
}

func TestTrimFieldsWinsOverOmit(t *testing.T) {
	docs := []Document{{"pk": uint64(1), "name": "Andromeda", "notes": "x"}}

	Trim(docs, Params{Fields: []string{"name"}, Omit: []string{"name"}})

	if _, ok := docs[0]["name"]; !ok {
		t.Fatal("fields allow-list should win over omit")
	}
	if _, ok := docs[0]["notes"]; ok {
		t.Fatal("notes should be trimmed by fields")
	}
}

func TestExpandLoadsEachRelationOnce(t *testing.T) {
	calls := 0
	res := &Resource{Relations: map[string]Relation{
		"images": {Loader: func(ctx context.Context, parentKeys []any) (map[any][]Document, error) {
			calls++
			if len(parentKeys) != 2 {
				t.Fatalf("parentKeys = %v", parentKeys)
			}
			return map[any][]Document{
				uint64(1): {{"pk": uint64(10)}},
			}, nil
		}},
	}}

	docs := []Document{{"pk": uint64(1)}, {"pk": uint64(2)}}
	if err := Expand(context.Background(), res, docs, [][]string{{"images"}}); err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Fatalf("loader called %d times", calls)
	}
	kids, ok := docs[0]["images"].([]Document)
	if !ok || len(kids) != 1 {
		t.Fatalf("first doc images = %v", docs[0]["images"])
	}
	empty, ok := docs[1]["images"].([]Document)
	if !ok || len(empty) != 0 {
		t.Fatalf("second doc images should be empty list, got %v", docs[1]["images"])
	}
}

func TestExpandNestedPath(t *testing.T) {
	imageCalls := 0
	imageRes := &Resource{Relations: map[string]Relation{}}
	galaxyRes := &Resource{Relations: map[string]Relation{
		"images": {
			Loader: func(ctx context.Context, parentKeys []any) (map[any][]Document, error) {
				imageCalls++
				return map[any][]Document{
					uint64(5): {{"pk": uint64(50), "image": "m31.jpg"}},
				}, nil
			},
			Child: imageRes,
		},
	}}
	constellationRes := &Resource{Relations: map[string]Relation{
		"galaxies": {
			Loader: func(ctx context.Context, parentKeys []any) (map[any][]Document, error) {
				return map[any][]Document{
					uint64(1): {{"pk": uint64(5), "name": "Andromeda"}},
				}, nil
			},
			Child: galaxyRes,
		},
	}}

	docs := []Document{{"pk": uint64(1), "name": "Andromeda constellation"}}
	err := Expand(context.Background(), constellationRes, docs, [][]string{{"galaxies", "images"}})
	if err != nil {
		t.Fatal(err)
	}

	if imageCalls != 1 {
		t.Fatalf("nested loader called %d times", imageCalls)
	}
	galaxies := docs[0]["galaxies"].([]Document)
	images := galaxies[0]["images"].([]Document)
	if len(images) != 1 || images[0]["image"] != "m31.jpg" {
		t.Fatalf("nested expansion = %v", images)
	}
}

func TestExpandIgnoresUndeclaredRelation(t *testing.T) {
	res := &Resource{Relations: map[string]Relation{}}
	docs := []Document{{"pk": uint64(1)}}

	if err := Expand(context.Background(), res, docs, [][]string{{"owner"}}); err != nil {
		t.Fatal(err)
	}
	if _, ok := docs[0]["owner"]; ok {
		t.Fatal("undeclared relation should be ignored")
	}
}

func TestExpandPropagatesLoaderError(t *testing.T) {
	boom := errors.New("boom")
	res := &Resource{Relations: map[string]Relation{
		"images": {Loader: func(ctx context.Context, parentKeys []any) (map[any][]Document, error) {
			return nil, boom
		}},
	}}

	err := Expand(context.Background(), res, []Document{{"pk": uint64(1)}}, [][]string{{"images"}})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestShapeExpandsThenTrims(t *testing.T) {
	res := &Resource{Relations: map[string]Relation{
		"images": {Loader: func(ctx context.Context, parentKeys []any) (map[any][]Document, error) {
			return map[any][]Document{uint64(1): {{"pk": uint64(9)}}}, nil
		}},
	}}
	docs := []Document{{"pk": uint64(1), "name": "Andromeda", "notes": "x"}}

	params := Params{Fields: []string{"images"}, Expand: [][]string{{"images"}}}
	if err := Shape(context.Background(), res, docs, params); err != nil {
		t.Fatal(err)
	}

	if _, ok := docs[0]["images"]; !ok {
		t.Fatal("expanded relation trimmed away despite being selected")
	}
	if _, ok := docs[0]["name"]; ok {
		t.Fatal("name should be trimmed")
	}
}
