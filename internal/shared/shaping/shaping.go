// Package shaping derives the serialized shape of a response from the
// fields, omit and expand query parameters shared by every list and
// retrieve endpoint.
//
// Select a subset of top-level fields by either naming the ones to include
// (?fields=pk,name) or the ones to exclude (?omit=notes). When both are
// given, fields wins and omit is ignored. The primary key survives both.
//
// Relations declared in a Resource table may be inlined with
// ?expand=images; dot notation reaches into an expanded relation's own
// declared relations (?expand=galaxies.images). Undeclared names are
// ignored. Each expanded relation is loaded with a single bulk fetch
// covering every parent row in the response.
package shaping

import (
	"context"
	"net/url"
	"strings"
)

// Document is one serialized resource instance.
type Document map[string]any

// Params carries the parsed shape of a single request.
type Params struct {
	Fields []string
	Omit   []string
	Expand [][]string
}

func ParseParams(query url.Values) Params {
	return Params{
		Fields: splitList(query.Get("fields")),
		Omit:   splitList(query.Get("omit")),
		Expand: splitPaths(query.Get("expand")),
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func splitPaths(raw string) [][]string {
	var paths [][]string
	for _, item := range splitList(raw) {
		paths = append(paths, strings.Split(item, "."))
	}
	return paths
}

// Loader bulk-fetches the related documents for every parent key at once
// and returns them grouped by parent key. Keys match the parents' "pk"
// document values.
type Loader func(ctx context.Context, parentKeys []any) (map[any][]Document, error)

// Relation is one declared expandable relation of a Resource. Child, when
// set, allows dot-nested expansion into the related documents.
type Relation struct {
	Loader Loader
	Child  *Resource
}

// Resource is the finite, statically declared expansion table of one
// resource type.
type Resource struct {
	Relations map[string]Relation
}

// Expand inlines the requested relations into docs in place. One loader
// call is made per expanded relation regardless of the number of parents.
func Expand(ctx context.Context, res *Resource, docs []Document, paths [][]string) error {
	if res == nil || len(docs) == 0 || len(paths) == 0 {
		return nil
	}

	nested := make(map[string][][]string)
	order := make([]string, 0, len(paths))
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		head := path[0]
		if _, seen := nested[head]; !seen {
			order = append(order, head)
		}
		if len(path) > 1 {
			nested[head] = append(nested[head], path[1:])
		} else if _, seen := nested[head]; !seen {
			nested[head] = nil
		}
	}

	for _, name := range order {
		relation, declared := res.Relations[name]
		if !declared {
			continue
		}

		keys := make([]any, 0, len(docs))
		for _, doc := range docs {
			keys = append(keys, doc["pk"])
		}

		grouped, err := relation.Loader(ctx, keys)
		if err != nil {
			return err
		}

		var children []Document
		for _, doc := range docs {
			kids := grouped[doc["pk"]]
			if kids == nil {
				kids = []Document{}
			}
			doc[name] = kids
			children = append(children, kids...)
		}

		if remainders := nested[name]; len(remainders) > 0 {
			if err := Expand(ctx, relation.Child, children, remainders); err != nil {
				return err
			}
		}
	}
	return nil
}

// Trim applies the fields allow-list or the omit deny-list to every
// document. The "pk" field is never removed.
func Trim(docs []Document, params Params) {
	if len(params.Fields) > 0 {
		keep := make(map[string]bool, len(params.Fields)+1)
		keep["pk"] = true
		for _, field := range params.Fields {
			keep[field] = true
		}
		for _, doc := range docs {
			for key := range doc {
				if !keep[key] {
					delete(doc, key)
				}
			}
		}
		return
	}

	for _, field := range params.Omit {
		if field == "pk" {
			continue
		}
		for _, doc := range docs {
			delete(doc, field)
		}
	}
}

// Shape runs expansion then trimming over docs for one request.
func Shape(ctx context.Context, res *Resource, docs []Document, params Params) error {
	if err := Expand(ctx, res, docs, params.Expand); err != nil {
		return err
	}
	Trim(docs, params)
	return nil
}
