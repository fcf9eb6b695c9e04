package httpadapter

import (
	"context"
	"log/slog"

	"celestialbay/contexts/sky-catalog/catalog-service/application"
	"celestialbay/contexts/sky-catalog/catalog-service/ports"
	httptransport "celestialbay/contexts/sky-catalog/catalog-service/transport/http"
	"celestialbay/internal/shared/shaping"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetConstellationHandler(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	return h.Service.GetConstellation(ctx, id, shape)
}

func (h Handler) ListConstellationsHandler(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	return h.Service.ListConstellations(ctx, shape, limit, offset)
}

func (h Handler) GetConstellationImageHandler(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	return h.Service.GetConstellationImage(ctx, id, shape)
}

func (h Handler) CreateGalaxyHandler(ctx context.Context, callerID string, req httptransport.GalaxyRequest) (shaping.Document, error) {
	return h.Service.CreateGalaxy(ctx, callerID, galaxyWrite(req))
}

func (h Handler) GetGalaxyHandler(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	return h.Service.GetGalaxy(ctx, id, shape)
}

func (h Handler) ListGalaxiesHandler(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	return h.Service.ListGalaxies(ctx, shape, limit, offset)
}

func (h Handler) UpdateGalaxyHandler(ctx context.Context, callerID string, id uint64, req httptransport.GalaxyRequest, partial bool) (shaping.Document, error) {
	return h.Service.UpdateGalaxy(ctx, callerID, id, galaxyWrite(req), partial)
}

func (h Handler) DeleteGalaxyHandler(ctx context.Context, callerID string, id uint64) error {
	return h.Service.DeleteGalaxy(ctx, callerID, id)
}

func (h Handler) CreateGalaxyImageHandler(ctx context.Context, callerID string, req httptransport.GalaxyImageRequest) (shaping.Document, error) {
	return h.Service.CreateGalaxyImage(ctx, callerID, ports.ImageWrite{Parent: req.Galaxy, Image: req.Image, PPOI: req.ImagePPOI})
}

func (h Handler) GetGalaxyImageHandler(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	return h.Service.GetGalaxyImage(ctx, id, shape)
}

func (h Handler) ListGalaxyImagesHandler(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	return h.Service.ListGalaxyImages(ctx, shape, limit, offset)
}

func (h Handler) UpdateGalaxyImageHandler(ctx context.Context, callerID string, id uint64, req httptransport.GalaxyImageRequest, partial bool) (shaping.Document, error) {
	return h.Service.UpdateGalaxyImage(ctx, callerID, id, ports.ImageWrite{Parent: req.Galaxy, Image: req.Image, PPOI: req.ImagePPOI}, partial)
}

func (h Handler) DeleteGalaxyImageHandler(ctx context.Context, callerID string, id uint64) error {
	return h.Service.DeleteGalaxyImage(ctx, callerID, id)
}

func (h Handler) CreatePostHandler(ctx context.Context, callerID string, req httptransport.PostRequest) (shaping.Document, error) {
	return h.Service.CreatePost(ctx, callerID, ports.PostWrite{Title: req.Title, Content: req.Content})
}

func (h Handler) GetPostHandler(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	return h.Service.GetPost(ctx, id, shape)
}

func (h Handler) ListPostsHandler(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	return h.Service.ListPosts(ctx, shape, limit, offset)
}

func (h Handler) UpdatePostHandler(ctx context.Context, callerID string, id uint64, req httptransport.PostRequest, partial bool) (shaping.Document, error) {
	return h.Service.UpdatePost(ctx, callerID, id, ports.PostWrite{Title: req.Title, Content: req.Content}, partial)
}

func (h Handler) DeletePostHandler(ctx context.Context, callerID string, id uint64) error {
	return h.Service.DeletePost(ctx, callerID, id)
}

func (h Handler) CreateCommentHandler(ctx context.Context, callerID string, req httptransport.CommentRequest) (shaping.Document, error) {
	return h.Service.CreateComment(ctx, callerID, ports.CommentWrite{Content: req.Content, Post: req.Post})
}

func (h Handler) GetCommentHandler(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	return h.Service.GetComment(ctx, id, shape)
}

func (h Handler) ListCommentsHandler(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	return h.Service.ListComments(ctx, shape, limit, offset)
}

func (h Handler) UpdateCommentHandler(ctx context.Context, callerID string, id uint64, req httptransport.CommentRequest, partial bool) (shaping.Document, error) {
	return h.Service.UpdateComment(ctx, callerID, id, ports.CommentWrite{Content: req.Content, Post: req.Post}, partial)
}

func (h Handler) DeleteCommentHandler(ctx context.Context, callerID string, id uint64) error {
	return h.Service.DeleteComment(ctx, callerID, id)
}

func (h Handler) CreatePostImageHandler(ctx context.Context, callerID string, req httptransport.PostImageRequest) (shaping.Document, error) {
	return h.Service.CreatePostImage(ctx, callerID, ports.ImageWrite{Parent: req.Post, Image: req.Image, PPOI: req.ImagePPOI})
}

func (h Handler) GetPostImageHandler(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	return h.Service.GetPostImage(ctx, id, shape)
}

func (h Handler) ListPostImagesHandler(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	return h.Service.ListPostImages(ctx, shape, limit, offset)
}

func (h Handler) UpdatePostImageHandler(ctx context.Context, callerID string, id uint64, req httptransport.PostImageRequest, partial bool) (shaping.Document, error) {
	return h.Service.UpdatePostImage(ctx, callerID, id, ports.ImageWrite{Parent: req.Post, Image: req.Image, PPOI: req.ImagePPOI}, partial)
}

func (h Handler) DeletePostImageHandler(ctx context.Context, callerID string, id uint64) error {
	return h.Service.DeletePostImage(ctx, callerID, id)
}

func galaxyWrite(req httptransport.GalaxyRequest) ports.GalaxyWrite {
	return ports.GalaxyWrite{
		Name:              req.Name,
		NameOrigin:        req.NameOrigin,
		GalaxyType:        req.GalaxyType,
		Distance:          req.Distance,
		ApparentMagnitude: req.ApparentMagnitude,
		Size:              req.Size,
		Notes:             req.Notes,
		Constellation:     req.Constellation,
	}
}
