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

func (s Service) CreatePost(ctx context.Context, callerID string, in ports.PostWrite) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	if err := validatePostWrite(in); err != nil {
		return nil, err
	}

	now := s.now()
	owner := callerID
	created, err := s.Repo.CreatePost(ctx, entities.Post{
		Title:   strings.TrimSpace(*in.Title),
		Content: *in.Content,
		Created: now,
		Updated: now,
		OwnerID: &owner,
	})
	if err != nil {
		return nil, err
	}
	return postDoc(created), nil
}

func (s Service) GetPost(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	post, err := s.Repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := postDoc(post)
	if err := shaping.Shape(ctx, s.postResource(), []shaping.Document{doc}, shape); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s Service) ListPosts(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	posts, total, err := s.Repo.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]shaping.Document, 0, len(posts))
	for _, post := range posts {
		docs = append(docs, postDoc(post))
	}
	if err := shaping.Shape(ctx, s.postResource(), docs, shape); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (s Service) UpdatePost(ctx context.Context, callerID string, id uint64, in ports.PostWrite, partial bool) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	post, err := s.Repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.OwnerID == nil || *post.OwnerID != callerID {
		return nil, domainerrors.ErrPermissionDenied
	}
	if !partial {
		if err := validatePostWrite(in); err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		post.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	post.Updated = s.now()

	if err := s.Repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}
	return postDoc(post), nil
}

func (s Service) DeletePost(ctx context.Context, callerID string, id uint64) error {
	if err := requireAuth(callerID); err != nil {
		return err
	}
	post, err := s.Repo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if post.OwnerID == nil || *post.OwnerID != callerID {
		return domainerrors.ErrPermissionDenied
	}
	return s.Repo.DeletePost(ctx, id)
}

func (s Service) CreateComment(ctx context.Context, callerID string, in ports.CommentWrite) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	if err := validateCommentWrite(in); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetPost(ctx, *in.Post); err != nil {
		if errors.Is(err, domainerrors.ErrPostNotFound) {
			return nil, invalidParent("post", *in.Post)
		}
		return nil, err
	}

	now := s.now()
	owner := callerID
	created, err := s.Repo.CreateComment(ctx, entities.Comment{
		Content: *in.Content,
		Created: now,
		Updated: now,
		PostID:  *in.Post,
		OwnerID: &owner,
	})
	if err != nil {
		return nil, err
	}
	return commentDoc(created), nil
}

func (s Service) GetComment(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	comment, err := s.Repo.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := commentDoc(comment)
	shaping.Trim([]shaping.Document{doc}, shape)
	return doc, nil
}

func (s Service) ListComments(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	comments, total, err := s.Repo.ListComments(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]shaping.Document, 0, len(comments))
	for _, comment := range comments {
		docs = append(docs, commentDoc(comment))
	}
	shaping.Trim(docs, shape)
	return docs, total, nil
}

func (s Service) UpdateComment(ctx context.Context, callerID string, id uint64, in ports.CommentWrite, partial bool) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	comment, err := s.Repo.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID == nil || *comment.OwnerID != callerID {
		return nil, domainerrors.ErrPermissionDenied
	}
	if !partial {
		if err := validateCommentWrite(in); err != nil {
			return nil, err
		}
	}

	if in.Content != nil {
		comment.Content = *in.Content
	}
	if in.Post != nil {
		if _, err := s.Repo.GetPost(ctx, *in.Post); err != nil {
			if errors.Is(err, domainerrors.ErrPostNotFound) {
				return nil, invalidParent("post", *in.Post)
			}
			return nil, err
		}
		comment.PostID = *in.Post
	}
	comment.Updated = s.now()

	if err := s.Repo.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return commentDoc(comment), nil
}

func (s Service) DeleteComment(ctx context.Context, callerID string, id uint64) error {
	if err := requireAuth(callerID); err != nil {
		return err
	}
	comment, err := s.Repo.GetComment(ctx, id)
	if err != nil {
		return err
	}
	if comment.OwnerID == nil || *comment.OwnerID != callerID {
		return domainerrors.ErrPermissionDenied
	}
	return s.Repo.DeleteComment(ctx, id)
}

// Post images: the owner is transitive through the parent post.

func (s Service) CreatePostImage(ctx context.Context, callerID string, in ports.ImageWrite) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	parent, image, ppoi, err := s.validateImage("post", in)
	if err != nil {
		return nil, err
	}
	post, err := s.Repo.GetPost(ctx, parent)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPostNotFound) {
			return nil, invalidParent("post", parent)
		}
		return nil, err
	}
	if post.OwnerID == nil || *post.OwnerID != callerID {
		return nil, domainerrors.ErrPermissionDenied
	}
	created, err := s.Repo.CreatePostImage(ctx, entities.PostImage{
		PostID: parent,
		Image:  image,
		PPOI:   ppoi,
	})
	if err != nil {
		return nil, err
	}
	return postImageDoc(created), nil
}

func (s Service) GetPostImage(ctx context.Context, id uint64, shape shaping.Params) (shaping.Document, error) {
	image, err := s.Repo.GetPostImage(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := postImageDoc(image)
	if err := shaping.Shape(ctx, imageResource(), []shaping.Document{doc}, shape); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s Service) ListPostImages(ctx context.Context, shape shaping.Params, limit, offset int) ([]shaping.Document, int, error) {
	images, total, err := s.Repo.ListPostImages(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]shaping.Document, 0, len(images))
	for _, image := range images {
		docs = append(docs, postImageDoc(image))
	}
	shaping.Trim(docs, shape)
	return docs, total, nil
}

func (s Service) UpdatePostImage(ctx context.Context, callerID string, id uint64, in ports.ImageWrite, partial bool) (shaping.Document, error) {
	if err := requireAuth(callerID); err != nil {
		return nil, err
	}
	image, err := s.Repo.GetPostImage(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requirePostOwner(ctx, callerID, image.PostID); err != nil {
		return nil, err
	}
	if !partial {
		if _, _, _, err := s.validateImage("post", in); err != nil {
			return nil, err
		}
	}

	if in.Parent != nil {
		if err := s.requirePostOwner(ctx, callerID, *in.Parent); err != nil {
			if errors.Is(err, domainerrors.ErrPostNotFound) {
				return nil, invalidParent("post", *in.Parent)
			}
			return nil, err
		}
		image.PostID = *in.Parent
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

	if err := s.Repo.UpdatePostImage(ctx, image); err != nil {
		return nil, err
	}
	return postImageDoc(image), nil
}

func (s Service) DeletePostImage(ctx context.Context, callerID string, id uint64) error {
	if err := requireAuth(callerID); err != nil {
		return err
	}
	image, err := s.Repo.GetPostImage(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requirePostOwner(ctx, callerID, image.PostID); err != nil {
		return err
	}
	return s.Repo.DeletePostImage(ctx, id)
}

func (s Service) requirePostOwner(ctx context.Context, callerID string, postID uint64) error {
	post, err := s.Repo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.OwnerID == nil || *post.OwnerID != callerID {
		return domainerrors.ErrPermissionDenied
	}
	return nil
}

func validatePostWrite(in ports.PostWrite) error {
	if err := requireString("title", in.Title); err != nil {
		return err
	}
	return requireString("content", in.Content)
}

func validateCommentWrite(in ports.CommentWrite) error {
	if err := requireString("content", in.Content); err != nil {
		return err
	}
	if in.Post == nil {
		return domainerrors.NewValidation("post", "This field is required.")
	}
	return nil
}
