package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"celestialbay/contexts/identity-access/account-service/application"
	"celestialbay/contexts/identity-access/account-service/ports"
	httptransport "celestialbay/contexts/identity-access/account-service/transport/http"
	"celestialbay/internal/shared/shaping"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, callerID string, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	user, err := h.Service.Register(ctx, callerID, ports.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	result, err := h.Service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	resp := httptransport.LoginResponse{Access: result.Access, Refresh: result.Refresh}
	resp.User.ID = result.User.ID
	resp.User.FirstName = result.User.FirstName
	resp.User.LastName = result.User.LastName
	resp.User.Email = result.User.Email
	return resp, nil
}

func (h Handler) RefreshHandler(ctx context.Context, req httptransport.RefreshRequest) (httptransport.RefreshResponse, error) {
	access, err := h.Service.Refresh(ctx, req.Refresh)
	if err != nil {
		return httptransport.RefreshResponse{}, err
	}
	return httptransport.RefreshResponse{Access: access}, nil
}

func (h Handler) LogoutHandler(ctx context.Context, callerID string, req httptransport.LogoutRequest) error {
	return h.Service.Logout(ctx, callerID, req.RefreshToken)
}

func (h Handler) ChangePasswordHandler(ctx context.Context, callerID, targetID string, req httptransport.ChangePasswordRequest) error {
	return h.Service.ChangePassword(ctx, callerID, strings.TrimSpace(targetID), req.OldPassword, req.Password, req.Password2)
}

func (h Handler) UpdateUserHandler(ctx context.Context, callerID, targetID string, req httptransport.UpdateUserRequest) (httptransport.UpdateUserResponse, error) {
	user, err := h.Service.UpdateUser(ctx, callerID, strings.TrimSpace(targetID), req.Email, req.FirstName, req.LastName)
	if err != nil {
		return httptransport.UpdateUserResponse{}, err
	}
	return httptransport.UpdateUserResponse{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (h Handler) GetUserHandler(ctx context.Context, id string, shape shaping.Params) (shaping.Document, error) {
	return h.Service.GetUser(ctx, strings.TrimSpace(id), shape)
}
