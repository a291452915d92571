package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paperbase/paperbase/constants"
	docsv1 "github.com/paperbase/paperbase/gen/proto/docs/v1"
	"github.com/paperbase/paperbase/internal/common"
	"github.com/paperbase/paperbase/internal/repository"
	"github.com/paperbase/paperbase/internal/utils"
)

type UsersService struct {
	docsv1.UnimplementedUsersServiceServer
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUsersService(users repository.UserRepository, logger *slog.Logger) *UsersService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsersService{users: users, logger: logger}
}

func (s *UsersService) CreateUser(ctx context.Context, req *docsv1.CreateUserRequest) (*docsv1.CreateUserResponse, error) {
	v := common.NewValidator().
		Field("phone", req.GetPhone(), common.Required, common.Phone).
		Field("password", req.GetPassword(), common.Required).
		Field("name", req.GetName(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	role, ok := constants.ParseRole(req.GetRole())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown role %q", req.GetRole())
	}

	u, err := s.users.Create(ctx, repository.CreateUserRequest{
		Phone:    strings.TrimSpace(req.GetPhone()),
		Password: req.GetPassword(),
		Name:     strings.TrimSpace(req.GetName()),
		Role:     role,
	})
	if err != nil {
		s.logger.Error("create user failed", "phone", req.GetPhone(), "error", err)
		return nil, status.Error(codes.Internal, "create user failed")
	}
	s.logger.Info("user created", "user_id", u.ID, "role", u.Role)
	return &docsv1.CreateUserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UsersService) ListUsers(ctx context.Context, req *docsv1.ListUsersRequest) (*docsv1.ListUsersResponse, error) {
	users, err := s.users.List(ctx, req.GetIncludeInactive())
	if err != nil {
		s.logger.Error("list users failed", "error", err)
		return nil, status.Error(codes.Internal, "list users failed")
	}
	out := make([]*docsv1.User, 0, len(users))
	for _, u := range users {
		out = append(out, utils.ToPBUser(u))
	}
	return &docsv1.ListUsersResponse{Users: out}, nil
}

func (s *UsersService) UpdateUserRole(ctx context.Context, req *docsv1.UpdateUserRoleRequest) (*docsv1.UpdateUserRoleResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	role, ok := constants.ParseRole(req.GetRole())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown role %q", req.GetRole())
	}

	u, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "user %s not found", id)
		}
		s.logger.Error("update user role failed", "user_id", id, "error", err)
		return nil, status.Error(codes.Internal, "update user role failed")
	}
	s.logger.Info("user role updated", "user_id", u.ID, "role", u.Role)
	return &docsv1.UpdateUserRoleResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UsersService) SetUserActive(ctx context.Context, req *docsv1.SetUserActiveRequest) (*docsv1.SetUserActiveResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.users.SetActive(ctx, id, req.GetActive()); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "user %s not found", id)
		}
		s.logger.Error("set user active failed", "user_id", id, "error", err)
		return nil, status.Error(codes.Internal, "set user active failed")
	}
	s.logger.Info("user active flag set", "user_id", id, "active", req.GetActive())
	return &docsv1.SetUserActiveResponse{}, nil
}
