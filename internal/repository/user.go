package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/gen/ent"
	"github.com/paperbase/paperbase/gen/ent/user"
	"github.com/paperbase/paperbase/internal/common"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/utils"
)

// CreateUserRequest wraps parameters for creating an account.
type CreateUserRequest struct {
	Phone    string
	Password string
	Name     string
	Role     constants.Role
}

type UserRepository interface {
	Create(ctx context.Context, req CreateUserRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	List(ctx context.Context, includeInactive bool) ([]*entity.User, error)
	// UpdateRole re-derives the permission flags from the new role.
	UpdateRole(ctx context.Context, id uuid.UUID, role constants.Role) (*entity.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	CheckPassword(ctx context.Context, phone, password string) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{client: client, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, req CreateUserRequest) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.WrapError(err, "hash password")
	}

	perms := constants.DefaultPermissions(req.Role)
	u, err := r.client.User.Create().
		SetPhone(req.Phone).
		SetPasswordHash(string(hash)).
		SetName(req.Name).
		SetRole(string(req.Role)).
		SetCanUpload(perms.CanUpload).
		SetCanViewAll(perms.CanViewAll).
		SetCanEdit(perms.CanEdit).
		SetCanDelete(perms.CanDelete).
		SetCanReprocess(perms.CanReprocess).
		SetCanExport(perms.CanExport).
		SetCanManageUsers(perms.CanManageUsers).
		SetCanViewAudit(perms.CanViewAudit).
		Save(ctx)
	if err != nil {
		r.logger.Error("user create failed", "phone", req.Phone, "error", err)
		return nil, err
	}
	r.logger.Info("user created", "user_id", u.ID, "role", u.Role)
	return utils.ToUser(u), nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	u, err := r.client.User.Query().Where(user.Phone(phone)).Only(ctx)
	if err != nil {
		return nil, notFound(err)
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) List(ctx context.Context, includeInactive bool) ([]*entity.User, error) {
	q := r.client.User.Query()
	if !includeInactive {
		q = q.Where(user.Active(true))
	}
	users, err := q.Order(ent.Asc(user.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, err
	}

	result := make([]*entity.User, len(users))
	for i, u := range users {
		result[i] = utils.ToUser(u)
	}
	return result, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role constants.Role) (*entity.User, error) {
	perms := constants.DefaultPermissions(role)
	u, err := r.client.User.UpdateOneID(id).
		SetRole(string(role)).
		SetCanUpload(perms.CanUpload).
		SetCanViewAll(perms.CanViewAll).
		SetCanEdit(perms.CanEdit).
		SetCanDelete(perms.CanDelete).
		SetCanReprocess(perms.CanReprocess).
		SetCanExport(perms.CanExport).
		SetCanManageUsers(perms.CanManageUsers).
		SetCanViewAudit(perms.CanViewAudit).
		Save(ctx)
	if err != nil {
		r.logger.Error("user role update failed", "user_id", id, "role", string(role), "error", err)
		return nil, notFound(err)
	}
	r.logger.Info("user role updated", "user_id", id, "role", u.Role)
	return utils.ToUser(u), nil
}

func (r *userRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.client.User.UpdateOneID(id).SetActive(active).Save(ctx)
	if err != nil {
		r.logger.Error("user active update failed", "user_id", id, "error", err)
		return notFound(err)
	}
	r.logger.Info("user active flag updated", "user_id", id, "active", active)
	return nil
}

func (r *userRepository) CheckPassword(ctx context.Context, phone, password string) (*entity.User, error) {
	u, err := r.client.User.Query().Where(user.Phone(phone), user.Active(true)).Only(ctx)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrUnauthorized
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.User.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("user delete failed", "user_id", id, "error", err)
		return err
	}
	r.logger.Info("user deleted", "user_id", id)
	return nil
}
