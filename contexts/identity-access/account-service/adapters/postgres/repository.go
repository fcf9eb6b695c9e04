package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"celestialbay/contexts/identity-access/account-service/domain/entities"
	domainerrors "celestialbay/contexts/identity-access/account-service/domain/errors"
)

type userModel struct {
	ID           string     `gorm:"column:id;primaryKey;type:uuid"`
	Email        string     `gorm:"column:email;size:254;uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	FirstName    string     `gorm:"column:first_name;size:150"`
	LastName     string     `gorm:"column:last_name;size:150"`
	DateJoined   time.Time  `gorm:"column:date_joined;not null"`
	LastLogin    *time.Time `gorm:"column:last_login"`
}

func (userModel) TableName() string { return "users" }

type revokedTokenModel struct {
	JTI       string    `gorm:"column:jti;primaryKey"`
	ExpiresAt time.Time `gorm:"column:expires_at;index;not null"`
	RevokedAt time.Time `gorm:"column:revoked_at;not null"`
}

func (revokedTokenModel) TableName() string { return "revoked_tokens" }

// Models lists the persisted models for schema migration.
func Models() []any {
	return []any{&userModel{}, &revokedTokenModel{}}
}

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) (entities.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, domainerrors.ErrEmailTaken
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUser(ctx context.Context, id string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateUser(ctx context.Context, user entities.User) error {
	result := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrEmailTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *Repository) EmailInUse(ctx context.Context, email string, excludeUserID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("email = ? AND id <> ?", email, excludeUserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", id).
		Update("last_login", at.UTC()).Error
}

// Revoke inserts the blacklist row, dropping expired rows on the way so
// the table stays bounded by the refresh TTL.
func (r *Repository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	now := time.Now().UTC()
	if err := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&revokedTokenModel{}).Error; err != nil {
		return err
	}

	row := revokedTokenModel{JTI: jti, ExpiresAt: expiresAt.UTC(), RevokedAt: now}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrTokenAlreadyRevoked
		}
		return err
	}
	return nil
}

func (r *Repository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&revokedTokenModel{}).
		Where("jti = ? AND expires_at >= ?", jti, time.Now().UTC()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func userModelFromEntity(user entities.User) userModel {
	return userModel{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		DateJoined:   user.DateJoined.UTC(),
		LastLogin:    user.LastLogin,
	}
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		DateJoined:   m.DateJoined,
		LastLogin:    m.LastLogin,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// SystemClock satisfies the Clock port with wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
