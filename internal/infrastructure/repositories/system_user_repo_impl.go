package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"it-short.backend/internal/domain/entities"
	domainerrors "it-short.backend/internal/domain/errors"
	"it-short.backend/internal/infrastructure/models"
)

// SystemUserRepository implements system-user data operations on GORM
type SystemUserRepository struct {
	db *gorm.DB
}

// NewSystemUserRepository creates a new system user repository
func NewSystemUserRepository(db *gorm.DB) *SystemUserRepository {
	return &SystemUserRepository{db: db}
}

// Create inserts a new user. A unique-index violation on a live email
// maps to ErrAlreadyExists.
func (r *SystemUserRepository) Create(ctx context.Context, user *entities.SystemUser) error {
	m := r.toModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicate(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a live user by id
func (r *SystemUserRepository) GetByID(ctx context.Context, id string) (*entities.SystemUser, error) {
	var m models.SystemUser
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a live user by email
func (r *SystemUserRepository) GetByEmail(ctx context.Context, email string) (*entities.SystemUser, error) {
	var m models.SystemUser
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListBrief lists all live users as (id, name) pairs ordered by name
func (r *SystemUserRepository) ListBrief(ctx context.Context) ([]entities.SystemUserBrief, error) {
	var rows []models.SystemUser
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("first_name, last_name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	briefs := make([]entities.SystemUserBrief, 0, len(rows))
	for _, m := range rows {
		briefs = append(briefs, entities.SystemUserBrief{
			ID:   m.ID,
			Name: m.FirstName + " " + m.LastName,
		})
	}
	return briefs, nil
}

// List returns a page of live users matching the search term, with the
// count of the full filtered set taken before pagination.
func (r *SystemUserRepository) List(ctx context.Context, params entities.ListParams) (*entities.SystemUserList, error) {
	query := r.db.WithContext(ctx).
		Model(&models.SystemUser{}).
		Where("is_deleted = ?", false)

	if params.Search != "" && params.Search != "all" {
		term := "%" + params.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone_num LIKE ?",
			term, term, term, term,
		)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}

	desc := params.Order == "desc"
	switch params.SortBy {
	case "name":
		query = query.Order(sortClause("first_name", desc)).Order(sortClause("last_name", desc))
	case "email":
		query = query.Order(sortClause("email", desc))
	case "gender":
		query = query.Order(sortClause("gender", desc)).
			Order(sortClause("first_name", desc)).
			Order(sortClause("last_name", desc))
	default:
		query = query.Order("created_at DESC")
	}

	var rows []models.SystemUser
	if err := query.Offset(params.Skip).Limit(params.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.SystemUser, 0, len(rows))
	for _, m := range rows {
		model := m
		users = append(users, r.toEntity(&model))
	}
	return &entities.SystemUserList{Count: count, List: users}, nil
}

// Update overwrites the profile fields of a live user and stamps
// updated_at. Password and id are left untouched.
func (r *SystemUserRepository) Update(ctx context.Context, user *entities.SystemUser) error {
	updates := map[string]interface{}{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"gender":     string(user.Gender),
		"phone_num":  user.PhoneNum,
		"updated_at": time.Now(),
	}
	if user.Image.Valid {
		updates["image"] = user.Image.String
	}

	result := r.db.WithContext(ctx).
		Model(&models.SystemUser{}).
		Where("id = ? AND is_deleted = ?", user.ID, false).
		Updates(updates)
	if result.Error != nil {
		if isDuplicate(result.Error) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete marks a live user as deleted
func (r *SystemUserRepository) SoftDelete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.SystemUser{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *SystemUserRepository) toModel(u *entities.SystemUser) *models.SystemUser {
	return &models.SystemUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.PasswordHash,
		PhoneNum:  u.PhoneNum,
		Gender:    string(u.Gender),
		Image:     u.Image.Ptr(),
		IsDeleted: u.IsDeleted,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *SystemUserRepository) toEntity(m *models.SystemUser) *entities.SystemUser {
	return &entities.SystemUser{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PhoneNum:     m.PhoneNum,
		Gender:       entities.Gender(m.Gender),
		Image:        null.StringFromPtr(m.Image),
		PasswordHash: m.Password,
		IsDeleted:    m.IsDeleted,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func sortClause(column string, desc bool) string {
	if desc {
		return column + " DESC"
	}
	return column
}

// isDuplicate detects unique-constraint violations across drivers
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
