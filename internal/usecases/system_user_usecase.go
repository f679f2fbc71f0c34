package usecases

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"it-short.backend/internal/domain/entities"
	domainerrors "it-short.backend/internal/domain/errors"
	"it-short.backend/internal/domain/repositories"
	"it-short.backend/internal/infrastructure/storage"
	"it-short.backend/pkg/crypto"
	"it-short.backend/pkg/logger"
	"it-short.backend/pkg/token"
	"it-short.backend/pkg/utils"
)

// SystemUserUsecase handles system-user business logic
type SystemUserUsecase struct {
	userRepo repositories.SystemUserRepository
	hasher   *crypto.Hasher
	tokens   *token.Service
	files    storage.FileStore
}

// NewSystemUserUsecase creates a new system user usecase
func NewSystemUserUsecase(
	userRepo repositories.SystemUserRepository,
	hasher *crypto.Hasher,
	tokens *token.Service,
	files storage.FileStore,
) *SystemUserUsecase {
	return &SystemUserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		files:    files,
	}
}

// Create creates a system user and returns the generated id
func (u *SystemUserUsecase) Create(ctx context.Context, input *entities.CreateSystemUserInput) (string, error) {
	// Friendly duplicate check; the live-email unique index closes the race
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return "", domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return "", err
	}

	passwordHash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}

	// The image is written only after the duplicate check; a failed
	// write aborts the create
	imageRef, err := u.saveImage(ctx, input.Image, input.ImageType)
	if err != nil {
		return "", err
	}

	now := time.Now()
	user := &entities.SystemUser{
		ID:           utils.GenerateID(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNum:     input.PhoneNum,
		Gender:       input.Gender,
		Image:        imageRef,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// SignIn authenticates by email and password and attaches a fresh token
func (u *SystemUserUsecase) SignIn(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tok, err := u.tokens.Issue(user.ID, user.Email, time.Now())
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Token:     tok,
	}, nil
}

// Authenticate verifies a bearer token and resolves the live user behind
// it. Re-run on every protected request; there is no session cache.
func (u *SystemUserUsecase) Authenticate(ctx context.Context, tokenString string) (*entities.SystemUser, error) {
	claims, err := u.tokens.Verify(tokenString)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrMissingToken):
			return nil, domainerrors.Unauthorized("Missing token")
		case errors.Is(err, token.ErrInvalidToken), errors.Is(err, token.ErrExpiredToken):
			return nil, domainerrors.Unauthorized("Invalid token")
		default:
			logger.Error(ctx, "unexpected token verification failure", zap.Error(err))
			return nil, domainerrors.InternalError(err)
		}
	}

	user, err := u.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("User not found")
		}
		return nil, err
	}
	return user, nil
}

// Get gets a system user by id
func (u *SystemUserUsecase) Get(ctx context.Context, id string) (*entities.SystemUser, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ListBrief lists all live users as (id, name) pairs
func (u *SystemUserUsecase) ListBrief(ctx context.Context) ([]entities.SystemUserBrief, error) {
	return u.userRepo.ListBrief(ctx)
}

// List returns a searched, sorted, paginated page of users
func (u *SystemUserUsecase) List(ctx context.Context, params entities.ListParams) (*entities.SystemUserList, error) {
	params.Skip, params.Limit = utils.SkipLimit(params.Skip, params.Limit)
	return u.userRepo.List(ctx, params)
}

// Update overwrites the profile fields of a user
func (u *SystemUserUsecase) Update(ctx context.Context, id string, input *entities.UpdateSystemUserInput) (*entities.SystemUser, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	imageRef, err := u.saveImage(ctx, input.Image, input.ImageType)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	user.Gender = input.Gender
	user.PhoneNum = input.PhoneNum
	if imageRef.Valid {
		user.Image = imageRef
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}

// Delete soft-deletes a user
func (u *SystemUserUsecase) Delete(ctx context.Context, id string) error {
	return u.userRepo.SoftDelete(ctx, id)
}

// saveImage decodes an inline base64 data URI and writes it to file
// storage, returning the stored reference. An empty payload is a no-op.
func (u *SystemUserUsecase) saveImage(ctx context.Context, payload, imageType string) (null.String, error) {
	if payload == "" {
		return null.String{}, nil
	}

	parts := strings.SplitN(payload, ",", 2)
	if len(parts) != 2 {
		return null.String{}, domainerrors.ErrInvalidInput
	}
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return null.String{}, domainerrors.ErrInvalidInput
	}

	ext := ".jpg"
	if imageType == "image/png" {
		ext = ".png"
	}

	path, err := u.files.Save(ctx, utils.GenerateID()+ext, data)
	if err != nil {
		return null.String{}, err
	}
	return null.StringFrom(path), nil
}
