package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Gender is the enumerated gender of a system user
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// SystemUser represents an administrative user
type SystemUser struct {
	ID           string      `json:"id"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Email        string      `json:"email"`
	PhoneNum     string      `json:"phone_num"`
	Gender       Gender      `json:"gender"`
	Image        null.String `json:"image,omitempty"`
	PasswordHash string      `json:"-"`
	IsDeleted    bool        `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Name returns the display name
func (u *SystemUser) Name() string {
	return u.FirstName + " " + u.LastName
}

// CreateSystemUserInput represents input for creating a system user.
// Image, when present, is a base64 data URI.
type CreateSystemUserInput struct {
	FirstName string `json:"first_name" binding:"required,min=3,max=50"`
	LastName  string `json:"last_name" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email,min=5,max=50"`
	Password  string `json:"password" binding:"required,min=3,max=50"`
	PhoneNum  string `json:"phone_num" binding:"required,min=10,max=15"`
	Gender    Gender `json:"gender" binding:"required,oneof=Male Female Other"`
	Image     string `json:"image"`
	ImageType string `json:"image_type"`
}

// UpdateSystemUserInput represents input for updating profile fields.
// Password and id are immutable post-creation.
type UpdateSystemUserInput struct {
	FirstName string `json:"first_name" binding:"required,min=3,max=50"`
	LastName  string `json:"last_name" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email,min=5,max=50"`
	PhoneNum  string `json:"phone_num" binding:"required,min=10,max=15"`
	Gender    Gender `json:"gender" binding:"required,oneof=Male Female Other"`
	Image     string `json:"image"`
	ImageType string `json:"image_type"`
}

// LoginInput represents input for sign-in
type LoginInput struct {
	Email    string `json:"email" binding:"required,email,min=5,max=50"`
	Password string `json:"password" binding:"required,min=3,max=50"`
}

// AuthResponse is the sign-in response; the token is transient and
// never persisted.
type AuthResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// SystemUserBrief is the compact listing row
type SystemUserBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListParams holds search, sort and pagination parameters.
// SortBy, Order and Search default to "all", meaning not applied.
type ListParams struct {
	Skip   int
	Limit  int
	SortBy string
	Order  string
	Search string
}

// SystemUserList is a page of users with the total filtered count
type SystemUserList struct {
	Count int64         `json:"count"`
	List  []*SystemUser `json:"list"`
}
