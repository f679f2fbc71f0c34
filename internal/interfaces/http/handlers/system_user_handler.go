package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"it-short.backend/internal/domain/entities"
	domainerrors "it-short.backend/internal/domain/errors"
	"it-short.backend/internal/interfaces/http/response"
	"it-short.backend/internal/usecases"
)

// SystemUserHandler handles the /admin system-user endpoints
type SystemUserHandler struct {
	userUsecase *usecases.SystemUserUsecase
}

// NewSystemUserHandler creates a new system user handler
func NewSystemUserHandler(userUsecase *usecases.SystemUserUsecase) *SystemUserHandler {
	return &SystemUserHandler{userUsecase: userUsecase}
}

// SignIn handles sign-in
// POST /admin/login
func (h *SystemUserHandler) SignIn(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	auth, err := h.userUsecase.SignIn(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.Unauthorized("Invalid credentials"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

// Create handles system-user creation
// POST /admin/system_users
func (h *SystemUserHandler) Create(c *gin.Context) {
	var input entities.CreateSystemUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	id, err := h.userUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			response.Error(c, domainerrors.Conflict("User already exist."))
		case errors.Is(err, domainerrors.ErrInvalidInput):
			response.Error(c, domainerrors.UnprocessableEntity("invalid image payload"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// GetAll returns the brief list of all live users
// GET /admin/system_users/all
func (h *SystemUserHandler) GetAll(c *gin.Context) {
	briefs, err := h.userUsecase.ListBrief(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, briefs)
}

// Get returns one user by id
// GET /admin/system_users/:id
func (h *SystemUserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("No User available to show"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// List returns a searched, sorted, paginated page of users
// GET /admin/system_users?skip&limit&sort_by&order&search
func (h *SystemUserHandler) List(c *gin.Context) {
	params := entities.ListParams{
		Skip:   intQuery(c, "skip", 0),
		Limit:  intQuery(c, "limit", 10),
		SortBy: c.DefaultQuery("sort_by", "all"),
		Order:  c.DefaultQuery("order", "all"),
		Search: c.DefaultQuery("search", "all"),
	}

	page, err := h.userUsecase.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// Update overwrites a user's profile fields
// PUT /admin/system_users/:id
func (h *SystemUserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.UpdateSystemUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.UnprocessableEntity(err.Error()))
		return
	}

	user, err := h.userUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("No User available to show"))
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			response.Error(c, domainerrors.Conflict("User already exist."))
		case errors.Is(err, domainerrors.ErrInvalidInput):
			response.Error(c, domainerrors.UnprocessableEntity("invalid image payload"))
		default:
			response.Error(c, err)
		}
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Delete soft-deletes a user
// DELETE /admin/system_users/:id
func (h *SystemUserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("No User available to show"))
			return
		}
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID validates the 36-character id path parameter
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if len(id) != 36 {
		response.Error(c, domainerrors.UnprocessableEntity("id must be 36 characters"))
		return "", false
	}
	return id, true
}

func intQuery(c *gin.Context, key string, defaultValue int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return defaultValue
}
