package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkamau/warehouse-api/internal/domain/user"
)

type UsersStore interface {
	List(ctx context.Context, f user.Filter) ([]user.User, error)
}

type UsersHandler struct {
	repo UsersStore
}

func NewUsersHandler(repo UsersStore) *UsersHandler {
	return &UsersHandler{repo: repo}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	users, err := h.repo.List(ctx.Request.Context(), user.Filter{})

	if err != nil {
		RespondInternal(ctx, "Could not list users")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UsersHandler) SearchUsers(ctx *gin.Context) {
	var f user.Filter

	if v, ok := ctx.GetQuery("username"); ok && v != "" {
		f.Username = &v
	}

	if v, ok := ctx.GetQuery("email"); ok && v != "" {
		f.Email = &v
	}

	users, err := h.repo.List(ctx.Request.Context(), f)

	if err != nil {
		RespondInternal(ctx, "Could not search users")
		return
	}

	ctx.JSON(http.StatusOK, users)
}
