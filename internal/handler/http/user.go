package http

import (
	"net/http"

	"github.com/fieldops/presence-backend-go/internal/domain/project"
	"github.com/fieldops/presence-backend-go/internal/domain/user"
	"github.com/fieldops/presence-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListProjects(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService    user.Service
	projectService project.Service
}

func NewUserHandler(userService user.Service, projectService project.Service) UserHandler {
	return &userHandlerImpl{
		userService:    userService,
		projectService: projectService,
	}
}

// List implements UserHandler.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListProjects implements UserHandler.
func (h *userHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.projectService.ListByUser(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
