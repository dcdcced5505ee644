package http

import (
	"net/http"

	"github.com/fieldops/presence-backend-go/internal/domain/project"
	"github.com/fieldops/presence-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
