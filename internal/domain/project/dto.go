package project

type ProjectResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Client *string `json:"client,omitempty"`
	Active bool    `json:"active"`
}

func NewProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:     p.ID,
		Name:   p.Name,
		Client: p.Client,
		Active: p.Active,
	}
}

func NewProjectResponses(projects []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
