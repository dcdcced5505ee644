package project

import "time"

type Project struct {
	ID        string
	Name      string
	Client    *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
