package user

import "time"

type User struct {
	ID        string
	FullName  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
