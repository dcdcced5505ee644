package project

import "errors"

// Project domain errors
var (
	ErrProjectNotFound = errors.New("project not found")
)
