package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicate     = errors.New("already exists")
	ErrReferential   = errors.New("does not exist")
	ErrHasDependents = errors.New("has associated books")
)
