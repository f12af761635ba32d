package sector

import "errors"

var (
	ErrSectorNotFound   = errors.New("sector not found")
	ErrSectorNameExists = errors.New("a sector with this name already exists")
)
