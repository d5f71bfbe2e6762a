package memory

import "errors"

// ErrAlreadyExists: los "no encontrado" usan el sentinel de cada dominio.
var ErrAlreadyExists = errors.New("already exists")
