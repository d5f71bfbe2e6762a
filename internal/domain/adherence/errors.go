package adherence

import "errors"

// Errores de contrato: uso incorrecto de la API por parte del llamador.
// Los registros mal formados nunca producen error; se degradan (ver NormalizeStatus / ParseLocalDate).
var (
	ErrInvalidMonthIndex = errors.New("month index must be between 0 and 11")
	ErrInvalidYear       = errors.New("year must not be negative")
)
