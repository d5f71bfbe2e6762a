package adherence

import (
	"strings"
	"unicode"
)

// Category es la clasificación canónica de un estado de toma.
// @Enum OnTime, Late, Missed, Unclassified, None
type Category string

const (
	CategoryOnTime       Category = "OnTime"
	CategoryLate         Category = "Late"
	CategoryMissed       Category = "Missed"
	CategoryUnclassified Category = "Unclassified"

	// CategoryNone solo aparece como estado dominante de un día sin registros.
	CategoryNone Category = "None"
)

func (c Category) String() string { return string(c) }

// NormalizeStatus convierte una etiqueta libre ("On time", "taken", "MISSED ") a su categoría.
//
// Reglas, en orden:
//   - se pasa a minúsculas y se eliminan espacios, '-' y '_'
//   - contiene "miss" => Missed
//   - contiene "late" => Late
//   - es exactamente "on", contiene "ontime" o contiene "taken" => OnTime
//   - cualquier otra cosa => Unclassified
//
// No se acepta "on" como substring suelto: "none", "pending confirmation" o
// "unconfirmed" no son tomas a tiempo.
func NormalizeStatus(raw string) Category {
	key := statusKey(raw)
	switch {
	case key == "":
		return CategoryUnclassified
	case strings.Contains(key, "miss"):
		return CategoryMissed
	case strings.Contains(key, "late"):
		return CategoryLate
	case key == "on", strings.Contains(key, "ontime"), strings.Contains(key, "taken"):
		return CategoryOnTime
	default:
		return CategoryUnclassified
	}
}

func statusKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// rank ordena categorías para el estado dominante de un día (peor primero).
func (c Category) rank() int {
	switch c {
	case CategoryMissed:
		return 3
	case CategoryLate:
		return 2
	case CategoryOnTime:
		return 1
	default:
		return 0
	}
}
