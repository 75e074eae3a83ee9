package model

import (
	"fmt"
	"strconv"
	"strings"
)

// LegacyEvent is an event record as the legacy system emits it. Fields are
// pointers so that a missing key stays nil instead of decoding to a zero value.
type LegacyEvent struct {
	Title            *string `json:"titulo_evento,omitempty" validate:"required"`
	Date             *string `json:"fecha_evento,omitempty" validate:"required"`
	Location         *string `json:"ubicacion,omitempty" validate:"required"`
	TotalCapacity    *Count  `json:"capacidad_total,omitempty" validate:"required"`
	AvailableTickets *Count  `json:"entradas_disponibles,omitempty" validate:"required"`
	Details          *string `json:"detalles,omitempty" validate:"required"`
}

// Count is a legacy counter. The legacy system sends it either as a JSON
// number or as a string holding a base 10 integer.
type Count int64

func (n *Count) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("count: invalid string %s: %w", s, err)
		}
		s = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("count: %s is not an integer", string(b))
	}
	*n = Count(v)
	return nil
}

// Int64 returns the count, or 0 for a nil count.
func (n *Count) Int64() int64 {
	if n == nil {
		return 0
	}
	return int64(*n)
}
