// Package adapter is the anti-corruption layer between the legacy event
// system and the modern event schema. Nothing of the legacy shape leaks past
// Translate: callers get either a complete model.Event or a *TranslationError.
package adapter

import (
	"context"
	"errors"
	"eventers-legacy-adapter/legacy"
	"eventers-legacy-adapter/logger"
	"eventers-legacy-adapter/model"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Legacy keys, in schema order.
const (
	FieldTitle            = "titulo_evento"
	FieldDate             = "fecha_evento"
	FieldLocation         = "ubicacion"
	FieldTotalCapacity    = "capacidad_total"
	FieldAvailableTickets = "entradas_disponibles"
	FieldDetails          = "detalles"
)

const dateSeparator = "/"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// New returns an adapter reading from the given legacy system.
func New(system legacy.System) *Adapter {
	return &Adapter{system: system}
}

// Adapter fetches events from a legacy system and hands them out in the
// modern schema.
type Adapter struct {
	system legacy.System
}

// FetchEventDetails gets the event from the legacy system and translates it.
// Failures of the legacy system, including panics, come back as
// KindUnexpected.
func (a *Adapter) FetchEventDetails(ctx context.Context) (e *model.Event, err error) {
	defer recoverUnexpected(ctx, "fetchEventDetails", &e, &err)

	le, err := a.system.GetEventInfo(ctx)
	if err != nil {
		te := unexpected(fmt.Errorf("fetchEventDetails: error getting event info: %w", err))
		logger.Errorf(ctx, "fetchEventDetails: %s", te)
		return nil, te
	}

	return Translate(ctx, le)
}

// Translate maps a legacy event onto the modern schema. Any failure is logged
// and returned as a *TranslationError with a nil event.
func Translate(ctx context.Context, le *model.LegacyEvent) (e *model.Event, err error) {
	defer recoverUnexpected(ctx, "translate", &e, &err)

	e, err = translate(le)
	if err != nil {
		logger.Errorf(ctx, "translate: could not adapt legacy event: %s", err)
		return nil, err
	}
	return e, nil
}

// recoverUnexpected must be deferred directly. It turns a panic into a logged
// KindUnexpected failure and clears the event.
func recoverUnexpected(ctx context.Context, fn string, e **model.Event, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*e = nil
	*err = unexpected(fmt.Errorf("%s: recovered from panic: %v", fn, r))
	logger.Errorf(ctx, "%s: %s", fn, *err)
}

func translate(le *model.LegacyEvent) (*model.Event, error) {
	if le == nil {
		return nil, missingField(FieldTitle)
	}

	if err := validate.Struct(le); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			return nil, missingField(ves[0].Field())
		}
		return nil, unexpected(fmt.Errorf("translate: error validating legacy event: %w", err))
	}

	date, err := reformatDate(*le.Date)
	if err != nil {
		return nil, err
	}

	total := le.TotalCapacity.Int64()
	available := le.AvailableTickets.Int64()
	if subOverflows(total, available) {
		return nil, unexpected(fmt.Errorf("translate: tickets sold overflows: %d - %d", total, available))
	}

	// available > total is not rejected; tickets sold goes negative.
	return &model.Event{
		EventName:        *le.Title,
		EventDate:        date,
		Venue:            *le.Location,
		TotalCapacity:    total,
		TicketsSold:      total - available,
		AvailableTickets: available,
		EventDescription: *le.Details,
	}, nil
}

// reformatDate turns DD/MM/YYYY into YYYY-MM-DD. Components are copied as
// they are; only their count and digits are checked, not their ranges.
func reformatDate(raw string) (string, error) {
	parts := strings.Split(raw, dateSeparator)
	if len(parts) != 3 {
		return "", malformedDate(raw, fmt.Errorf("expected day/month/year, got %d component(s)", len(parts)))
	}

	for _, p := range parts {
		if !isDigits(p) {
			return "", malformedDate(raw, fmt.Errorf("component %q is not numeric", p))
		}
	}

	day, month, year := parts[0], parts[1], parts[2]
	return year + "-" + month + "-" + day, nil
}

func subOverflows(a, b int64) bool {
	return (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
