// Package invariant checks the record invariants the core promises to maintain.
// Violations indicate a caller bug; tests use these checks to fail loudly.
package invariant

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
)

// ErrInvariant is the marker error for aggregated invariant failures.
// Field-level details are retrieved via FieldErrors(err).
var ErrInvariant = errors.New("invariant violated")

// FieldError describes a single violated field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type invariantError struct {
	fields []FieldError
}

func (e *invariantError) Error() string {
	if len(e.fields) == 1 {
		return fmt.Sprintf("%s: %s %s", ErrInvariant, e.fields[0].Field, e.fields[0].Message)
	}
	return fmt.Sprintf("%s: %d fields", ErrInvariant, len(e.fields))
}
func (e *invariantError) Unwrap() error        { return ErrInvariant }
func (e *invariantError) Fields() []FieldError { return e.fields }

func newInvariantError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invariantError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated invariant error.
func FieldErrors(err error) []FieldError {
	var ie *invariantError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}

var (
	once     sync.Once
	validate *validator.Validate
)

func v() *validator.Validate {
	once.Do(func() { validate = validator.New() })
	return validate
}

func structErrors(prefix string, s any) []FieldError {
	err := v().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: prefix, Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   prefix + fe.Namespace(),
			Message: fmt.Sprintf("failed %s=%s (got %v)", fe.Tag(), fe.Param(), fe.Value()),
		})
	}
	return out
}

func playerErrors(prefix string, p model.Player) []FieldError {
	ferrs := structErrors(prefix, p)
	if !p.Position.Valid() {
		ferrs = append(ferrs, FieldError{Field: prefix + "Player.Position", Message: "unknown position"})
	}
	if p.SecondaryPosition != nil {
		if *p.SecondaryPosition == p.Position {
			ferrs = append(ferrs, FieldError{Field: prefix + "Player.SecondaryPosition", Message: "must differ from primary"})
		}
		if !p.SecondaryPosition.Valid() {
			ferrs = append(ferrs, FieldError{Field: prefix + "Player.SecondaryPosition", Message: "unknown position"})
		}
	}
	if p.Wage != nil && *p.Wage < 0 {
		ferrs = append(ferrs, FieldError{Field: prefix + "Player.Wage", Message: "must be >= 0"})
	}
	return ferrs
}

// Player validates a single player record.
func Player(p model.Player) error {
	return newInvariantError(playerErrors("", p))
}

// Team validates a team and every player it owns, including exclusive ownership.
func Team(t model.Team) error {
	ferrs := structErrors("", t)
	seen := make(map[string]bool, len(t.Players))
	for i, p := range t.Players {
		prefix := fmt.Sprintf("Players[%d].", i)
		ferrs = append(ferrs, playerErrors(prefix, p)...)
		if p.TeamID != t.ID {
			ferrs = append(ferrs, FieldError{Field: prefix + "Player.TeamID", Message: "must match owning team"})
		}
		if seen[p.ID] {
			ferrs = append(ferrs, FieldError{Field: prefix + "Player.ID", Message: "duplicate player in roster"})
		}
		seen[p.ID] = true
	}
	return newInvariantError(ferrs)
}

// League validates that no player is owned by two teams at once.
func League(teams []model.Team) error {
	var ferrs []FieldError
	owner := map[string]string{}
	for _, t := range teams {
		if err := Team(t); err != nil {
			ferrs = append(ferrs, FieldErrors(err)...)
		}
		for _, p := range t.Players {
			if prev, ok := owner[p.ID]; ok && prev != t.ID {
				ferrs = append(ferrs, FieldError{Field: "Player." + p.ID, Message: "owned by " + prev + " and " + t.ID})
			}
			owner[p.ID] = t.ID
		}
	}
	return newInvariantError(ferrs)
}
