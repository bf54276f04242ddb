package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationRequired is returned when a save is attempted with
	// no signed-in user. Nothing is written.
	ErrAuthenticationRequired = errors.New("you must be signed in to save a recipe")

	// ErrTitleRequired is returned for drafts with an empty title.
	// Nothing is written.
	ErrTitleRequired = errors.New("recipe title is required")
)

// Phase identifies which statement of the save sequence failed.
type Phase string

const (
	PhaseRecipeInsert      Phase = "recipe-insert"
	PhaseIngredientResolve Phase = "ingredient-resolve"
	PhaseIngredientLink    Phase = "ingredient-link"
	PhaseInstructionInsert Phase = "instruction-insert"
	PhaseTagResolve        Phase = "tag-resolve"
	PhaseTagLink           Phase = "tag-link"
)

// PersistenceError wraps a remote-store failure with the phase of the save
// sequence it occurred in. Statements already committed stay committed.
type PersistenceError struct {
	Phase Phase
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error saving recipe (%s): %v", e.Phase, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
