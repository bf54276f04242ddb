package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipe-realm/backend/internal/service"
)

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &service.PersistenceError{Phase: service.PhaseInstructionInsert, Err: cause}

	assert.Equal(t, "error saving recipe (instruction-insert): connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
}
