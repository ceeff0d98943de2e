package server

import (
	"errors"
	"net/http"
	"testing"

	"gramsahayak/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"villager not found", types.ErrVillagerNotFound, http.StatusNotFound},
		{"official not found", types.ErrOfficialNotFound, http.StatusNotFound},
		{"complaint not found", types.ErrComplaintNotFound, http.StatusNotFound},
		{"scheme not found", types.ErrSchemeNotFound, http.StatusNotFound},
		{"invalid id", types.ErrInvalidID, http.StatusBadRequest},
		{"phone taken", types.ErrPhoneTaken, http.StatusBadRequest},
		{"bad phone", types.ErrBadPhone, http.StatusBadRequest},
		{"not reopenable", types.ErrNotReopenable, http.StatusBadRequest},
		{"bad login", types.ErrBadLogin, http.StatusUnauthorized},
		{"village mismatch", types.ErrVillageMismatch, http.StatusForbidden},
		{"phone mismatch", types.ErrPhoneMismatch, http.StatusForbidden},
		{"resolve window closed", types.ErrResolveWindowClosed, http.StatusForbidden},
		{"not official", types.ErrNotOfficial, http.StatusForbidden},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestStatusForErrorWrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("while resolving"), types.ErrResolveWindowClosed)
	assert.Equal(t, http.StatusForbidden, statusForError(wrapped))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, validPhone("9876543210"))
	assert.False(t, validPhone("987654321"))
	assert.False(t, validPhone("98765432100"))
	assert.False(t, validPhone("98765abcde"))
	assert.False(t, validPhone(""))
	assert.False(t, validPhone("+919876543"))
}
