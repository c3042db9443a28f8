package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuplicatePersonError(t *testing.T) {
	err := NewDuplicatePersonError("Alex")

	assert.Equal(t, ErrorTypeConflict, err.Type)
	assert.Equal(t, CodeDuplicatePerson, err.Code)
	assert.Equal(t, "Alex already exists in the network.", err.Message)
	assert.Equal(t, http.StatusConflict, err.HTTPStatus)
	assert.Equal(t, "Alex", err.Details["name"])
	assert.True(t, IsDuplicatePerson(err))
	assert.True(t, IsConflict(err))
	assert.False(t, IsMissingPerson(err))
}

func TestNewMissingPersonError(t *testing.T) {
	err := NewMissingPersonError("Johnny")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "Friendship not created. One or both people do not exist!", err.Message)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, []string{"Johnny"}, err.Details["missing"])
	assert.True(t, IsMissingPerson(err))
	assert.True(t, IsNotFound(err))
}

func TestHelpersFollowWrappedChains(t *testing.T) {
	wrapped := fmt.Errorf("command handler failed: %w", NewMissingPersonError("X"))

	require.True(t, IsAppError(wrapped))
	assert.True(t, IsMissingPerson(wrapped))
	assert.Equal(t, CodeMissingPerson, GetAppError(wrapped).Code)
	assert.False(t, IsAppError(fmt.Errorf("plain")))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantNil  bool
		wantType ErrorType
	}{
		{name: "nil stays nil", err: nil, wantNil: true},
		{name: "app error keeps type", err: NewValidationError("bad"), wantType: ErrorTypeValidation},
		{name: "plain error becomes internal", err: fmt.Errorf("boom"), wantType: ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, "context")
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.Error(t, got)
			assert.True(t, IsType(got, tt.wantType))
			assert.Contains(t, got.Error(), "context")
		})
	}
}
