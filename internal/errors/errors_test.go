package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewAppError(ErrTypeArgument, "unsupported metric", nil),
			want: "[ARGUMENT] unsupported metric",
		},
		{
			name: "with cause",
			err:  NewAppError(ErrTypeInput, "cannot read source", errors.New("no such file")),
			want: "[INPUT] cannot read source: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk gone")
	err := NewInputError("data/Boxoffice_Fact.csv", cause)

	assert.True(t, errors.Is(err, cause))

	var appErr *AppError
	require.True(t, errors.As(fmt.Errorf("load: %w", err), &appErr))
	assert.Equal(t, ErrTypeInput, appErr.Type)
	assert.Equal(t, "data/Boxoffice_Fact.csv", appErr.Context["path"])
}

func TestNewSchemaError(t *testing.T) {
	err := NewSchemaError("actor_metrics", []string{"lead_actor_actress"})

	assert.Equal(t, ErrTypeSchema, err.Type)
	assert.Contains(t, err.Error(), "actor_metrics")
	assert.Contains(t, err.Error(), "lead_actor_actress")
	assert.Equal(t, "actor_metrics", err.Context["aggregation"])
}

func TestNewArgumentError(t *testing.T) {
	err := NewArgumentError("metric", "domestic", []string{"worldwide", "india", "overseas", "firstday"})

	assert.Equal(t, ErrTypeArgument, err.Type)
	assert.Contains(t, err.Error(), `"domestic"`)
	assert.Contains(t, err.Error(), "worldwide")
}

func TestNewJoinFanOutError(t *testing.T) {
	err := NewJoinFanOutError("director", "D07")

	assert.Equal(t, ErrTypeJoinFanOut, err.Type)
	assert.Contains(t, err.Error(), "director")
	assert.Contains(t, err.Error(), `"D07"`)
}

func TestIsType(t *testing.T) {
	err := NewArgumentError("by", "month", []string{"year", "weekday"})

	assert.True(t, IsType(err, ErrTypeArgument))
	assert.False(t, IsType(err, ErrTypeSchema))
	assert.False(t, IsType(errors.New("plain"), ErrTypeArgument))
}
