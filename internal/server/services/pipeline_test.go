package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingHandler(name string, calls *[]string, hr *HandlerResult, err error) PasswordChangeHandler {
	return HandlerFunc(func(ctx context.Context, req *PasswordChangeRequest) (*HandlerResult, error) {
		*calls = append(*calls, name)
		return hr, err
	})
}

func TestPipeline_Run(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		build     func(calls *[]string) *Pipeline
		wantCalls []string
		changed   bool
		wantErr   error
	}{
		{
			name: "not applicable continues",
			build: func(calls *[]string) *Pipeline {
				return NewPipeline(
					recordingHandler("a", calls, &HandlerResult{}, nil),
					recordingHandler("b", calls, &HandlerResult{PasswordChanged: true}, nil),
				)
			},
			wantCalls: []string{"a", "b"},
			changed:   true,
		},
		{
			name: "halt skips the rest",
			build: func(calls *[]string) *Pipeline {
				return NewPipeline(
					recordingHandler("a", calls, &HandlerResult{PasswordChanged: true, Halt: true}, nil),
					recordingHandler("b", calls, &HandlerResult{}, nil),
				)
			},
			wantCalls: []string{"a"},
			changed:   true,
		},
		{
			name: "error stops",
			build: func(calls *[]string) *Pipeline {
				return NewPipeline(
					recordingHandler("a", calls, &HandlerResult{Halt: true}, boom),
					recordingHandler("b", calls, &HandlerResult{}, nil),
				)
			},
			wantCalls: []string{"a"},
			wantErr:   boom,
		},
		{
			name: "nil result is tolerated",
			build: func(calls *[]string) *Pipeline {
				return NewPipeline(recordingHandler("a", calls, nil, nil))
			},
			wantCalls: []string{"a"},
		},
		{
			name:  "empty",
			build: func(calls *[]string) *Pipeline { return NewPipeline() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			res, err := tt.build(&calls).Run(context.Background(), &PasswordChangeRequest{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, res)
			assert.Equal(t, tt.changed, res.AccountPasswordChanged)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}
