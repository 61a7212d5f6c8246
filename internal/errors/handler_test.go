package errors

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/cristianoliveira/gridsettings/internal/colors"
	"github.com/cristianoliveira/gridsettings/internal/group"
	"github.com/cristianoliveira/gridsettings/internal/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockColorOutput is a mock implementation of ColorOutput for testing.
type mockColorOutput struct {
	mu       sync.Mutex
	errors   []string
	warnings []string
}

func (m *mockColorOutput) Error(msgs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fmt.Sprint(msgs))
}

func (m *mockColorOutput) Warning(msgs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fmt.Sprint(msgs))
}

func TestCLIHandlerHandle(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantErrors   int
		wantWarnings []string
	}{
		{
			name: "nil error prints nothing",
		},
		{
			name:       "plain error",
			err:        errors.New("failed to open input"),
			wantErrors: 1,
		},
		{
			name: "rejected changeset names the field",
			err: fmt.Errorf("changeset rejected: %w", &setting.ChangesetError{
				Kind: setting.InvalidDeleteGroupPayload,
				Err:  group.ErrGroupIDIsEmpty,
			}),
			wantErrors:   1,
			wantWarnings: []string{"[rejected field: delete_group (invalid_delete_group_payload)]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &mockColorOutput{}
			NewCLIHandler(out).Handle(tt.err)

			assert.Len(t, out.errors, tt.wantErrors)
			assert.Equal(t, tt.wantWarnings, out.warnings)
		})
	}
}

func TestCLIHandlerConcurrentHandle(t *testing.T) {
	out := &mockColorOutput{}
	handler := NewCLIHandler(out)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handler.Handle(fmt.Errorf("error %d", i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, out.errors, 20)
}

func TestDefaultCLIHandlerWritesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	colors.SetOutput(&stdout, &stderr)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })

	handler := NewDefaultCLIHandler()
	require.NotNil(t, handler)
	_, ok := handler.colors.(*ColorsOutput)
	assert.True(t, ok, "default CLI handler should use ColorsOutput")

	handler.Handle(&setting.ChangesetError{Kind: setting.InvalidIdentifier, Err: setting.ErrViewIDInvalid})

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error:")
	assert.Contains(t, stderr.String(), "invalid grid_id")
	assert.Contains(t, stderr.String(), "rejected field: grid_id (invalid_identifier)")
}
