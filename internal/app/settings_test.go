package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/gridsettings/internal/codec"
	"github.com/cristianoliveira/gridsettings/internal/filter"
	"github.com/cristianoliveira/gridsettings/internal/format"
	"github.com/cristianoliveira/gridsettings/internal/group"
	"github.com/cristianoliveira/gridsettings/internal/setting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsClient struct {
	readErr     error
	snapshotErr error
	validated   []setting.SettingChangeset
}

func (f *fakeSettingsClient) Layouts() []setting.GridLayoutEntity {
	return setting.AllGridLayouts()
}

func (f *fakeSettingsClient) ReadChangeset(r io.Reader, fmt codec.Format) (setting.SettingChangeset, error) {
	if f.readErr != nil {
		return setting.SettingChangeset{}, f.readErr
	}
	return codec.DecodeChangeset(r, fmt)
}

func (f *fakeSettingsClient) ValidateChangeset(changeset setting.SettingChangeset) (setting.SettingChangesetParams, error) {
	f.validated = append(f.validated, changeset)
	return changeset.ToParams()
}

func (f *fakeSettingsClient) ReadSnapshot(r io.Reader, fmt codec.Format) (setting.GridSetting, error) {
	if f.snapshotErr != nil {
		return setting.GridSetting{}, f.snapshotErr
	}
	return codec.DecodeSnapshot(r, fmt)
}

func TestNewSettingsUseCasePanicsOnNilClient(t *testing.T) {
	require.PanicsWithValue(t, "NewSettingsUseCase: client dependency cannot be nil", func() {
		NewSettingsUseCase(nil)
	})
}

func TestSettingsUseCaseLayouts(t *testing.T) {
	uc := NewSettingsUseCase(&fakeSettingsClient{})

	var buf bytes.Buffer
	require.NoError(t, uc.Layouts(OutputOptions{Format: format.FormatterTypeJSON, Writer: &buf}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "table", got[0]["ty"])
	assert.Equal(t, "board", got[1]["ty"])
}

func TestSettingsUseCaseValidate(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantErr   bool
		wantKind  setting.ErrorKind
		wantField string
		wantIs    error
	}{
		{
			name: "accepts layout only",
			doc:  `{"grid_id":"g1","layout_type":"board"}`,
		},
		{
			name: "accepts insert filter",
			doc:  `{"grid_id":"g1","insert_filter":{"field_id":"f1","field_type":"number","condition":2,"content":"10"}}`,
		},
		{
			name:      "rejects empty grid id",
			doc:       `{"grid_id":"  "}`,
			wantErr:   true,
			wantKind:  setting.InvalidIdentifier,
			wantField: "grid_id",
			wantIs:    setting.ErrViewIDInvalid,
		},
		{
			name:      "rejects delete group without group id",
			doc:       `{"grid_id":"g1","delete_group":{"field_id":"f1","field_type":"checkbox"}}`,
			wantErr:   true,
			wantKind:  setting.InvalidDeleteGroupPayload,
			wantField: "delete_group",
			wantIs:    group.ErrGroupIDIsEmpty,
		},
		{
			name:      "rejects insert filter condition out of range",
			doc:       `{"grid_id":"g1","insert_filter":{"field_id":"f1","field_type":"checkbox","condition":5}}`,
			wantErr:   true,
			wantKind:  setting.InvalidInsertFilterPayload,
			wantField: "insert_filter",
			wantIs:    filter.ErrInvalidCondition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSettingsClient{}
			uc := NewSettingsUseCase(client)

			var buf bytes.Buffer
			params, err := uc.Validate(DocumentInput{
				Reader: strings.NewReader(tt.doc),
				Format: codec.FormatJSON,
				Output: OutputOptions{Format: format.FormatterTypeJSON, Writer: &buf},
			})
			require.Len(t, client.validated, 1)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "changeset rejected")
				assert.Contains(t, err.Error(), tt.wantField)
				assert.Equal(t, tt.wantKind, setting.KindOf(err))
				assert.True(t, errors.Is(err, tt.wantIs))
				assert.Empty(t, buf.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "g1", params.GridID)

			var out map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
			assert.Equal(t, "g1", out["grid_id"])
			assert.Equal(t, params.IsFilterChanged(), out["filter_changed"])
		})
	}
}

func TestSettingsUseCaseValidateReadError(t *testing.T) {
	readErr := errors.New("boom")
	client := &fakeSettingsClient{readErr: readErr}
	uc := NewSettingsUseCase(client)

	_, err := uc.Validate(DocumentInput{Reader: strings.NewReader("{}"), Format: codec.FormatJSON})
	require.ErrorIs(t, err, readErr)
	assert.Empty(t, client.validated)
}

func TestSettingsUseCaseSnapshot(t *testing.T) {
	uc := NewSettingsUseCase(&fakeSettingsClient{})

	doc := `
layout_type = "board"

[[filters.items]]
id = "flt1"
field_id = "f1"
field_type = "rich_text"
condition = 0
content = "abc"
`
	var buf bytes.Buffer
	snapshot, err := uc.Snapshot(DocumentInput{
		Reader: strings.NewReader(doc),
		Format: codec.FormatTOML,
		Output: OutputOptions{Format: format.FormatterTypeTable, Writer: &buf},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Filters.Len())
	assert.Contains(t, buf.String(), "flt1")
	assert.Contains(t, buf.String(), "board")
}

func TestSettingsUseCaseSnapshotError(t *testing.T) {
	snapErr := errors.New("bad snapshot")
	uc := NewSettingsUseCase(&fakeSettingsClient{snapshotErr: snapErr})

	_, err := uc.Snapshot(DocumentInput{Reader: strings.NewReader(""), Format: codec.FormatJSON})
	require.ErrorIs(t, err, snapErr)
}

func TestOpenInput(t *testing.T) {
	t.Run("stdin uses fallback format", func(t *testing.T) {
		rc, f, err := OpenInput(StdinPath, strings.NewReader("x"), codec.FormatTOML)
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, codec.FormatTOML, f)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "x", string(data))
	})

	t.Run("file extension picks format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "changeset.toml")
		require.NoError(t, os.WriteFile(path, []byte(`grid_id = "g1"`), 0o644))

		rc, f, err := OpenInput(path, nil, codec.FormatJSON)
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, codec.FormatTOML, f)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := OpenInput(filepath.Join(t.TempDir(), "missing.json"), nil, codec.FormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open input")
	})
}
