package author

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthorRequestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"Jane Austen"}`, want: "Jane Austen"},
		{name: "trims whitespace", body: `{"name":"  Jane Austen  "}`, want: "Jane Austen"},
		{name: "missing", body: `{}`, wantErr: "name is required"},
		{name: "null", body: `{"name":null}`, wantErr: "name is required"},
		{name: "empty string", body: `{"name":""}`, wantErr: "name is required"},
		{name: "whitespace only", body: `{"name":"   "}`, wantErr: "name is required"},
		{name: "number", body: `{"name":42}`, wantErr: "name is required"},
		{name: "boolean", body: `{"name":true}`, wantErr: "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateAuthorRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			params, err := req.Normalize()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, params.Name)
		})
	}
}

func TestUpdateAuthorRequestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"New Name"}`, want: "New Name"},
		{name: "trims whitespace", body: `{"name":"  New Name "}`, want: "New Name"},
		{name: "no fields", body: `{}`, wantErr: "No fields to update"},
		{name: "unknown fields only", body: `{"bio":"x"}`, wantErr: "No fields to update"},
		{name: "null name", body: `{"name":null}`, wantErr: "name must be a non-empty string"},
		{name: "empty name", body: `{"name":""}`, wantErr: "name must be a non-empty string"},
		{name: "blank name", body: `{"name":"  "}`, wantErr: "name must be a non-empty string"},
		{name: "numeric name", body: `{"name":7}`, wantErr: "name must be a non-empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateAuthorRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			patch, err := req.Normalize()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, patch.Name)
			assert.Equal(t, tt.want, *patch.Name)
		})
	}
}

func TestAuthorResponseProjection(t *testing.T) {
	a := Author{ID: 3, Name: "Jane Austen", BookCount: 2}

	plain, err := json.Marshal(a.ToResponse())
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "book_count")

	detail, err := json.Marshal(a.ToDetailResponse())
	require.NoError(t, err)
	assert.Contains(t, string(detail), `"book_count":2`)
}
