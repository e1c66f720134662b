package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldDistinguishesAbsentFromNull(t *testing.T) {
	var payload struct {
		Name Field `json:"name"`
	}

	t.Run("absent key", func(t *testing.T) {
		payload.Name = Field{}
		require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
		assert.False(t, payload.Name.Set)
	})

	t.Run("explicit null", func(t *testing.T) {
		payload.Name = Field{}
		require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &payload))
		assert.True(t, payload.Name.Set)
		assert.Nil(t, payload.Name.Value)
	})

	t.Run("string value", func(t *testing.T) {
		payload.Name = Field{}
		require.NoError(t, json.Unmarshal([]byte(`{"name":"x"}`), &payload))
		assert.True(t, payload.Name.Set)
		assert.Equal(t, "x", payload.Name.Value)
	})

	t.Run("number value", func(t *testing.T) {
		payload.Name = Field{}
		require.NoError(t, json.Unmarshal([]byte(`{"name":3}`), &payload))
		assert.True(t, payload.Name.Set)
		assert.Equal(t, float64(3), payload.Name.Value)
	})
}
