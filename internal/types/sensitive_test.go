package types

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensitiveRedaction(t *testing.T) {
	secret := NewSensitive("hunter2")

	t.Run("String redacts the value", func(t *testing.T) {
		assert.Equal(t, "[REDACTED]", secret.String())
		assert.Equal(t, "[REDACTED]", fmt.Sprintf("%s", secret))
		assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", secret))
	})

	t.Run("GoString redacts the value", func(t *testing.T) {
		assert.NotContains(t, fmt.Sprintf("%#v", secret), "hunter2")
	})

	t.Run("JSON marshalling redacts the value", func(t *testing.T) {
		data, err := json.Marshal(secret)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hunter2")
	})

	t.Run("empty value renders empty", func(t *testing.T) {
		assert.Equal(t, "", Sensitive{}.String())
		assert.False(t, Sensitive{}.IsSet())
	})

	t.Run("Reveal returns the raw value", func(t *testing.T) {
		assert.Equal(t, "hunter2", secret.Reveal())
		assert.True(t, secret.IsSet())
	})
}

func TestSensitiveYamlRoundTrip(t *testing.T) {
	var wrapper struct {
		Password Sensitive `yaml:"password"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("password: hunter2\n"), &wrapper))
	assert.Equal(t, "hunter2", wrapper.Password.Reveal())
}
