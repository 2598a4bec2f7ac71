package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(c, "MISSING", "8080"))
	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	assert.Equal(t, 30, GetInt(c, "TIMEOUT", 180))
	assert.Equal(t, 180, GetInt(c, "BAD", 180))
	assert.Equal(t, 180, GetInt(c, "MISSING", 180))
}

func TestGetBool(t *testing.T) {
	c := map[string]string{"ON": "true", "OFF": "0", "BAD": "maybe"}

	assert.True(t, GetBool(c, "ON", false))
	assert.False(t, GetBool(c, "OFF", true))
	assert.True(t, GetBool(c, "BAD", true))
}

func TestGetStrings(t *testing.T) {
	c := map[string]string{"ACCEPTED_ORIGINS": "http://localhost:3000, https://admin.example.com,,"}

	assert.Equal(t, []string{"http://localhost:3000", "https://admin.example.com"}, GetStrings(c, "ACCEPTED_ORIGINS"))
	assert.Nil(t, GetStrings(c, "MISSING"))
}

func TestSplit(t *testing.T) {
	key, value := split("DSN=host=db port=5432")
	assert.Equal(t, "DSN", key)
	assert.Equal(t, "host=db port=5432", value)

	key, value = split("NOVALUE")
	assert.Equal(t, "NOVALUE", key)
	assert.Equal(t, "", value)
}
