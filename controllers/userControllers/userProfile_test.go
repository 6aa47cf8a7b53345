package userController_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casinohub/testhelpers"
)

func TestGetProfile(t *testing.T) {
	app := testhelpers.SetupApp(t)
	token := testhelpers.Signup(t, app, "alice@example.com", "password123", "Alice")

	code, envelope := testhelpers.DoRequest(t, app, http.MethodGet, "/user/me", token, nil)
	require.Equal(t, http.StatusOK, code)

	var user struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &user))
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
}

func TestGetProfileRequiresToken(t *testing.T) {
	app := testhelpers.SetupApp(t)

	code, _ := testhelpers.DoRequest(t, app, http.MethodGet, "/user/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = testhelpers.DoRequest(t, app, http.MethodGet, "/user/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestUpdateProfile(t *testing.T) {
	app := testhelpers.SetupApp(t)
	token := testhelpers.Signup(t, app, "alice@example.com", "password123", "Alice")

	code, envelope := testhelpers.DoRequest(t, app, http.MethodPatch, "/user/me", token, map[string]interface{}{
		"name": "Alice Cooper",
	})
	require.Equal(t, http.StatusOK, code)

	var user struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &user))
	assert.Equal(t, "Alice Cooper", user.Name)

	// The rename must be visible on a fresh read
	code, envelope = testhelpers.DoRequest(t, app, http.MethodGet, "/user/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(envelope.Data, &user))
	assert.Equal(t, "Alice Cooper", user.Name)
}

func TestUpdateProfileValidation(t *testing.T) {
	app := testhelpers.SetupApp(t)
	token := testhelpers.Signup(t, app, "alice@example.com", "password123", "Alice")

	code, envelope := testhelpers.DoRequest(t, app, http.MethodPatch, "/user/me", token, map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "Validation failed!", envelope.Message)
}
