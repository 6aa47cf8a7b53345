package testhelpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"casinohub/config"
	"casinohub/database"
	"casinohub/models"
	authRoutes "casinohub/routers/authRoutes"
	casinoRoutes "casinohub/routers/casinoRoutes"
	reviewRoutes "casinohub/routers/reviewRoutes"
	userRoutes "casinohub/routers/userRoutes"
)

// Envelope is the standard response body shape.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// SetupDB points the global database handle at an isolated in-memory
// SQLite database and installs a test configuration. Each test gets its
// own database, keyed by the test name.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		DBDriver:  "sqlite",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		TokenTTL:  24,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Casino{}, &models.Review{}))

	database.Database = database.DbInstance{Db: db}
	return db
}

// SetupApp builds a fiber app with the full route surface, backed by a
// fresh test database.
func SetupApp(t *testing.T) *fiber.App {
	t.Helper()
	SetupDB(t)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	casinoRoutes.SetupCasinoRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	return app
}

// DoRequest performs a request against the app and decodes the response
// envelope. An empty token skips the Authorization header.
func DoRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

// Signup registers a user and returns the issued token.
func Signup(t *testing.T, app *fiber.App, email, password, name string) string {
	t.Helper()

	code, envelope := DoRequest(t, app, http.MethodPost, "/auth/signup", "", map[string]interface{}{
		"email":    email,
		"password": password,
		"name":     name,
	})
	require.Equal(t, http.StatusCreated, code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

// CreateCasino creates a casino and returns its id.
func CreateCasino(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()

	code, envelope := DoRequest(t, app, http.MethodPost, "/casino/create", "", map[string]interface{}{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, code)

	var casino struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &casino))
	require.NotZero(t, casino.ID)
	return casino.ID
}
