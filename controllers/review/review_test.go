package reviewController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casinohub/testhelpers"
)

func TestCreateReview(t *testing.T) {
	app := testhelpers.SetupApp(t)
	alice := testhelpers.Signup(t, app, "alice@example.com", "password123", "Alice")
	bob := testhelpers.Signup(t, app, "bob@example.com", "password123", "Bob")
	casinoId := testhelpers.CreateCasino(t, app, "Golden Nugget")

	code, envelope := testhelpers.DoRequest(t, app, http.MethodPost, "/review/create", alice, map[string]interface{}{
		"stars":     5,
		"comment":   "Great",
		"casino_id": casinoId,
	})
	require.Equal(t, http.StatusCreated, code)

	var review struct {
		ID       uint   `json:"id"`
		Stars    int    `json:"stars"`
		Comment  string `json:"comment"`
		UserID   uint   `json:"user_id"`
		CasinoID uint   `json:"casino_id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &review))
	assert.NotZero(t, review.ID)
	assert.Equal(t, 5, review.Stars)
	assert.Equal(t, "Great", review.Comment)
	assert.Equal(t, casinoId, review.CasinoID)

	// Same user, same casino: the composite unique index rejects it
	code, envelope = testhelpers.DoRequest(t, app, http.MethodPost, "/review/create", alice, map[string]interface{}{
		"stars":     4,
		"comment":   "Changed my mind",
		"casino_id": casinoId,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "You have already reviewed this casino!", envelope.Message)

	// A different user may review the same casino
	code, _ = testhelpers.DoRequest(t, app, http.MethodPost, "/review/create", bob, map[string]interface{}{
		"stars":     3,
		"comment":   "It was fine",
		"casino_id": casinoId,
	})
	assert.Equal(t, http.StatusCreated, code)
}

func TestCreateReviewRequiresToken(t *testing.T) {
	app := testhelpers.SetupApp(t)
	casinoId := testhelpers.CreateCasino(t, app, "Golden Nugget")

	code, _ := testhelpers.DoRequest(t, app, http.MethodPost, "/review/create", "", map[string]interface{}{
		"stars":     5,
		"comment":   "Great",
		"casino_id": casinoId,
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestCreateReviewUnknownCasino(t *testing.T) {
	app := testhelpers.SetupApp(t)
	alice := testhelpers.Signup(t, app, "alice@example.com", "password123", "Alice")

	code, envelope := testhelpers.DoRequest(t, app, http.MethodPost, "/review/create", alice, map[string]interface{}{
		"stars":     5,
		"comment":   "Great",
		"casino_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Casino not found!", envelope.Message)
}

func TestCreateReviewStarsOutOfRange(t *testing.T) {
	app := testhelpers.SetupApp(t)
	alice := testhelpers.Signup(t, app, "alice@example.com", "password123", "Alice")
	casinoId := testhelpers.CreateCasino(t, app, "Golden Nugget")

	for _, stars := range []int{-1, 0, 6, 100} {
		code, envelope := testhelpers.DoRequest(t, app, http.MethodPost, "/review/create", alice, map[string]interface{}{
			"stars":     stars,
			"comment":   "Out of range",
			"casino_id": casinoId,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, code, "stars=%d", stars)
		assert.Equal(t, "Validation failed!", envelope.Message)
	}

	// Boundary validation wins even when the casino does not exist
	code, _ := testhelpers.DoRequest(t, app, http.MethodPost, "/review/create", alice, map[string]interface{}{
		"stars":     6,
		"comment":   "Out of range",
		"casino_id": 9999,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestListReviews(t *testing.T) {
	app := testhelpers.SetupApp(t)
	casinoA := testhelpers.CreateCasino(t, app, "Golden Nugget")
	casinoB := testhelpers.CreateCasino(t, app, "Silver Star")

	for i := 1; i <= 4; i++ {
		token := testhelpers.Signup(t, app, fmt.Sprintf("user%d@example.com", i), "password123", fmt.Sprintf("User %d", i))

		target := casinoA
		if i > 2 {
			target = casinoB
		}
		code, _ := testhelpers.DoRequest(t, app, http.MethodPost, "/review/create", token, map[string]interface{}{
			"stars":     i,
			"comment":   fmt.Sprintf("Comment %d", i),
			"casino_id": target,
		})
		require.Equal(t, http.StatusCreated, code)
	}

	type page struct {
		Reviews []struct {
			ID       uint   `json:"id"`
			Stars    int    `json:"stars"`
			CasinoID uint   `json:"casino_id"`
			UserName string `json:"user_name"`
		} `json:"reviews"`
	}

	// Unfiltered list returns everything in stable id order
	code, envelope := testhelpers.DoRequest(t, app, http.MethodGet, "/review/list", "", nil)
	require.Equal(t, http.StatusOK, code)

	var all page
	require.NoError(t, json.Unmarshal(envelope.Data, &all))
	require.Len(t, all.Reviews, 4)
	for i := 1; i < len(all.Reviews); i++ {
		assert.Less(t, all.Reviews[i-1].ID, all.Reviews[i].ID)
	}
	assert.Equal(t, "User 1", all.Reviews[0].UserName)

	// Filtered by casino
	code, envelope = testhelpers.DoRequest(t, app, http.MethodGet, fmt.Sprintf("/review/list?casino_id=%d", casinoB), "", nil)
	require.Equal(t, http.StatusOK, code)

	var filtered page
	require.NoError(t, json.Unmarshal(envelope.Data, &filtered))
	require.Len(t, filtered.Reviews, 2)
	for _, r := range filtered.Reviews {
		assert.Equal(t, casinoB, r.CasinoID)
	}

	// offset/limit paging on the filtered list
	code, envelope = testhelpers.DoRequest(t, app, http.MethodGet, fmt.Sprintf("/review/list?casino_id=%d&offset=1&limit=1", casinoB), "", nil)
	require.Equal(t, http.StatusOK, code)

	var paged page
	require.NoError(t, json.Unmarshal(envelope.Data, &paged))
	require.Len(t, paged.Reviews, 1)
	assert.Equal(t, filtered.Reviews[1].ID, paged.Reviews[0].ID)
}
