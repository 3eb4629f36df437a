package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"careerpilot_backend/internal/models"
	"careerpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegistration(t *testing.T) {
	ts := getServer(t)

	suffix := time.Now().UnixNano()
	body := map[string]interface{}{
		"clerk_user_id": fmt.Sprintf("clerk_reg_%d", suffix),
		"email":         fmt.Sprintf("reg_%d@test.com", suffix),
		"name":          "New User",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/users/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "unexpected response: "+bodyStr)

	var created struct {
		Tokens int    `json:"tokens"`
		Email  string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Equal(t, 10000, created.Tokens, "new accounts start with the signup grant")

	// Same email again is a conflict.
	body["clerk_user_id"] = fmt.Sprintf("clerk_reg2_%d", suffix)
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/users/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestUserMeRequiresAuth(t *testing.T) {
	ts := getServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestUserOnboarding(t *testing.T) {
	ts := getServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts.DB, &models.User{})

	exp := 5
	body := map[string]interface{}{
		"industry":   "tech-software-development",
		"bio":        "Backend engineer",
		"experience": exp,
		"skills":     []string{"Go", "PostgreSQL"},
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me/onboard", token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, "unexpected response: "+bodyStr)

	var updated struct {
		Industry *string  `json:"industry"`
		Skills   []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	require.NotNil(t, updated.Industry)
	assert.Equal(t, "tech-software-development", *updated.Industry)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, updated.Skills)

	// Onboarding against an unseen industry creates a placeholder insight
	// row for the refresh worker to fill.
	var insight models.IndustryInsight
	require.NoError(t, ts.DB.First(&insight, "industry = ?", "tech-software-development").Error)
}

func TestUserDelete(t *testing.T) {
	ts := getServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts.DB, &models.User{})

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	var count int64
	require.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Token for a deleted account no longer resolves.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
