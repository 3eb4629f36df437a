package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"careerpilot_backend/internal/models"
	"careerpilot_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessmentLifecycle(t *testing.T) {
	ts := getServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts.DB, &models.User{Tokens: 10000})

	body := map[string]interface{}{
		"quiz_score": 72.5,
		"questions": []map[string]interface{}{
			{"question": "What does a load balancer do?", "answer": "Distributes traffic", "correct": true},
		},
		"category":        "backend",
		"improvement_tip": "Review distributed systems basics",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/assessments", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "unexpected response: "+bodyStr)

	// Taking the quiz costs tokens (default feature cost).
	assert.Equal(t, 9500, helpers.Balance(t, ts.DB, user.ID))

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/assessments", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Assessments []struct {
			ID        string  `json:"id"`
			QuizScore float64 `json:"quiz_score"`
		} `json:"assessments"`
		Total        int64   `json:"total"`
		AverageScore float64 `json:"average_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Equal(t, int64(1), list.Total)
	assert.Equal(t, 72.5, list.Assessments[0].QuizScore)
	assert.Equal(t, 72.5, list.AverageScore)

	// Another user cannot read it.
	otherToken, _ := helpers.CreateAndLoginUser(t, ts.DB, &models.User{})
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/assessments/"+list.Assessments[0].ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestResumeLifecycle(t *testing.T) {
	ts := getServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts.DB, &models.User{Name: "Jane Doe", Tokens: 10000})

	// No resume yet.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/resume", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Create, then replace. Saving is free.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/resume", token, map[string]interface{}{"content": "# Draft"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/resume", token, map[string]interface{}{"content": "# Final"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resume struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resume))
	assert.Equal(t, "# Final", resume.Content)
	assert.Equal(t, 10000, helpers.Balance(t, ts.DB, user.ID))

	var count int64
	require.NoError(t, ts.DB.Model(&models.Resume{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "a user holds exactly one resume")

	// ATS scoring is metered.
	score := map[string]interface{}{"ats_score": 87.5, "feedback": "Add measurable outcomes"}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/resume/score", token, score)
	require.Equal(t, http.StatusOK, res.StatusCode, "unexpected response: "+bodyStr)
	assert.Equal(t, 9500, helpers.Balance(t, ts.DB, user.ID))

	// Export hands back the renderer configuration.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/resume/export", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var export struct {
		Target  string `json:"target"`
		Options struct {
			Filename string `json:"filename"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &export))
	assert.Equal(t, "resume-pdf", export.Target)
	assert.Equal(t, "jane-doe-resume.pdf", export.Options.Filename)
}

func TestCoverLetterLifecycle(t *testing.T) {
	ts := getServer(t)

	token, user := helpers.CreateAndLoginUser(t, ts.DB, &models.User{Tokens: 10000})

	body := map[string]interface{}{
		"content":      "Dear hiring manager...",
		"company_name": "Acme",
		"job_title":    "Backend Engineer",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/cover-letters", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "unexpected response: "+bodyStr)
	assert.Equal(t, 9500, helpers.Balance(t, ts.DB, user.ID))

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	// Edits are free.
	body["content"] = "Dear team,"
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/cover-letters/"+created.ID, token, body)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 9500, helpers.Balance(t, ts.DB, user.ID))

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/cover-letters/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/cover-letters/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestInsightUpsertAndLookup(t *testing.T) {
	ts := getServer(t)

	token, _ := helpers.CreateAndLoginUser(t, ts.DB, &models.User{})

	body := map[string]interface{}{
		"growth_rate":    6.5,
		"demand_level":   "HIGH",
		"market_outlook": "POSITIVE",
		"top_skills":     []string{"Go", "Kubernetes"},
		"salary_ranges": []map[string]interface{}{
			{"role": "Backend Engineer", "min": 60000, "max": 180000, "median": 110000, "location": "Remote"},
		},
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/insights/devops-sre", token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, "unexpected response: "+bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/insights/devops-sre", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var insight struct {
		Industry    string   `json:"industry"`
		DemandLevel string   `json:"demand_level"`
		TopSkills   []string `json:"top_skills"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &insight))
	assert.Equal(t, "devops-sre", insight.Industry)
	assert.Equal(t, "HIGH", insight.DemandLevel)
	assert.Equal(t, []string{"Go", "Kubernetes"}, insight.TopSkills)

	// Invalid enum value is rejected.
	body["demand_level"] = "EXTREME"
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/insights/devops-sre", token, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
