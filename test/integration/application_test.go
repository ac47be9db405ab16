package integration_test

import (
	"net/http"
	"testing"

	"joblink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationEnvelope struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Application struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"application"`
	Applications []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"applications"`
}

func TestApplyEndpoint(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employer := helpers.CreateEmployer(t, ts.DB)
	applicant := helpers.CreateEmployee(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Applied Role")

	applyBody := map[string]string{
		"jobId":       job.ID,
		"applicantId": applicant.ID,
		"coverLetter": "Please hire me",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/applications", applyBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp applicationEnvelope
	helpers.DecodeBody(t, body, &resp)
	assert.Equal(t, "Application submitted successfully", resp.Message)
	assert.Equal(t, "pending", resp.Application.Status)

	// Applying twice to the same job conflicts.
	res, body = ts.SendRequest(t, http.MethodPost, "/applications", applyBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	helpers.DecodeBody(t, body, &resp)
	assert.Equal(t, "You have already applied for this job", resp.Message)
}

func TestApplyToUnknownJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	applicant := helpers.CreateEmployee(t, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/applications", map[string]string{
		"jobId":       "00000000-0000-0000-0000-000000000000",
		"applicantId": applicant.ID,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestApplicationStatusPipelineEndpoint(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employer := helpers.CreateEmployer(t, ts.DB)
	applicant := helpers.CreateEmployee(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Pipeline Role")

	res, body := ts.SendRequest(t, http.MethodPost, "/applications", map[string]string{
		"jobId":       job.ID,
		"applicantId": applicant.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created applicationEnvelope
	helpers.DecodeBody(t, body, &created)
	id := created.Application.ID

	// Steps cannot be skipped.
	res, _ = ts.SendRequest(t, http.MethodPut, "/applications/"+id, map[string]string{"status": "accepted"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	for _, status := range []string{"reviewed", "shortlisted", "accepted"} {
		res, body = ts.SendRequest(t, http.MethodPut, "/applications/"+id, map[string]string{"status": status})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var updated applicationEnvelope
		helpers.DecodeBody(t, body, &updated)
		assert.Equal(t, "Application status updated", updated.Message)
		assert.Equal(t, status, updated.Application.Status)
	}

	// Terminal state is frozen.
	res, _ = ts.SendRequest(t, http.MethodPut, "/applications/"+id, map[string]string{"status": "reviewed"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// Re-asserting the terminal state stays a success.
	res, _ = ts.SendRequest(t, http.MethodPut, "/applications/"+id, map[string]string{"status": "accepted"})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestApplicationListsEndpoint(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employer := helpers.CreateEmployer(t, ts.DB)
	first := helpers.CreateEmployee(t, ts.DB)
	second := helpers.CreateEmployee(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Popular Role")

	for _, applicant := range []string{first.ID, second.ID} {
		res, body := ts.SendRequest(t, http.MethodPost, "/applications", map[string]string{
			"jobId":       job.ID,
			"applicantId": applicant,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/user/"+first.ID+"/applications", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var byUser applicationEnvelope
	helpers.DecodeBody(t, body, &byUser)
	assert.Len(t, byUser.Applications, 1)

	res, body = ts.SendRequest(t, http.MethodGet, "/job/"+job.ID+"/applications", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var byJob applicationEnvelope
	helpers.DecodeBody(t, body, &byJob)
	assert.Len(t, byJob.Applications, 2)
}

func TestJobDeleteCascadesToApplications(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employer := helpers.CreateEmployer(t, ts.DB)
	applicant := helpers.CreateEmployee(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Doomed Role")

	res, body := ts.SendRequest(t, http.MethodPost, "/applications", map[string]string{
		"jobId":       job.ID,
		"applicantId": applicant.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodDelete, "/jobs/"+job.ID, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/user/"+applicant.ID+"/applications", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp applicationEnvelope
	helpers.DecodeBody(t, body, &resp)
	assert.Empty(t, resp.Applications, "applications must not outlive their job")
}
