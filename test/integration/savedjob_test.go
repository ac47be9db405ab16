package integration_test

import (
	"net/http"
	"testing"

	"joblink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedJobEnvelope struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	SavedJob struct {
		ID    string `json:"id"`
		JobID string `json:"jobId"`
	} `json:"savedJob"`
	SavedJobs []struct {
		ID  string `json:"id"`
		Job *struct {
			Title string `json:"title"`
		} `json:"job"`
	} `json:"savedJobs"`
}

func TestSaveAndListSavedJobs(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employer := helpers.CreateEmployer(t, ts.DB)
	user := helpers.CreateEmployee(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Bookmarked Role")

	saveBody := map[string]string{"userId": user.ID, "jobId": job.ID}

	res, body := ts.SendRequest(t, http.MethodPost, "/saved-jobs", saveBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var saved savedJobEnvelope
	helpers.DecodeBody(t, body, &saved)
	assert.Equal(t, "Job saved successfully", saved.Message)
	assert.NotEmpty(t, saved.SavedJob.ID)

	// Saving again conflicts.
	res, body = ts.SendRequest(t, http.MethodPost, "/saved-jobs", saveBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	helpers.DecodeBody(t, body, &saved)
	assert.Equal(t, "Job already saved", saved.Message)

	res, body = ts.SendRequest(t, http.MethodGet, "/user/"+user.ID+"/saved-jobs", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listed savedJobEnvelope
	helpers.DecodeBody(t, body, &listed)
	require.Len(t, listed.SavedJobs, 1)
	require.NotNil(t, listed.SavedJobs[0].Job, "listing hydrates the job")
	assert.Equal(t, "Bookmarked Role", listed.SavedJobs[0].Job.Title)
}

func TestUnsaveEndpoint(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employer := helpers.CreateEmployer(t, ts.DB)
	user := helpers.CreateEmployee(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Unsaved Role")

	res, body := ts.SendRequest(t, http.MethodPost, "/saved-jobs", map[string]string{
		"userId": user.ID,
		"jobId":  job.ID,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var saved savedJobEnvelope
	helpers.DecodeBody(t, body, &saved)

	res, body = ts.SendRequest(t, http.MethodDelete, "/saved-jobs/"+saved.SavedJob.ID, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	helpers.DecodeBody(t, body, &saved)
	assert.Equal(t, "Job removed from saved", saved.Message)

	// Deleting again is a 404.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/saved-jobs/"+saved.SavedJob.ID, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSaveUnknownJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	user := helpers.CreateEmployee(t, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/saved-jobs", map[string]string{
		"userId": user.ID,
		"jobId":  "00000000-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
