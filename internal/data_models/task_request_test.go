package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskRequest_ToPatch(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"closed","note":null,"entity_name":null}`), &req))

	patch := req.ToPatch()

	require.NotNil(t, patch.Status)
	assert.Equal(t, "closed", *patch.Status)
	assert.True(t, patch.ClearNote)
	assert.Nil(t, patch.Note)
	assert.Nil(t, patch.EntityName)
	assert.Nil(t, patch.TaskType)
	assert.Nil(t, patch.ContactPerson)
	assert.Equal(t, map[string]interface{}{"status": "closed", "note": nil}, patch.Columns())
}

func TestUpdateTaskRequest_EmptyBody(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	assert.True(t, req.ToPatch().IsEmpty())
}

func TestOptionalString_RejectsNonString(t *testing.T) {
	var req UpdateTaskRequest
	assert.Error(t, json.Unmarshal([]byte(`{"status":5}`), &req))
}

func TestCreateTaskRequest_ToModel(t *testing.T) {
	var req CreateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"entity_name": "Acme",
		"task_type": "call",
		"time_of_task": "10:30",
		"contact_person": "Bob"
	}`), &req))

	task := req.ToModel()
	assert.Equal(t, "Acme", task.EntityName)
	assert.Equal(t, "", task.Status)
	assert.Nil(t, task.Note)

	status := "closed"
	req.Status = &status
	assert.Equal(t, "closed", req.ToModel().Status)
}
