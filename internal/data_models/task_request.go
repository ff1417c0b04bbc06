package dto

import model "task-management-api.com/task-management-api/pkg/models"

type CreateTaskRequest struct {
	EntityName    string  `json:"entity_name"`
	TaskType      string  `json:"task_type"`
	TimeOfTask    string  `json:"time_of_task"`
	ContactPerson string  `json:"contact_person"`
	Note          *string `json:"note"`
	Status        *string `json:"status"`
}

// ToModel builds the task to persist. A missing status is left empty so the
// repository default applies.
func (r CreateTaskRequest) ToModel() *model.Task {
	task := &model.Task{
		EntityName:    r.EntityName,
		TaskType:      r.TaskType,
		TimeOfTask:    r.TimeOfTask,
		ContactPerson: r.ContactPerson,
		Note:          r.Note,
	}
	if r.Status != nil {
		task.Status = *r.Status
	}
	return task
}

type UpdateTaskRequest struct {
	EntityName    OptionalString `json:"entity_name"`
	TaskType      OptionalString `json:"task_type"`
	TimeOfTask    OptionalString `json:"time_of_task"`
	ContactPerson OptionalString `json:"contact_person"`
	Note          OptionalString `json:"note"`
	Status        OptionalString `json:"status"`
}

// ToPatch keeps only the keys present in the body. A null note clears it;
// null on any other field is treated as absent since those columns are not
// nullable.
func (r UpdateTaskRequest) ToPatch() model.TaskPatch {
	return model.TaskPatch{
		EntityName:    r.EntityName.Ptr(),
		TaskType:      r.TaskType.Ptr(),
		TimeOfTask:    r.TimeOfTask.Ptr(),
		ContactPerson: r.ContactPerson.Ptr(),
		Note:          r.Note.Ptr(),
		ClearNote:     r.Note.Set && r.Note.Null,
		Status:        r.Status.Ptr(),
	}
}
