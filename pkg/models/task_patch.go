package model

// TaskPatch holds the fields of a partial update. A nil field is left as it
// is; ClearNote sets note to null and wins over Note.
type TaskPatch struct {
	EntityName    *string
	TaskType      *string
	TimeOfTask    *string
	ContactPerson *string
	Note          *string
	ClearNote     bool
	Status        *string
}

func (p TaskPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Apply overwrites the fields of t that are present in the patch.
func (p TaskPatch) Apply(t *Task) {
	if p.EntityName != nil {
		t.EntityName = *p.EntityName
	}
	if p.TaskType != nil {
		t.TaskType = *p.TaskType
	}
	if p.TimeOfTask != nil {
		t.TimeOfTask = *p.TimeOfTask
	}
	if p.ContactPerson != nil {
		t.ContactPerson = *p.ContactPerson
	}
	switch {
	case p.ClearNote:
		t.Note = nil
	case p.Note != nil:
		note := *p.Note
		t.Note = &note
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// Columns returns the column values to write for the present fields.
func (p TaskPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.EntityName != nil {
		cols["entity_name"] = *p.EntityName
	}
	if p.TaskType != nil {
		cols["task_type"] = *p.TaskType
	}
	if p.TimeOfTask != nil {
		cols["time_of_task"] = *p.TimeOfTask
	}
	if p.ContactPerson != nil {
		cols["contact_person"] = *p.ContactPerson
	}
	switch {
	case p.ClearNote:
		cols["note"] = nil
	case p.Note != nil:
		cols["note"] = *p.Note
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	return cols
}
