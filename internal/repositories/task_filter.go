package repository

import (
	"net/url"

	"gorm.io/gorm"
)

// Query keys recognised by ParseTaskFilter.
const (
	FilterContactPerson = "contact_person"
	FilterStatus        = "status"
	FilterTaskType      = "task_type"
)

// TaskFilter is a set of exact-match constraints combined with AND.
// A nil field is not applied.
type TaskFilter struct {
	ContactPerson *string
	Status        *string
	TaskType      *string
}

// ParseTaskFilter picks the recognised keys out of a query string. A key that
// is present with an empty value still constrains the result; every other key
// is ignored.
func ParseTaskFilter(params url.Values) TaskFilter {
	var f TaskFilter
	if params.Has(FilterContactPerson) {
		v := params.Get(FilterContactPerson)
		f.ContactPerson = &v
	}
	if params.Has(FilterStatus) {
		v := params.Get(FilterStatus)
		f.Status = &v
	}
	if params.Has(FilterTaskType) {
		v := params.Get(FilterTaskType)
		f.TaskType = &v
	}
	return f
}

func (f TaskFilter) IsEmpty() bool {
	return f.ContactPerson == nil && f.Status == nil && f.TaskType == nil
}

// Scope returns a gorm scope adding one equality clause per present field.
func (f TaskFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ContactPerson != nil {
			db = db.Where("contact_person = ?", *f.ContactPerson)
		}
		if f.Status != nil {
			db = db.Where("status = ?", *f.Status)
		}
		if f.TaskType != nil {
			db = db.Where("task_type = ?", *f.TaskType)
		}
		return db
	}
}
