package constants

const DefaultTaskStatus = "open"

// Column limits of the tasks table, counted in characters.
const (
	MaxEntityNameLength    = 100
	MaxTaskTypeLength      = 50
	MaxTimeOfTaskLength    = 20
	MaxContactPersonLength = 100
	MaxNoteLength          = 255
	MaxStatusLength        = 10
)
