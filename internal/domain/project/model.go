package project

import "time"

// DateLayout is the storage format of DateSubmitted.
const DateLayout = "2006-01-02"

// IDPrefix prefixes every generated project identifier.
const IDPrefix = "PROJECT-"

// Status is the workflow state of a project
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In-Progress"
	StatusClosed     Status = "Closed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusClosed}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Priority ranks how urgent a project is
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every priority in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Project is a single tracked record. Only Status and Priority change after creation.
type Project struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	Status        Status   `json:"status"`
	Priority      Priority `json:"priority"`
	DateSubmitted string   `json:"date_submitted"`
}

// Submitted parses DateSubmitted.
func (p Project) Submitted() (time.Time, error) {
	return time.Parse(DateLayout, p.DateSubmitted)
}

// Edit carries the mutable fields of one grid row.
type Edit struct {
	ID       string   `json:"id"`
	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`
}

// Snapshot is every stored project as of the most recent load, in storage order.
type Snapshot []Project

// Len returns the number of projects in the snapshot.
func (s Snapshot) Len() int {
	return len(s)
}

// Contains reports whether a project with id is present.
func (s Snapshot) Contains(id string) bool {
	for _, p := range s {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Edits returns the current status and priority of every row, in order.
func (s Snapshot) Edits() []Edit {
	edits := make([]Edit, 0, len(s))
	for _, p := range s {
		edits = append(edits, Edit{ID: p.ID, Status: p.Status, Priority: p.Priority})
	}
	return edits
}
