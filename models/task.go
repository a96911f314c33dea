// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Task is a follow-up action attached to a lead.
// LeadID is not enforced as a foreign key; tasks may outlive their lead.
type Task struct {
	ID          int64      `json:"id"`
	LeadID      int64      `json:"leadId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

// TaskDraft carries the caller-supplied fields of a new task.
type TaskDraft struct {
	LeadID      int64      `json:"leadId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   bool       `json:"completed"`
}

// TaskPatch is the only mutation a stored task accepts: the completion flag.
type TaskPatch struct {
	Completed *bool `json:"completed,omitempty"`
}

// Apply sets task.Completed when p carries a value.
func (p TaskPatch) Apply(task *Task) {
	if p.Completed != nil {
		task.Completed = *p.Completed
	}
}

// TaskCompletionUpdate is the body of the task completion toggle.
type TaskCompletionUpdate struct {
	Completed *bool `json:"completed"`
}
