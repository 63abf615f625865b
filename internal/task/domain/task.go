package domain

import "time"

type ID string

// Task is a to-do item. Username is a loose association to an account: a
// blank or dangling value is tolerated and such tasks simply never show up
// in user-scoped lists.
type Task struct {
	ID        ID
	Title     string
	Completed bool
	Username  string
	CreatedAt time.Time
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Title     *string
	Completed *bool
}
