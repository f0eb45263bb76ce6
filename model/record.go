package model

import "fmt"

// Record represents a synthetic user. Fields are unexported so that a record
// cannot change once constructed.
type Record struct {
	id          string
	displayName string
	age         int
}

// NewRecord creates a record. Inputs are trusted and not validated.
func NewRecord(id, displayName string, age int) *Record {
	return &Record{id: id, displayName: displayName, age: age}
}

// ID returns record identifier
func (r *Record) ID() string {
	return r.id
}

// DisplayName returns record display name
func (r *Record) DisplayName() string {
	return r.displayName
}

// Age returns record age
func (r *Record) Age() int {
	return r.age
}

func (r *Record) String() string {
	return fmt.Sprintf("UserId: %s | Full Name: %s | Age: %d", r.id, r.displayName, r.age)
}
