package models

import (
	"fmt"
	"unicode/utf8"
)

// Status is the lifecycle state of a found disc.
//
// Status is a closed enumeration: any value outside the constants below
// is rejected at the model boundary rather than stored as free-form text.
type Status string

const (
	// StatusPendingText is assigned to every newly reported disc: staff
	// still have to text the owner listed on the disc.
	StatusPendingText Status = "Pending Text to Owner"

	// StatusTexted marks a disc whose owner has been contacted.
	StatusTexted Status = "Texted Owner"

	// StatusClaimed marks a disc that was returned to its owner.
	StatusClaimed Status = "Claimed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPendingText, StatusTexted, StatusClaimed:
		return true
	}
	return false
}

// ParseStatus converts a string into a Status, rejecting unknown labels.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Field length limits, mirrored by the column sizes below.
const (
	MaxPhoneNumberLen = 15
	MaxBinLen         = 10
)

// FoundDisc is a disc recovered on the course and logged for owner
// retrieval.
//
// The record is append-only from the service's perspective: nothing
// deletes or rewrites a row, the only permitted mutation is the scoped
// claim update (status + dateClaimed). Ids are assigned once by the
// store and never reused.
type FoundDisc struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Course      string  `gorm:"column:course;size:255;not null" json:"course"`
	Name        string  `gorm:"column:name;size:255;not null" json:"name"`
	Disc        string  `gorm:"column:disc;size:255;not null" json:"disc"`
	PhoneNumber string  `gorm:"column:phoneNumber;size:15;not null" json:"phoneNumber"`
	Bin         string  `gorm:"column:bin;size:10;not null" json:"bin"`
	DateFound   Date    `gorm:"column:dateFound;not null" json:"dateFound"`
	DateTexted  *Date   `gorm:"column:dateTexted" json:"dateTexted"`
	DateClaimed *Date   `gorm:"column:dateClaimed" json:"dateClaimed"`
	Status      Status  `gorm:"column:status;size:50;not null" json:"status"`
	Comments    *string `gorm:"column:comments" json:"comments"`
}

// TableName returns the table name for FoundDisc.
func (FoundDisc) TableName() string {
	return "found_discs"
}

// Validate checks the record against the schema constraints.
func (d *FoundDisc) Validate() error {
	if d.Course == "" {
		return fmt.Errorf("%w: course is required", ErrInvalidDisc)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: owner name is required", ErrInvalidDisc)
	}
	if d.Disc == "" {
		return fmt.Errorf("%w: disc description is required", ErrInvalidDisc)
	}
	if d.PhoneNumber == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidDisc)
	}
	if utf8.RuneCountInString(d.PhoneNumber) > MaxPhoneNumberLen {
		return fmt.Errorf("%w: phone number exceeds %d characters", ErrInvalidDisc, MaxPhoneNumberLen)
	}
	if d.Bin == "" {
		return fmt.Errorf("%w: bin is required", ErrInvalidDisc)
	}
	if utf8.RuneCountInString(d.Bin) > MaxBinLen {
		return fmt.Errorf("%w: bin exceeds %d characters", ErrInvalidDisc, MaxBinLen)
	}
	if d.DateFound.IsZero() {
		return fmt.Errorf("%w: date found is required", ErrInvalidDisc)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, d.Status)
	}
	return nil
}

// Claimed reports whether the disc has been returned to its owner.
func (d *FoundDisc) Claimed() bool {
	return d.Status == StatusClaimed
}
