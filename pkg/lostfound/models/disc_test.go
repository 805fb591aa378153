package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusPendingText, true},
		{StatusTexted, true},
		{StatusClaimed, true},
		{"claimed", false}, // case sensitive
		{"Lost Forever", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.valid {
				t.Errorf("Status(%q).Valid() = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("Claimed")
	if err != nil {
		t.Fatalf("ParseStatus(Claimed) failed: %v", err)
	}
	if status != StatusClaimed {
		t.Errorf("expected %q, got %q", StatusClaimed, status)
	}

	if _, err := ParseStatus("pending"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func validDisc() FoundDisc {
	return FoundDisc{
		Course:      "Maple Hill",
		Name:        "Jo Barnes",
		Disc:        "Blue Innova Destroyer",
		PhoneNumber: "555-0142",
		Bin:         "A3",
		DateFound:   NewDate(2026, 8, 30),
		Status:      StatusPendingText,
	}
}

func TestFoundDisc_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FoundDisc)
		wantErr bool
	}{
		{"valid record", func(d *FoundDisc) {}, false},
		{"missing course", func(d *FoundDisc) { d.Course = "" }, true},
		{"missing name", func(d *FoundDisc) { d.Name = "" }, true},
		{"missing disc", func(d *FoundDisc) { d.Disc = "" }, true},
		{"missing phone", func(d *FoundDisc) { d.PhoneNumber = "" }, true},
		{"phone too long", func(d *FoundDisc) { d.PhoneNumber = strings.Repeat("5", MaxPhoneNumberLen+1) }, true},
		{"phone at limit", func(d *FoundDisc) { d.PhoneNumber = strings.Repeat("5", MaxPhoneNumberLen) }, false},
		{"missing bin", func(d *FoundDisc) { d.Bin = "" }, true},
		{"bin too long", func(d *FoundDisc) { d.Bin = strings.Repeat("B", MaxBinLen+1) }, true},
		{"missing date found", func(d *FoundDisc) { d.DateFound = Date{} }, true},
		{"unknown status", func(d *FoundDisc) { d.Status = "Lost Forever" }, true},
		{"lowercase claimed status", func(d *FoundDisc) { d.Status = "claimed" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disc := validDisc()
			tt.mutate(&disc)

			err := disc.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
			if tt.wantErr && err != nil && !errors.Is(err, ErrInvalidDisc) && !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("expected a model sentinel error, got %v", err)
			}
		})
	}
}

func TestFoundDisc_Claimed(t *testing.T) {
	disc := validDisc()
	if disc.Claimed() {
		t.Error("pending disc reported as claimed")
	}

	disc.Status = StatusClaimed
	if !disc.Claimed() {
		t.Error("claimed disc not reported as claimed")
	}
}

func TestFoundDisc_JSON(t *testing.T) {
	disc := validDisc()
	disc.ID = 7
	comments := "found near hole 12"
	disc.Comments = &comments

	data, err := json.Marshal(disc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// The wire contract uses camelCase field names and null for unset
	// optional dates.
	for _, want := range []string{
		`"phoneNumber":"555-0142"`,
		`"dateFound":"2026-08-30"`,
		`"dateTexted":null`,
		`"dateClaimed":null`,
		`"status":"Pending Text to Owner"`,
		`"comments":"found near hole 12"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected JSON to contain %s, got %s", want, data)
		}
	}

	var decoded FoundDisc
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.DateFound != disc.DateFound {
		t.Errorf("dateFound round-trip mismatch: %v vs %v", decoded.DateFound, disc.DateFound)
	}
}
