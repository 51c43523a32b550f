package validator_test

import (
	"glamp/shared/validator"
	"strings"
	"testing"
)

type guestTestStruct struct {
	FirstName string `validate:"required"                  json:"firstName"`
	Email     string `validate:"omitempty,email"           json:"email"`
	Guests    int    `validate:"gte=1,lte=16"              json:"guests"`
	Method    string `validate:"oneof=manual advance"      json:"method"`
	GlampID   string `validate:"required,hyphenated_uuid"  json:"glampId"`
	CheckIn   string `validate:"required,dateonly"         json:"checkIn"`
}

func validGuest() guestTestStruct {
	return guestTestStruct{
		FirstName: "Ayesha",
		Email:     "ayesha@example.com",
		Guests:    2,
		Method:    "manual",
		GlampID:   "3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e",
		CheckIn:   "2024-06-15",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(g *guestTestStruct)
		expectError bool
	}{
		{
			name:        "valid struct",
			mutate:      func(_ *guestTestStruct) {},
			expectError: false,
		},
		{
			name:        "missing first name",
			mutate:      func(g *guestTestStruct) { g.FirstName = "" },
			expectError: true,
		},
		{
			name:        "email is optional",
			mutate:      func(g *guestTestStruct) { g.Email = "" },
			expectError: false,
		},
		{
			name:        "invalid email",
			mutate:      func(g *guestTestStruct) { g.Email = "not-an-email" },
			expectError: true,
		},
		{
			name:        "guests out of range",
			mutate:      func(g *guestTestStruct) { g.Guests = 17 },
			expectError: true,
		},
		{
			name:        "invalid method",
			mutate:      func(g *guestTestStruct) { g.Method = "card" },
			expectError: true,
		},
		{
			name:        "numeric glamp id",
			mutate:      func(g *guestTestStruct) { g.GlampID = "12" },
			expectError: true,
		},
		{
			name:        "glamp id without hyphens",
			mutate:      func(g *guestTestStruct) { g.GlampID = "3f1c2a4e9b7d4c1a8e2f5d6b7a8c9d0e" },
			expectError: true,
		},
		{
			name:        "malformed date",
			mutate:      func(g *guestTestStruct) { g.CheckIn = "15/06/2024" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validGuest()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestIsHyphenatedUUID(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e", true},
		{"3F1C2A4E-9B7D-4C1A-8E2F-5D6B7A8C9D0E", true},
		{"3f1c2a4e9b7d4c1a8e2f5d6b7a8c9d0e", false},
		{"{3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e}", false},
		{"urn:uuid:3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e", false},
		{"42", false},
		{"", false},
		{"3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0z", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := validator.IsHyphenatedUUID(tt.value); got != tt.expected {
				t.Errorf("IsHyphenatedUUID(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid date",
			field:       "2024-02-29",
			tag:         "dateonly",
			expectError: false,
		},
		{
			name:        "impossible date",
			field:       "2023-02-29",
			tag:         "dateonly",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "SUBMITTED",
			tag:         "oneof=DRAFT SUBMITTED APPROVED REJECTED CANCELLED",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"firstName":"Ayesha","guests":2,"method":"advance","glampId":"3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e","checkIn":"2024-06-15"}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"firstName":"Ayesha","guests":0,"method":"advance","glampId":"3f1c2a4e-9b7d-4c1a-8e2f-5d6b7a8c9d0e","checkIn":"2024-06-15"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"firstName":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data guestTestStruct
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := validGuest()
	data.GlampID = "7"

	err := validator.ValidateStruct(&data)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if err.Error() != "GlampID must be a valid id" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestDecode(t *testing.T) {
	var g guestTestStruct

	if err := validator.Decode(strings.NewReader(`{"firstName":""}`), &g); err != nil {
		t.Fatalf("decode should not validate: %v", err)
	}

	if err := validator.Decode(strings.NewReader(`{"firstName":`), &g); err == nil {
		t.Fatal("expected an error for a truncated body")
	}
}
