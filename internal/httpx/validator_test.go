package httpx

import (
	"strings"
	"testing"
)

type testStruct struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,password_strength"`
	Rating   int    `json:"rating" validate:"gte=1,lte=5"`
}

func TestValidateStruct_ValidInput(t *testing.T) {
	s := testStruct{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "Test123!@#",
		Rating:   4,
	}

	if errs := ValidateStruct(s); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	errs := ValidateStruct(testStruct{Rating: 1})
	if len(errs) == 0 {
		t.Fatal("Expected validation errors for required fields")
	}

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Message
	}
	for _, f := range []string{"email", "username", "password"} {
		if !strings.Contains(fields[f], "required") {
			t.Errorf("Expected %s required error, got %q", f, fields[f])
		}
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	tests := []struct {
		name  string
		in    testStruct
		field string
		want  string
	}{
		{"email format", testStruct{Email: "invalid", Username: "abc", Password: "Test123!@#", Rating: 1}, "email", "valid email"},
		{"username too short", testStruct{Email: "a@b.co", Username: "ab", Password: "Test123!@#", Rating: 1}, "username", "at least 3"},
		{"weak password", testStruct{Email: "a@b.co", Username: "abc", Password: "weakpass", Rating: 1}, "password", "uppercase"},
		{"rating too high", testStruct{Email: "a@b.co", Username: "abc", Password: "Test123!@#", Rating: 6}, "rating", "less than or equal to 5"},
		{"rating too low", testStruct{Email: "a@b.co", Username: "abc", Password: "Test123!@#", Rating: 0}, "rating", "greater than or equal to 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.in)
			if len(errs) != 1 {
				t.Fatalf("Expected exactly one error, got %v", errs)
			}
			if errs[0].Field != tt.field || !strings.Contains(errs[0].Message, tt.want) {
				t.Errorf("got %+v, want field %s containing %q", errs[0], tt.field, tt.want)
			}
		})
	}
}
