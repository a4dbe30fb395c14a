package crypto

import (
	"strings"
	"testing"
)

func TestValidatePasswordStrength_ValidPasswords(t *testing.T) {
	validPasswords := []string{
		"Test123!@#",
		"Password1$",
		"SecureP@ss1",
		"Str0ng#Pass",
		"Valid123!",
	}

	for _, password := range validPasswords {
		err := ValidatePasswordStrength(password)
		if err != nil {
			t.Errorf("Password %s should be valid but got error: %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_TooShort(t *testing.T) {
	shortPasswords := []string{
		"Test1!",
		"Pass1",
		"Abc12",
	}

	for _, password := range shortPasswords {
		err := ValidatePasswordStrength(password)
		if err != ErrPasswordTooShort {
			t.Errorf("Expected ErrPasswordTooShort for %s, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_NoUpperCase(t *testing.T) {
	passwords := []string{
		"test123!@#",
		"password1$",
	}

	for _, password := range passwords {
		err := ValidatePasswordStrength(password)
		if err != ErrPasswordNoUpper {
			t.Errorf("Expected ErrPasswordNoUpper for %s, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_NoLowerCase(t *testing.T) {
	passwords := []string{
		"TEST123!@#",
		"PASSWORD1$",
	}

	for _, password := range passwords {
		err := ValidatePasswordStrength(password)
		if err != ErrPasswordNoLower {
			t.Errorf("Expected ErrPasswordNoLower for %s, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_NoNumber(t *testing.T) {
	passwords := []string{
		"TestPass!@#",
		"Password$",
	}

	for _, password := range passwords {
		err := ValidatePasswordStrength(password)
		if err != ErrPasswordNoNumber {
			t.Errorf("Expected ErrPasswordNoNumber for %s, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_NoSpecialChar(t *testing.T) {
	passwords := []string{
		"TestPass123",
		"Password1",
	}

	for _, password := range passwords {
		err := ValidatePasswordStrength(password)
		if err != ErrPasswordNoSpecialChar {
			t.Errorf("Expected ErrPasswordNoSpecialChar for %s, got %v", password, err)
		}
	}
}

func TestHashPassword(t *testing.T) {
	password := "testpassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" || hash == password {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
}

func TestVerifyPassword(t *testing.T) {
	password := "testpassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword(hash, password) {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword(hash, "wrongpassword") {
		t.Error("expected wrong password to be rejected")
	}

	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == hash2 {
		t.Error("expected a fresh salt per hash")
	}
}

func TestPasswordTooLong(t *testing.T) {
	// 72 ASCII bytes is the last accepted length; multi-byte runes count by byte.
	atLimit := "Aa1!" + strings.Repeat("x", 68)
	overByBytes := "Aa1!" + strings.Repeat("é", 35)

	if err := ValidatePasswordStrength(atLimit); err != nil {
		t.Errorf("expected 72-byte password to pass, got %v", err)
	}
	if err := ValidatePasswordStrength("Aa1!" + strings.Repeat("x", 80)); err != ErrPasswordTooLong {
		t.Errorf("expected ErrPasswordTooLong, got %v", err)
	}
	if err := ValidatePasswordStrength(overByBytes); err != ErrPasswordTooLong {
		t.Errorf("expected ErrPasswordTooLong for %d bytes, got %v", len(overByBytes), err)
	}

	if _, err := HashPassword(overByBytes); err != ErrPasswordTooLong {
		t.Errorf("expected HashPassword to return ErrPasswordTooLong, got %v", err)
	}
}
