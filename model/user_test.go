package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user := &User{
		ID:           "test-id",
		Email:        "lawyer@firm.com",
		PasswordHash: "$2a$10$secret",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         RoleAttorney,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Failed to marshal user: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("Password hash must not appear in JSON output")
	}
	if !strings.Contains(string(data), "lawyer@firm.com") {
		t.Error("Expected email in JSON output")
	}
}

func TestValidRole(t *testing.T) {
	valid := []string{RoleAdmin, RolePartner, RoleAttorney, RoleParalegal, RoleSecretary, RoleClient, RoleGuest}
	for _, role := range valid {
		if !ValidRole(role) {
			t.Errorf("Expected '%s' to be valid", role)
		}
	}

	invalid := []string{"", "wizard", "Admin", "ATTORNEY"}
	for _, role := range invalid {
		if ValidRole(role) {
			t.Errorf("Expected '%s' to be invalid", role)
		}
	}
}

func TestRiskLevelConstants(t *testing.T) {
	levels := []string{RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical}
	expected := []string{"Low", "Medium", "High", "Critical"}

	for i, level := range levels {
		if level != expected[i] {
			t.Errorf("Expected '%s', got '%s'", expected[i], level)
		}
	}
}
