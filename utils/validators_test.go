package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "Valid", password: "secret#123", want: true},
		{name: "Too short", password: "a#1", want: false},
		{name: "No number", password: "secret#pass", want: false},
		{name: "No special character", password: "secret123", want: false},
		{name: "Empty", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "Valid date", date: "2020-01-01", want: true},
		{name: "Month out of range", date: "2020-13-01", want: false},
		{name: "Wrong layout", date: "01/01/2020", want: false},
		{name: "With time", date: "2020-01-01T10:00:00Z", want: false},
		{name: "Empty", date: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDate(tt.date); got != tt.want {
				t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
