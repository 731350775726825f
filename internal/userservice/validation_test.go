package userservice

import (
	"testing"

	"github.com/sushihentaime/skywrite/internal/common"
)

func TestValidateFullname(t *testing.T) {
	testCases := []struct {
		fullname string
		valid    bool
	}{
		{fullname: "", valid: false},
		{fullname: "a", valid: false},
		{fullname: "ab", valid: false},
		{fullname: "abc", valid: true},
		{fullname: "John Doe", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.fullname, func(t *testing.T) {
			v := common.NewValidator()
			validateFullname(v, tc.fullname)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{email: "", valid: false},
		{email: "a", valid: false},
		{email: "a@", valid: false},
		{email: "a@b", valid: false},
		{email: "a@b.com", valid: true},
		{email: "first.last@example.co", valid: true},
		{email: "first..last@example.com", valid: false},
		{email: "user@sub.example.com", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		password string
		valid    bool
	}{
		{password: "", valid: false},
		{password: "abc", valid: false},
		{password: "abc123", valid: false},
		{password: "Abc123", valid: true},
		{password: "ABC123", valid: false},
		{password: "Abcdef", valid: false},
		{password: "Ab1", valid: false},
		{password: "Abc123Abc123Abc123Abc", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}
