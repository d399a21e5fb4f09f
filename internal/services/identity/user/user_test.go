package user

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	now := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	created, err := CreateUser(CreateUserInput{
		Name:  " Ada ",
		Email: "  Ada@Example.COM ",
	}, fixedClock(now), nil)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.Email != "ada@example.com" {
		t.Fatalf("email = %q, want ada@example.com", created.Email)
	}
	if created.Name != "Ada" {
		t.Fatalf("name = %q, want Ada", created.Name)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatal("expected timestamps from clock")
	}
}

func TestCreateUserAllowsMissingEmail(t *testing.T) {
	created, err := CreateUser(CreateUserInput{Name: "NoEmail"}, nil, nil)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.Email != "" {
		t.Fatalf("email = %q, want empty", created.Email)
	}
}

func TestCreateUserRejectsMalformedEmail(t *testing.T) {
	_, err := CreateUser(CreateUserInput{Email: "not-an-address"}, nil, nil)
	if !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("err = %v, want ErrEmailInvalid", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty passes through", "", "", false},
		{"whitespace only", "   ", "", false},
		{"lowercased", "User@Host.Example", "user@host.example", false},
		{"malformed", "user@@host", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeEmail(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if got != tc.want {
				t.Fatalf("normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
