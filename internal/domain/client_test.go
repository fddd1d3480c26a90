package domain_test

import (
	"testing"

	"careertrack-backend/internal/domain"
)

func TestClientFullName(t *testing.T) {
	first, last := "Jane", "Doe"

	cases := []struct {
		name   string
		client domain.Client
		want   string
	}{
		{"both names", domain.Client{FirstName: &first, LastName: &last, Email: "jane@example.com"}, "Jane Doe"},
		{"first only", domain.Client{FirstName: &first, Email: "jane@example.com"}, "Jane"},
		{"last only", domain.Client{LastName: &last, Email: "jane@example.com"}, "Doe"},
		{"neither falls back to email", domain.Client{Email: "jane@example.com"}, "jane@example.com"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.client.FullName(); got != tc.want {
				t.Errorf("FullName() = %q, want %q", got, tc.want)
			}
		})
	}
}
