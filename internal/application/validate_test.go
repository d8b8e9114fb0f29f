package application

import (
	"errors"
	"testing"

	"github.com/oceansouq/platform-core/internal/domain"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "already normal", in: "a@example.com", want: "a@example.com"},
		{name: "mixed case and padding", in: "  A.B@Example.COM ", want: "a.b@example.com"},
		{name: "empty", in: "", wantErr: true},
		{name: "no at", in: "example.com", wantErr: true},
		{name: "two ats", in: "a@b@example.com", wantErr: true},
		{name: "empty local part", in: "@example.com", wantErr: true},
		{name: "empty host", in: "a@", wantErr: true},
		{name: "undotted host", in: "a@localhost", wantErr: true},
		{name: "leading dot host", in: "a@.example.com", wantErr: true},
		{name: "trailing dot host", in: "a@example.com.", wantErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeEmail(tc.in)
			if tc.wantErr {
				var fieldErr *domain.FieldError
				if !errors.As(err, &fieldErr) || fieldErr.Field != "email" {
					t.Fatalf("expected email FieldError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindProfile(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{
		Phone:       "+966500000000",
		ServiceType: " Plumbing ",
	}
	profile := kindProfile(domain.KindServiceProvider, req)
	if profile["service_type"] != "plumbing" {
		t.Fatalf("service_type = %v", profile["service_type"])
	}
	if profile["phone"] != "+966500000000" {
		t.Fatalf("phone = %v", profile["phone"])
	}

	if got := kindProfile(domain.KindBuyer, RegisterRequest{}); got != nil {
		t.Fatalf("buyer with no extras should have nil profile, got %+v", got)
	}
}

func TestServiceTypeCatalog(t *testing.T) {
	t.Parallel()

	for _, st := range []string{
		"cleaning", "ac_maintenance", "plumbing", "electrical",
		"car_wash", "moving", "painting", "carpentry",
	} {
		err := validateRegistration(domain.KindServiceProvider, RegisterRequest{
			Email: "p@example.com", Password: "pw", Name: "Pro", ServiceType: st,
		})
		if err != nil {
			t.Fatalf("service type %q rejected: %v", st, err)
		}
	}
}
