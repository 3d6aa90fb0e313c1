package utils

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"acme.com", "https://acme.com"},
		{"http://acme.com", "http://acme.com"},
		{"https://acme.com/path", "https://acme.com/path"},
	}

	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Fatalf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"www.acme.com/contact", "acme.com"},
		{"https://sub.deep.example.co.uk", "example.co.uk"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := RegistrableDomain(tt.in); got != tt.want {
			t.Fatalf("RegistrableDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHTMLText(t *testing.T) {
	got := HTMLText("<p>Support <b>local</b> organizations.</p>")
	want := "Support local organizations."
	if got != want {
		t.Fatalf("HTMLText = %q, want %q", got, want)
	}
}
