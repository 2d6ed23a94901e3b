package tools

import "testing"

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"git version 2.39.2", "2.39.2", true},
		{"v20.11.0", "20.11.0", true},
		{"Python 3.12.1", "3.12.1", true},
		{"jq-1.7.1", "1.7.1", true},
		{"GNU Wget 1.21.4 built on darwin21.6.0.", "1.21.4", true},
		{"Docker version 24.0.6, build ed223bc", "24.0.6", true},
		{"2.4", "2.4", true},
		{"no digits here", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseVersion(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseVersion(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNormalizeVersion(t *testing.T) {
	if got := NormalizeVersion(" v1.2.3 "); got != "1.2.3" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeVersion("1.2.3"); got != "1.2.3" {
		t.Fatalf("got %q", got)
	}
}

func TestVersionLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1.2.3", "1.2.4", true},
		{"1.2.4", "1.2.3", false},
		{"1.2.3", "1.2.3", false},
		{"1.9.0", "1.10.0", true},
		{"v1.2.3", "1.3.0", true},
		{"1.2", "1.2.1", true},
		{"2.0.0", "1.99.99", false},
		{"1.7ubuntu2", "1.8", true},
	}
	for _, c := range cases {
		if got := VersionLess(c.a, c.b); got != c.want {
			t.Errorf("VersionLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
