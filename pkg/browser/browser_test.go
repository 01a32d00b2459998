package browser

import (
	"strings"
	"testing"
)

func TestCommand_LocalURLPerPlatform(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
	}{
		{"linux", "xdg-open"},
		{"darwin", "open"},
		{"windows", "rundll32"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := Command(tt.goos, "http://localhost:8080/api/schedule")
			if err != nil {
				t.Fatalf("local URL should be accepted: %v", err)
			}
			if name != tt.wantName {
				t.Errorf("expected launcher %s, got %s", tt.wantName, name)
			}
			if args[len(args)-1] != "http://localhost:8080/api/schedule" {
				t.Errorf("URL should be the last argument, got %v", args)
			}
		})
	}
}

func TestCommand_AcceptsLoopbackAddresses(t *testing.T) {
	for _, u := range []string{"http://127.0.0.1:8080", "https://[::1]:8443/", "http://0.0.0.0:8080"} {
		if _, _, err := Command("linux", u); err != nil {
			t.Errorf("%s should be accepted: %v", u, err)
		}
	}
}

func TestCommand_RejectsInvalidScheme(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"file scheme", "file:///etc/passwd"},
		{"javascript scheme", "javascript:alert(1)"},
		{"data scheme", "data:text/html,<script>alert(1)</script>"},
		{"ftp scheme", "ftp://localhost"},
		{"no scheme", "localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Command("linux", tt.url)
			if err == nil {
				t.Fatalf("should reject %s", tt.url)
			}
		})
	}
}

func TestCommand_RejectsRemoteHosts(t *testing.T) {
	_, _, err := Command("linux", "https://example.com")
	if err == nil || !strings.Contains(err.Error(), "non-local") {
		t.Errorf("remote host should be rejected, got: %v", err)
	}
}

func TestCommand_RejectsMalformedURL(t *testing.T) {
	for _, u := range []string{"http://localhost\n:8080", "http://localhost\x00", ""} {
		if _, _, err := Command("linux", u); err == nil {
			t.Errorf("%q should be rejected", u)
		}
	}
}

func TestCommand_RejectsUnknownPlatform(t *testing.T) {
	_, _, err := Command("plan9", "http://localhost:8080")
	if err == nil || !strings.Contains(err.Error(), "unsupported platform") {
		t.Errorf("unknown platform should be rejected, got: %v", err)
	}
}
