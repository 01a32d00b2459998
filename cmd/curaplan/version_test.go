package main

import (
	"runtime/debug"
	"testing"
)

// TestResolveVersion covers the precedence between ldflags and build info.
// go install github.com/gauthierbraillon/curaplan/cmd/curaplan@v1.2.3 leaves
// ldflags at "dev" and records the tag in build info.
func TestResolveVersion(t *testing.T) {
	tests := []struct {
		name    string
		ldflags string
		info    *debug.BuildInfo
		want    string
	}{
		{"ldflags wins", "v1.2.3", &debug.BuildInfo{Main: debug.Module{Version: "v0.0.0"}}, "v1.2.3"},
		{"build info when dev", "dev", &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}}, "v1.2.3"},
		{"devel is dev", "dev", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "dev"},
		{"empty build version", "dev", &debug.BuildInfo{}, "dev"},
		{"nil build info", "dev", nil, "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveVersion(tt.ldflags, tt.info); got != tt.want {
				t.Errorf("user should see version %q, got %q", tt.want, got)
			}
		})
	}
}
