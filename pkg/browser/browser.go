// Package browser opens the locally served calendar in the default browser.
package browser

import (
	"fmt"
	"net"
	"net/url"
	"os/exec"
	"runtime"
)

// Open opens a local http URL in the default browser.
func Open(urlString string) error {
	name, args, err := Command(runtime.GOOS, urlString)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start() // #nosec G204 -- URL validated by Command
}

// Command returns the launcher invocation for goos. Only http and https URLs
// pointing at the local machine are accepted, so arbitrary input never
// reaches the system launcher.
func Command(goos, urlString string) (string, []string, error) {
	parsedURL, err := url.Parse(urlString)
	if err != nil {
		return "", nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", nil, fmt.Errorf("unsupported URL scheme: %q (only http and https allowed)", parsedURL.Scheme)
	}
	if !isLocalHost(parsedURL.Hostname()) {
		return "", nil, fmt.Errorf("refusing to open non-local host %q", parsedURL.Hostname())
	}

	switch goos {
	case "linux", "freebsd", "openbsd":
		return "xdg-open", []string{urlString}, nil
	case "darwin":
		return "open", []string{urlString}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", urlString}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func isLocalHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && (ip.IsLoopback() || ip.IsUnspecified())
}
