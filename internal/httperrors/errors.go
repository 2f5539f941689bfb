// Copyright (c) 2025 Sensorq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly diagnostics for HTTP request failures.
// The normal UI surfaces a single generic message for any backend failure; this
// package exists for verbose mode, where it classifies the underlying cause
// (timeout, DNS, connection refused, TLS, server error) and prints
// troubleshooting hints.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Explain converts technical HTTP/network errors into user-friendly diagnostics.
// It detects common error types (timeout, DNS, connection refused, SSL, server
// errors) and displays helpful troubleshooting information.
func Explain(err error, origin string) error {
	if err == nil {
		return nil
	}

	// Display user-friendly diagnostics with pterm
	displayErrorMessage(err, ExtractHostFromURL(origin))

	// Return wrapped error for logging/debugging
	return fmt.Errorf("network error: %w", err)
}

// displayErrorMessage shows a formatted error message to the user based on error type.
func displayErrorMessage(err error, host string) {
	errStr := err.Error()

	if isTimeoutError(err) {
		showTimeoutError(host)
		return
	}

	if isDNSError(err) {
		showDNSError(host)
		return
	}

	if isConnectionRefusedError(err) {
		showConnectionRefusedError(host)
		return
	}

	if isSSLError(err) {
		showSSLError(host)
		return
	}

	if isServerError(errStr) {
		showServerError(host)
		return
	}

	showGenericError(host, errStr)
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "ssl") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// isServerError checks if the error indicates a server-side problem (5xx errors).
func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	return strings.Contains(lower, "500") ||
		strings.Contains(lower, "502") ||
		strings.Contains(lower, "503") ||
		strings.Contains(lower, "504") ||
		strings.Contains(lower, "internal server error") ||
		strings.Contains(lower, "bad gateway") ||
		strings.Contains(lower, "service unavailable") ||
		strings.Contains(lower, "gateway timeout")
}

// showTimeoutError displays a user-friendly timeout error message.
func showTimeoutError(host string) {
	pterm.Printf("⏱️  Connection timeout while talking to %s\n", host)
	pterm.Println()
	pterm.Println("The backend took too long to respond. This could mean:")
	pterm.Println("  • Slow network connection")
	pterm.Println("  • The analysis for this question is taking too long")
	pterm.Println("  • Network firewall is blocking the connection")
	pterm.Println()
	pterm.Println("Please try again in a few moments.")
	pterm.Println()
}

// showDNSError displays a user-friendly DNS error message.
func showDNSError(host string) {
	pterm.Printf("🌐 Cannot resolve backend address %s\n", host)
	pterm.Println()
	pterm.Println("Unable to look up the backend host. Please check:")
	pterm.Println("  • Your network connection is working")
	pterm.Println("  • The configured backend origin is spelled correctly")
	pterm.Println("  • No DNS-level blocking (corporate firewall, parental controls)")
	pterm.Println()
}

// showConnectionRefusedError displays a user-friendly connection refused error message.
func showConnectionRefusedError(host string) {
	pterm.Printf("🚫 Connection refused by %s\n", host)
	pterm.Println()
	pterm.Println("The backend is not accepting connections. This could mean:")
	pterm.Println("  • The backend service is not running")
	pterm.Println("  • Wrong backend origin or port")
	pterm.Println("  • Firewall is blocking the connection")
	pterm.Println()
	pterm.Println("Check the configured backend origin and try again.")
	pterm.Println()
}

// showSSLError displays a user-friendly SSL/TLS error message.
func showSSLError(host string) {
	pterm.Printf("🔒 Secure connection to %s failed\n", host)
	pterm.Println()
	pterm.Println("Cannot establish a secure HTTPS connection. This could mean:")
	pterm.Println("  • SSL/TLS certificate issue")
	pterm.Println("  • Network proxy interfering with HTTPS")
	pterm.Println("  • System clock is incorrect")
	pterm.Println()
	pterm.Println("Try:")
	pterm.Println("  • Check your system date and time")
	pterm.Println("  • Verify network proxy settings")
	pterm.Println()
}

// showServerError displays a user-friendly server error message.
func showServerError(host string) {
	pterm.Printf("⚠️  Server error from %s\n", host)
	pterm.Println()
	pterm.Println("The backend encountered an internal error answering this question.")
	pterm.Println("  • Try rephrasing the question")
	pterm.Println("  • Try again in a few minutes")
	pterm.Println()
}

// showGenericError displays a generic error message for unrecognized errors.
func showGenericError(host string, errDetails string) {
	pterm.Printf("❌ Cannot reach %s\n", host)
	pterm.Println()
	pterm.Println("Please check:")
	pterm.Println("  • Your network connection")
	pterm.Println("  • Whether the backend is accessible from your network")
	pterm.Println("  • Firewall settings that might block HTTP requests")
	pterm.Println()

	// Show abbreviated error details for debugging
	if errDetails != "" {
		shortErr := errDetails
		if len(shortErr) > 100 {
			shortErr = shortErr[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", shortErr)
		pterm.Println()
	}
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "the backend"
	}
	return u.Host
}
