/*
File    : uz-go/std/http_test.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/
package std

import (
	"net"
	"testing"

	"github.com/algorix-io/uz-go/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsSafeIP_BlockedRanges verifies that every forbidden range is
// rejected, including IPv4-mapped IPv6 forms
func TestIsSafeIP_BlockedRanges(t *testing.T) {
	blocked := []string{
		// IPv4 loopback
		"127.0.0.1", "127.1.2.3", "127.255.255.255",
		// IPv4 private
		"10.0.0.5", "10.255.0.1",
		"172.16.0.1", "172.31.255.254",
		"192.168.1.1", "192.168.255.1",
		// IPv4 link-local
		"169.254.0.1", "169.254.169.254",
		// this-network and broadcast
		"0.0.0.0", "0.1.2.3", "255.255.255.255",
		// CGNAT
		"100.64.0.1", "100.127.255.254",
		// IPv6 loopback and unspecified
		"::1", "::",
		// IPv6 unique-local and link-local
		"fc00::1", "fd12:3456::1", "fe80::1",
		// IPv4-mapped forms of blocked IPv4 addresses
		"::ffff:127.0.0.1", "::ffff:10.0.0.5", "::ffff:192.168.1.1",
	}

	for _, addr := range blocked {
		ip := net.ParseIP(addr)
		require.NotNil(t, ip, "bad test address: %s", addr)
		assert.False(t, IsSafeIP(ip), "must be blocked: %s", addr)
	}
}

// TestIsSafeIP_AllowedAddresses verifies that ordinary public addresses
// pass, including IPv4-mapped forms
func TestIsSafeIP_AllowedAddresses(t *testing.T) {
	allowed := []string{
		"8.8.8.8",
		"1.1.1.1",
		"93.184.216.34",
		"172.15.255.255", // just below the private range
		"172.32.0.1",     // just above the private range
		"100.63.255.255", // just below CGNAT
		"100.128.0.1",    // just above CGNAT
		"2001:4860:4860::8888",
		"::ffff:8.8.8.8",
	}

	for _, addr := range allowed {
		ip := net.ParseIP(addr)
		require.NotNil(t, ip, "bad test address: %s", addr)
		assert.True(t, IsSafeIP(ip), "must be allowed: %s", addr)
	}
}

// TestCheckURL_Rejections verifies URL-level rejections that need no DNS:
// bad schemes, loopback spellings, and literal blocked addresses
func TestCheckURL_Rejections(t *testing.T) {
	rejected := []string{
		"ftp://example.com/x",
		"file:///etc/passwd",
		"://nimadir",
		"http://localhost/x",
		"http://127.0.0.1/x",
		"http://127.1.2.3/x",
		"http://[::1]/x",
		"http://10.0.0.5/x",
		"http://192.168.1.1:8080/x",
		"http://169.254.169.254/latest/meta-data/",
		"https://[fc00::1]/x",
	}

	for _, rawURL := range rejected {
		assert.False(t, CheckURL(rawURL), "must be rejected: %s", rawURL)
	}
}

// TestInternetOl_UnsafeURL verifies the builtin reports and returns the
// empty string for a rejected URL
func TestInternetOl_UnsafeURL(t *testing.T) {
	rt := &testRuntime{}
	result := call(t, rt, "internet_ol", &objects.String{Value: "http://127.0.0.1/x"})
	assert.Equal(t, "", result.(*objects.String).Value)
	assert.NotEmpty(t, rt.errors)
}

// TestInternetYoz_UnsafeURL verifies the POST builtin applies the same
// policy
func TestInternetYoz_UnsafeURL(t *testing.T) {
	rt := &testRuntime{}
	result := call(t, rt, "internet_yoz",
		&objects.String{Value: "http://[::1]/x"},
		&objects.String{Value: "ma'lumot"})
	assert.Equal(t, "", result.(*objects.String).Value)
	assert.NotEmpty(t, rt.errors)
}

// TestInternetOl_MissingArgument verifies arity handling
func TestInternetOl_MissingArgument(t *testing.T) {
	rt := &testRuntime{}
	result := call(t, rt, "internet_ol")
	assert.Equal(t, "", result.(*objects.String).Value)
	assert.NotEmpty(t, rt.errors)
}
