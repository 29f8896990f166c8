/*
File    : uz-go/std/http.go
Author  : Algorix Devs
Contact : dev(@algorix.io)
*/

// Package std - http.go
// This file defines the outbound HTTP builtin functions (internet_ol,
// internet_yoz) and the safety policy that guards them.
//
// The policy only admits a URL when its scheme is http or https, its host
// is not an obvious loopback spelling, and every address the host resolves
// to lies outside the loopback, private, link-local, CGNAT, broadcast, and
// unspecified ranges. Redirects are disabled on the shared client so a 3xx
// answer cannot rebind a request to an internal host, and response bodies
// are capped at 5 MiB.
package std

import (
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/algorix-io/uz-go/objects"
)

var httpMethods = []*Builtin{
	{Name: "internet_ol", Callback: httpGet},   // Performs a guarded HTTP GET request
	{Name: "internet_yoz", Callback: httpPost}, // Performs a guarded HTTP POST request
}

// init registers the HTTP methods as global builtins.
func init() {
	Builtins = append(Builtins, httpMethods...)
}

// maxResponseBytes is the hard cap on a response body. Excess bytes are
// truncated, never read.
const maxResponseBytes = 5 << 20 // 5 MiB

// httpClient is the shared outbound client. Redirects are disabled and
// the whole request is bounded by a 10-second timeout. The client owns
// its connection pool for the lifetime of the process.
var httpClient = &http.Client{
	Timeout: 10 * time.Second,
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// blockedNetworks enumerates the address ranges an outbound request may
// never target. IPv4-mapped IPv6 addresses are normalized to IPv4 before
// the check, so the v4 ranges cover their mapped forms too.
var blockedNetworks = mustParseCIDRs(
	// IPv4
	"127.0.0.0/8",    // loopback
	"10.0.0.0/8",     // private
	"172.16.0.0/12",  // private
	"192.168.0.0/16", // private
	"169.254.0.0/16", // link-local
	"0.0.0.0/8",      // this-network
	"100.64.0.0/10",  // CGNAT
	// IPv6
	"::1/128",   // loopback
	"::/128",    // unspecified
	"fc00::/7",  // unique-local
	"fe80::/10", // link-local
)

// mustParseCIDRs parses a list of CIDR strings into networks.
// The inputs are compile-time constants, so a parse failure is a
// programming error and panics during package initialization.
func mustParseCIDRs(cidrs ...string) []*net.IPNet {
	networks := make([]*net.IPNet, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(err)
		}
		networks = append(networks, network)
	}
	return networks
}

// IsSafeIP reports whether an IP address may be the target of an outbound
// request. An address is safe when it lies outside every blocked range.
// An IPv4-mapped IPv6 address is safe iff its embedded IPv4 is safe.
func IsSafeIP(ip net.IP) bool {
	// Normalize IPv4-mapped IPv6 addresses to their embedded IPv4
	if ip4 := ip.To4(); ip4 != nil {
		ip = ip4
		// Limited broadcast has no CIDR entry above
		if ip.Equal(net.IPv4bcast) {
			return false
		}
	}
	for _, network := range blockedNetworks {
		if network.Contains(ip) {
			return false
		}
	}
	return true
}

// CheckURL validates an outbound URL against the safety policy.
//
// A URL is accepted only when ALL of the following hold:
//   - The scheme is http or https
//   - The host is not "localhost", "::1", or a "127."-prefixed literal
//   - DNS resolution of the host succeeds, and EVERY resolved address
//     is a safe IP (see IsSafeIP)
//
// Returns:
//   - bool: true when the URL may be fetched, false otherwise
func CheckURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	host := parsed.Hostname()
	if host == "" || host == "localhost" || host == "::1" || strings.HasPrefix(host, "127.") {
		return false
	}

	addrs, err := net.LookupIP(host)
	if err != nil || len(addrs) == 0 {
		return false
	}
	for _, addr := range addrs {
		if !IsSafeIP(addr) {
			return false
		}
	}
	return true
}

// readBody reads a response body with the hard size cap applied.
func readBody(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, maxResponseBytes))
}

// httpGet performs a guarded GET request to the specified URL.
// Returns the response body as a String. Any failure (unsafe URL,
// resolution failure, network error, read error) is reported and yields
// the empty String.
//
// Syntax: internet_ol(url)
func httpGet(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	if len(args) < 1 {
		rt.ReportError("Xatolik: 'internet_ol' uchun URL kerak")
		return &objects.String{Value: ""}
	}
	rawURL := args[0].ToString()

	if !CheckURL(rawURL) {
		rt.ReportError("Xatolik: xavfsiz bo'lmagan URL: %s", rawURL)
		return &objects.String{Value: ""}
	}

	resp, err := httpClient.Get(rawURL)
	if err != nil {
		rt.ReportError("Xatolik: internet so'rovi muvaffaqiyatsiz: %v", err)
		return &objects.String{Value: ""}
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		rt.ReportError("Xatolik: javobni o'qib bo'lmadi: %v", err)
		return &objects.String{Value: ""}
	}
	return &objects.String{Value: string(body)}
}

// httpPost performs a guarded POST request with content type
// application/json; the body is the display form of the second argument.
// Returns the response body as a String. Any failure is reported and
// yields the empty String.
//
// Syntax: internet_yoz(url, body)
func httpPost(rt Runtime, writer io.Writer, args ...objects.UzObject) objects.UzObject {
	if len(args) < 2 {
		rt.ReportError("Xatolik: 'internet_yoz' uchun URL va ma'lumot kerak")
		return &objects.String{Value: ""}
	}
	rawURL := args[0].ToString()
	payload := args[1].ToString()

	if !CheckURL(rawURL) {
		rt.ReportError("Xatolik: xavfsiz bo'lmagan URL: %s", rawURL)
		return &objects.String{Value: ""}
	}

	resp, err := httpClient.Post(rawURL, "application/json", strings.NewReader(payload))
	if err != nil {
		rt.ReportError("Xatolik: internet so'rovi muvaffaqiyatsiz: %v", err)
		return &objects.String{Value: ""}
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		rt.ReportError("Xatolik: javobni o'qib bo'lmadi: %v", err)
		return &objects.String{Value: ""}
	}
	return &objects.String{Value: string(body)}
}
