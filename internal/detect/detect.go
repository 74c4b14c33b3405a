// Package detect matches response text against known content-filter
// block-page fingerprints.
package detect

import "strings"

// Rule is a named vendor fingerprint. Any pattern appearing as a substring
// of the lowercased snippet identifies the vendor.
type Rule struct {
	Vendor   string
	Patterns []string
}

// GenericVendor is the synthetic name reported when none of the named
// vendor rules matched but the text still looks like a block page.
const GenericVendor = "Generic filter page"

// vendorRules is evaluated strictly in declaration order: the first rule
// with any matching pattern wins, so more specific vendors come first.
// Keep this a slice; precedence depends on order.
var vendorRules = []Rule{
	{Vendor: "GoGuardian", Patterns: []string{"goguardian"}},
	{Vendor: "Securly", Patterns: []string{"securly"}},
	{Vendor: "Lightspeed", Patterns: []string{"lightspeed systems", "lightspeed filter", "lightspeedsystems"}},
	{Vendor: "Linewize", Patterns: []string{"linewize"}},
	{Vendor: "ContentKeeper", Patterns: []string{"contentkeeper"}},
	{Vendor: "iBoss", Patterns: []string{"iboss"}},
	{Vendor: "Smoothwall", Patterns: []string{"smoothwall"}},
	{Vendor: "Blocksi", Patterns: []string{"blocksi"}},
	{Vendor: "FortiGuard", Patterns: []string{"fortiguard", "fortinet"}},
	{Vendor: "Palo Alto Networks", Patterns: []string{"palo alto networks", "paloaltonetworks"}},
	{Vendor: "Cisco Umbrella", Patterns: []string{"cisco umbrella", "opendns"}},
	{Vendor: "Zscaler", Patterns: []string{"zscaler"}},
	{Vendor: "Sophos", Patterns: []string{"sophos"}},
	{Vendor: "Barracuda", Patterns: []string{"barracuda"}},
	{Vendor: "SonicWall", Patterns: []string{"sonicwall"}},
}

// genericPatterns is the fallback rule: phrases that commonly appear on
// block pages regardless of vendor.
var genericPatterns = []string{
	"this site is blocked",
	"this website is blocked",
	"this page is blocked",
	"site has been blocked",
	"blocked by your administrator",
	"blocked by the network administrator",
	"access to this site is blocked",
	"access to this page has been denied",
	"web filter",
	"content filter",
	"web filtering",
	"category: blocked",
}

// Vendor scans snippet for filter fingerprints. Matching is a
// case-insensitive whole-snippet substring search; named vendor rules take
// precedence over the generic fallback. A false result is not an error,
// merely no evidence of blocking in this text.
func Vendor(snippet string) (string, bool) {
	if snippet == "" {
		return "", false
	}
	lower := strings.ToLower(snippet)

	for _, rule := range vendorRules {
		for _, pattern := range rule.Patterns {
			if strings.Contains(lower, pattern) {
				return rule.Vendor, true
			}
		}
	}

	for _, pattern := range genericPatterns {
		if strings.Contains(lower, pattern) {
			return GenericVendor, true
		}
	}

	return "", false
}

// Rules returns a copy of the ordered vendor rule list.
func Rules() []Rule {
	out := make([]Rule, len(vendorRules))
	copy(out, vendorRules)
	return out
}
