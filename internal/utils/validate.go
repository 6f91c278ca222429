package utils

import (
	"regexp"  // Regular expressions
	"strings" // String manipulation

	"golang.org/x/text/unicode/norm" // Unicode normalization
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	walletPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	uuidPattern   = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// IsValidEmail applies a loose local@domain.tld check
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidWalletAddress checks for a 0x-prefixed 20-byte hex address
func IsValidWalletAddress(address string) bool {
	return walletPattern.MatchString(address)
}

// IsUUIDShaped checks for the canonical 8-4-4-4-12 form in either case
func IsUUIDShaped(id string) bool {
	return uuidPattern.MatchString(id)
}

// WalletAddressDetails describes why an address was rejected
type WalletAddressDetails struct {
	Address      string `json:"address"`
	Length       int    `json:"length"`
	StartsWith0x bool   `json:"startsWith0x"`
	HexOnly      bool   `json:"hexOnly"`
}

// DescribeWalletAddress reports the checks an address passes or fails
func DescribeWalletAddress(address string) WalletAddressDetails {
	return WalletAddressDetails{
		Address:      address,
		Length:       len(address),
		StartsWith0x: strings.HasPrefix(address, "0x"),
		HexOnly:      walletPattern.MatchString(address),
	}
}

// NormalizeWalletAddress returns the stored form of an address
func NormalizeWalletAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// NormalizeEmail returns the stored form of an email; uniqueness is case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims a display name and puts it in NFC form
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
