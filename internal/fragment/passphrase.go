package fragment

import (
	"fmt"

	"github.com/maksimkurb/wpa-netman/internal/errors"
)

const (
	// PassphraseMinLength and PassphraseMaxLength bound a WPA passphrase
	// as defined by IEEE 802.11i (8-63 printable ASCII characters).
	PassphraseMinLength = 8
	PassphraseMaxLength = 63

	// PSKLength is the length of a raw pre-computed PSK in hex characters.
	PSKLength = 64
)

// ValidatePassphrase checks that a plain-text passphrase is between 8 and
// 63 characters inclusive. It returns an INVALID_PASSPHRASE error
// otherwise. No other properties of the passphrase are checked.
func ValidatePassphrase(passphrase string) error {
	if len(passphrase) < PassphraseMinLength || len(passphrase) > PassphraseMaxLength {
		return errors.NewInvalidPassphraseError(
			fmt.Sprintf("passphrase must be %d-%d characters, got %d",
				PassphraseMinLength, PassphraseMaxLength, len(passphrase)))
	}
	return nil
}

// ValidatePSK checks that a raw pre-computed pre-shared key is exactly 64
// hexadecimal characters. It returns an INVALID_PASSPHRASE error otherwise.
func ValidatePSK(psk string) error {
	if len(psk) != PSKLength {
		return errors.NewInvalidPassphraseError(
			fmt.Sprintf("raw PSK must be exactly %d hex characters, got %d", PSKLength, len(psk)))
	}
	for _, c := range psk {
		if !isHexDigit(c) {
			return errors.NewInvalidPassphraseError(
				fmt.Sprintf("raw PSK contains a non-hex character %q", c))
		}
	}
	return nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
