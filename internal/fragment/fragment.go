package fragment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maksimkurb/wpa-netman/internal/errors"
)

const (
	// KeySSID is the reserved option key carrying the network identifier.
	// It never appears in Fragment.Options; the codec injects and extracts
	// it on serialization boundaries.
	KeySSID = "ssid"

	// KeyPSK is the well-known option key for the pre-shared key.
	KeyPSK = "psk"

	// KeyMgmt is the well-known option key for the key management mode.
	KeyMgmt = "key_mgmt"

	// KeyMgmtNone is the KeyMgmt value marking an open (unsecured) network.
	KeyMgmtNone = "NONE"
)

const (
	blockOpen  = "network={"
	blockClose = "}"
)

// Fragment is one network's configuration block: the network identifier
// (SSID) plus a free-form mapping of option keys to raw string values.
//
// Option values are stored verbatim, including any surrounding quote
// characters the caller supplied. Quoting decisions belong to the caller,
// not to the model.
type Fragment struct {
	SSID    string
	Options map[string]string
}

// New creates a Fragment with an initialized options mapping.
func New(ssid string) *Fragment {
	return &Fragment{
		SSID:    ssid,
		Options: make(map[string]string),
	}
}

func (f *Fragment) String() string {
	return f.SSID
}

// Serialize renders the fragment as a wpa_supplicant network block:
//
//	network={
//		ssid="<identifier>"
//		<key>=<value>
//		...
//	}
//
// Option lines are tab-indented. The ssid line always comes first; the
// remaining keys are emitted in sorted order so the output is stable
// across runs. The returned text has no trailing newline.
func (f *Fragment) Serialize() string {
	var b strings.Builder

	b.WriteString(blockOpen)
	b.WriteString("\n")
	fmt.Fprintf(&b, "\t%s=\"%s\"\n", KeySSID, f.SSID)

	keys := make([]string, 0, len(f.Options))
	for key := range f.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&b, "\t%s=%s\n", key, f.Options[key])
	}

	b.WriteString(blockClose)
	return b.String()
}

// Deserialize parses text of the form produced by Serialize back into a
// Fragment.
//
// The first line (the block opener) and the last line (the closing brace)
// are discarded without inspection. Every interior line is trimmed of
// surrounding whitespace and split on its first "=" into key and value;
// any further "=" characters stay in the value. A line without "=" becomes
// a key with an empty value. Blank interior lines are ignored.
//
// The ssid option is required and its value must be wrapped in double
// quotes; the quotes are stripped to obtain the identifier, and the entry
// is removed from the options mapping. A missing or unquoted ssid fails
// with a MALFORMED_FRAGMENT error.
func Deserialize(text string) (*Fragment, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, errors.NewMalformedFragmentError("text is not a network block", nil)
	}

	options := make(map[string]string)
	for _, raw := range lines[1 : len(lines)-1] {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 1 {
			options[parts[0]] = ""
			continue
		}
		options[parts[0]] = parts[1]
	}

	quoted, ok := options[KeySSID]
	if !ok {
		return nil, errors.NewMalformedFragmentError("network block is missing the required ssid option", nil)
	}
	if len(quoted) < 2 || !strings.HasPrefix(quoted, "\"") || !strings.HasSuffix(quoted, "\"") {
		return nil, errors.NewMalformedFragmentError(
			fmt.Sprintf("ssid value %s is not a double-quoted string", quoted), nil)
	}
	delete(options, KeySSID)

	return &Fragment{
		SSID:    quoted[1 : len(quoted)-1],
		Options: options,
	}, nil
}
