// Package fragment implements the network configuration block model for
// wpa-netman.
//
// A fragment is one network's configuration: an SSID plus a free-form
// mapping of option keys to raw string values. The package owns the
// textual block format used both for per-network fragment files and for
// blocks embedded in a monolithic wpa_supplicant.conf:
//
//	network={
//		ssid="home"
//		psk="secret-passphrase"
//	}
//
// # Components
//
//   - Fragment: the value object (SSID + options mapping)
//   - Serialize/Deserialize: the block codec, round-trip safe
//   - ValidatePassphrase/ValidatePSK: wpa_supplicant key material rules
//   - Extract: best-effort scanner pulling blocks out of a legacy
//     monolithic configuration file
//
// # Format Rules
//
//   - Option lines are tab-indented key=value pairs; values are stored
//     verbatim (quotes included, if the caller supplied them)
//   - The ssid key is reserved: the codec injects it on Serialize and
//     strips it (unquoting the value) on Deserialize
//   - A value may itself contain "=" characters; only the first "="
//     separates key from value
//   - A line without "=" parses as a key with an empty value
//
// # Example Usage
//
// Building and serializing a fragment:
//
//	frag := fragment.New("home")
//	frag.Options[fragment.KeyPSK] = "\"secret-passphrase\""
//	fmt.Println(frag.Serialize())
//
// Migrating blocks out of a legacy monolithic file:
//
//	fragments, err := fragment.Extract("/opt/etc/wpa_supplicant.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, frag := range fragments {
//	    fmt.Printf("found network %s\n", frag.SSID)
//	}
//
// Extract is deliberately permissive: comment lines are skipped even
// inside blocks, and malformed or unterminated blocks are dropped rather
// than failing the whole scan. This mirrors the looseness of the legacy
// format instead of fixing it.
package fragment
