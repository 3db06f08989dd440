package fragment

import (
	"reflect"
	"testing"

	"github.com/maksimkurb/wpa-netman/internal/errors"
)

func TestSerialize(t *testing.T) {
	frag := &Fragment{
		SSID: "home",
		Options: map[string]string{
			"psk":      "\"secret-passphrase\"",
			"priority": "5",
		},
	}

	expected := "network={\n" +
		"\tssid=\"home\"\n" +
		"\tpriority=5\n" +
		"\tpsk=\"secret-passphrase\"\n" +
		"}"

	if got := frag.Serialize(); got != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestSerialize_NoOptions(t *testing.T) {
	frag := New("bare")

	expected := "network={\n\tssid=\"bare\"\n}"

	if got := frag.Serialize(); got != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestSerialize_SortsOptionKeys(t *testing.T) {
	frag := &Fragment{
		SSID: "office",
		Options: map[string]string{
			"scan_ssid": "1",
			"key_mgmt":  "WPA-PSK",
			"psk":       "\"pw123456\"",
		},
	}

	first := frag.Serialize()
	for i := 0; i < 10; i++ {
		if got := frag.Serialize(); got != first {
			t.Fatalf("Serialize is not stable: got\n%s\nand\n%s", first, got)
		}
	}
}

func TestDeserialize(t *testing.T) {
	text := "network={\n" +
		"\tssid=\"home\"\n" +
		"\tpsk=\"secret-passphrase\"\n" +
		"\tpriority=5\n" +
		"}"

	frag, err := Deserialize(text)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if frag.SSID != "home" {
		t.Errorf("Expected ssid 'home', got '%s'", frag.SSID)
	}

	expected := map[string]string{
		"psk":      "\"secret-passphrase\"",
		"priority": "5",
	}
	if !reflect.DeepEqual(frag.Options, expected) {
		t.Errorf("Expected options %v, got %v", expected, frag.Options)
	}
}

func TestDeserialize_SSIDNotInOptions(t *testing.T) {
	frag, err := Deserialize("network={\n\tssid=\"home\"\n}")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, exists := frag.Options[KeySSID]; exists {
		t.Error("Expected ssid to be removed from options")
	}
}

func TestDeserialize_ValueKeepsExtraEquals(t *testing.T) {
	text := "network={\n" +
		"\tssid=\"home\"\n" +
		"\tpsk=\"a=b=c\"\n" +
		"}"

	frag, err := Deserialize(text)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := frag.Options["psk"]; got != "\"a=b=c\"" {
		t.Errorf("Expected value '\"a=b=c\"', got '%s'", got)
	}
}

func TestDeserialize_LineWithoutEquals(t *testing.T) {
	text := "network={\n" +
		"\tssid=\"home\"\n" +
		"\tmesh\n" +
		"}"

	frag, err := Deserialize(text)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, exists := frag.Options["mesh"]
	if !exists {
		t.Fatal("Expected 'mesh' to be parsed as a key")
	}
	if got != "" {
		t.Errorf("Expected empty value, got '%s'", got)
	}
}

func TestDeserialize_BlankInteriorLinesIgnored(t *testing.T) {
	text := "network={\n" +
		"\n" +
		"\tssid=\"home\"\n" +
		"\t\n" +
		"}"

	frag, err := Deserialize(text)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(frag.Options) != 0 {
		t.Errorf("Expected no options, got %v", frag.Options)
	}
}

func TestDeserialize_SurroundingWhitespace(t *testing.T) {
	text := "\n\n  network={\n" +
		"    ssid=\"home\"  \n" +
		"  }\n\n"

	frag, err := Deserialize(text)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if frag.SSID != "home" {
		t.Errorf("Expected ssid 'home', got '%s'", frag.SSID)
	}
}

func TestDeserialize_MissingSSID(t *testing.T) {
	text := "network={\n" +
		"\tpsk=\"secret-passphrase\"\n" +
		"}"

	_, err := Deserialize(text)
	if err == nil {
		t.Fatal("Expected an error for a block without ssid")
	}
	if !errors.IsCode(err, errors.ErrCodeMalformedFragment) {
		t.Errorf("Expected MALFORMED_FRAGMENT, got %v", err)
	}
}

func TestDeserialize_UnquotedSSID(t *testing.T) {
	_, err := Deserialize("network={\n\tssid=home\n}")
	if err == nil {
		t.Fatal("Expected an error for an unquoted ssid")
	}
	if !errors.IsCode(err, errors.ErrCodeMalformedFragment) {
		t.Errorf("Expected MALFORMED_FRAGMENT, got %v", err)
	}
}

func TestDeserialize_SingleQuoteCharSSID(t *testing.T) {
	_, err := Deserialize("network={\n\tssid=\"\n}")
	if err == nil {
		t.Fatal("Expected an error for a lone-quote ssid")
	}
	if !errors.IsCode(err, errors.ErrCodeMalformedFragment) {
		t.Errorf("Expected MALFORMED_FRAGMENT, got %v", err)
	}
}

func TestDeserialize_EmptyInput(t *testing.T) {
	_, err := Deserialize("")
	if err == nil {
		t.Fatal("Expected an error for empty input")
	}
	if !errors.IsCode(err, errors.ErrCodeMalformedFragment) {
		t.Errorf("Expected MALFORMED_FRAGMENT, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	original := &Fragment{
		SSID: "guest-network_2",
		Options: map[string]string{
			"key_mgmt":  "WPA-PSK",
			"psk":       "\"pw123456\"",
			"priority":  "10",
			"scan_ssid": "1",
		},
	}

	restored, err := Deserialize(original.Serialize())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if restored.SSID != original.SSID {
		t.Errorf("Expected ssid '%s', got '%s'", original.SSID, restored.SSID)
	}
	if !reflect.DeepEqual(restored.Options, original.Options) {
		t.Errorf("Expected options %v, got %v", original.Options, restored.Options)
	}
}

func TestRoundTrip_OpenNetwork(t *testing.T) {
	original := New("cafe-guest")
	original.Options[KeyMgmt] = KeyMgmtNone

	restored, err := Deserialize(original.Serialize())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if restored.SSID != "cafe-guest" {
		t.Errorf("Expected ssid 'cafe-guest', got '%s'", restored.SSID)
	}
	if got := restored.Options[KeyMgmt]; got != KeyMgmtNone {
		t.Errorf("Expected key_mgmt=NONE, got '%s'", got)
	}
}
