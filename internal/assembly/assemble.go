package assembly

import (
	"fmt"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/store"
)

const (
	toolName       = "wpa-netman"
	bannerTemplate = "# This file was generated by {{tool}}. DO NOT EDIT."
)

// Banner returns the generated-file warning line prepended to every
// assembled document.
func Banner() string {
	t := fasttemplate.New(bannerTemplate, "{{", "}}")
	return t.ExecuteString(map[string]interface{}{
		"tool": toolName,
	})
}

// Assemble builds the final configuration document from the static
// header, the merged fragment blocks, and the static footer:
//
//	<banner>
//
//	<header>
//
//	<merged fragments>
//
//	<footer>
//
// Sections are separated by a single blank line; trailing newlines inside
// each section are normalized away first, and empty sections are omitted
// entirely. The document always ends with a newline.
func Assemble(header, footer, merged string) string {
	sections := []string{Banner()}
	for _, section := range []string{header, merged, footer} {
		section = strings.TrimRight(section, "\n")
		if section == "" {
			continue
		}
		sections = append(sections, section)
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// BuildDocument merges every fragment in the store and assembles the full
// document with the optional static header and footer files.
//
// An empty path means no header (or footer); a configured path that
// cannot be read is an error, not a silent omission.
func BuildDocument(st *store.Store, headerPath, footerPath string) (string, error) {
	header, err := readStatic(headerPath)
	if err != nil {
		return "", err
	}

	footer, err := readStatic(footerPath)
	if err != nil {
		return "", err
	}

	merged, err := st.MergeAll()
	if err != nil {
		return "", err
	}

	return Assemble(header, footer, merged), nil
}

// readStatic loads one of the opaque head/tail blobs. The contents are
// never inspected or validated.
func readStatic(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(fmt.Sprintf("failed to read static file '%s'", path), err)
	}
	return string(data), nil
}
