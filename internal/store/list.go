package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maksimkurb/wpa-netman/internal/errors"
)

// fragmentEntries enumerates the fragment files in the store directory,
// in directory listing order. Subdirectories and entries without the
// fragment suffix are skipped.
func (s *Store) fragmentEntries() ([]os.DirEntry, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, errors.NewIOError(
			fmt.Sprintf("failed to list networks directory '%s'", s.Dir), err)
	}

	var fragments []os.DirEntry
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FragmentSuffix) {
			continue
		}
		fragments = append(fragments, entry)
	}

	return fragments, nil
}

// List returns the SSIDs of all fragments in the store, suffixes
// stripped, in directory listing order.
func (s *Store) List() ([]string, error) {
	entries, err := s.fragmentEntries()
	if err != nil {
		return nil, err
	}

	ssids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ssids = append(ssids, strings.TrimSuffix(entry.Name(), FragmentSuffix))
	}

	return ssids, nil
}

// MergeAll concatenates the raw contents of every fragment file, each
// followed by two newline characters, in the same order List uses.
//
// Files are passed through byte for byte: a hand-edited fragment with
// extra comments or a malformed block is merged verbatim instead of
// failing the merge. Parse errors belong to Read, not here.
func (s *Store) MergeAll() (string, error) {
	entries, err := s.fragmentEntries()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, entry := range entries {
		path := filepath.Join(s.Dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.NewIOError(fmt.Sprintf("failed to read fragment '%s'", path), err)
		}

		b.Write(data)
		b.WriteString("\n\n")
	}

	return b.String(), nil
}
