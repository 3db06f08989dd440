package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/fragment"
)

// FragmentSuffix is the file extension of every fragment in the store.
const FragmentSuffix = ".conf"

// Store is a directory-backed collection of network fragments, one file
// per SSID, named <ssid>.conf.
//
// Existence checks and writes are separate filesystem calls with no
// locking in between: two concurrent processes can race and produce a
// lost update or a spurious already-exists/not-found. This is a known,
// accepted limitation of the store.
type Store struct {
	Dir string
}

// New creates a Store over the given networks directory.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// FragmentPath returns the on-disk path of the fragment for an SSID.
func (s *Store) FragmentPath(ssid string) string {
	return filepath.Join(s.Dir, ssid+FragmentSuffix)
}

// Write serializes a fragment into the store. If a fragment for the same
// SSID already exists and overwrite is false, it fails with
// ALREADY_EXISTS and leaves the existing file untouched.
//
// Fragment files carry key material, so they are written with 0600.
func (s *Store) Write(frag *fragment.Fragment, overwrite bool) error {
	if err := validateSSID(frag.SSID); err != nil {
		return err
	}

	path := s.FragmentPath(frag.SSID)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.NewAlreadyExistsError(
				fmt.Sprintf("network '%s' already exists ('%s')", frag.SSID, path))
		} else if !os.IsNotExist(err) {
			return errors.NewIOError(fmt.Sprintf("failed to check fragment '%s'", path), err)
		}
	}

	if err := os.WriteFile(path, []byte(frag.Serialize()), 0600); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to write fragment '%s'", path), err)
	}

	return nil
}

// Read loads and deserializes the fragment for an SSID. It fails with
// NOT_FOUND if no file exists and MALFORMED_FRAGMENT if the file does
// not parse.
func (s *Store) Read(ssid string) (*fragment.Fragment, error) {
	if err := validateSSID(ssid); err != nil {
		return nil, err
	}

	path := s.FragmentPath(ssid)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("network '%s' not found", ssid))
		}
		return nil, errors.NewIOError(fmt.Sprintf("failed to read fragment '%s'", path), err)
	}

	frag, err := fragment.Deserialize(string(data))
	if err != nil {
		return nil, errors.NewMalformedFragmentError(
			fmt.Sprintf("fragment '%s' is malformed", path), err)
	}

	return frag, nil
}

// Delete removes the fragment for an SSID. The existence check runs
// before the removal, so a missing fragment fails with NOT_FOUND rather
// than with the raw unlink error.
func (s *Store) Delete(ssid string) error {
	if err := validateSSID(ssid); err != nil {
		return err
	}

	path := s.FragmentPath(ssid)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError(fmt.Sprintf("network '%s' not found", ssid))
		}
		return errors.NewIOError(fmt.Sprintf("failed to check fragment '%s'", path), err)
	}

	if err := os.Remove(path); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to delete fragment '%s'", path), err)
	}

	return nil
}

// validateSSID rejects identifiers that cannot name a file inside the
// store directory.
func validateSSID(ssid string) error {
	if ssid == "" {
		return errors.NewValidationError("ssid must not be empty", nil)
	}
	if strings.ContainsRune(ssid, '/') || strings.ContainsRune(ssid, filepath.Separator) {
		return errors.NewValidationError(
			fmt.Sprintf("ssid '%s' contains a path separator", ssid), nil)
	}
	return nil
}
