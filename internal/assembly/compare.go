package assembly

import (
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/hashing"
	"github.com/maksimkurb/wpa-netman/internal/utils"
)

// ReadTarget returns the current contents of the publish target, or an
// empty string when the target does not exist yet.
func ReadTarget(target string) (string, error) {
	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.NewIOError(fmt.Sprintf("failed to read target '%s'", target), err)
	}
	return string(data), nil
}

// UpToDate reports whether the file at the target path already matches
// the assembled document. A missing target counts as out of date.
func UpToDate(text, target string) (bool, error) {
	file, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.NewIOError(fmt.Sprintf("failed to open target '%s'", target), err)
	}
	defer utils.CloseOrWarn(file)

	proxy := hashing.NewMD5ReaderProxy(file)
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return false, errors.NewIOError(fmt.Sprintf("failed to read target '%s'", target), err)
	}

	current, err := proxy.GetChecksum()
	if err != nil {
		return false, fmt.Errorf("failed to compute target checksum: %v", err)
	}

	return current == hashing.ChecksumBytes([]byte(text)), nil
}

// Diff renders a unified diff between the currently published contents
// and a freshly generated document. The result is empty when both are
// identical.
func Diff(current, generated string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(generated),
		FromFile: "current",
		ToFile:   "generated",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to compute diff: %v", err)
	}
	return text, nil
}
