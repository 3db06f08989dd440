package fragment

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/log"
	"github.com/maksimkurb/wpa-netman/internal/utils"
)

// Extract scans a monolithic legacy configuration file and returns every
// well-formed network block it contains, in file order.
//
// The scan is a two-state line machine. Each line is trimmed of
// surrounding whitespace; lines starting with "#" are skipped everywhere,
// even inside a block (a known looseness of the legacy format that is
// preserved on purpose). A line exactly equal to "network={" opens a
// block; a line exactly equal to "}" closes it and the accumulated lines
// are deserialized. A "network={" line inside an open block is
// accumulated as an ordinary option line, not a new block.
//
// Parsing is best-effort: blocks that fail to deserialize and blocks
// still open at end of file are dropped silently. Only I/O failures
// surface as errors.
func Extract(path string) ([]*Fragment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("failed to open legacy configuration '%s'", path), err)
	}
	defer utils.CloseOrPanic(file)

	var (
		fragments []*Fragment
		block     []string
		inside    bool
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		if !inside {
			if line == blockOpen {
				inside = true
				block = []string{line}
			}
			continue
		}

		block = append(block, line)
		if line != blockClose {
			continue
		}

		inside = false
		frag, err := Deserialize(strings.Join(block, "\n"))
		if err != nil {
			log.Debugf("Skipping malformed network block in '%s': %v", path, err)
			continue
		}
		fragments = append(fragments, frag)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError(fmt.Sprintf("failed to read legacy configuration '%s'", path), err)
	}

	if inside {
		log.Debugf("Dropping unterminated network block at end of '%s'", path)
	}

	return fragments, nil
}
