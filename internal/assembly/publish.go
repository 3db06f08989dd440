package assembly

import (
	"fmt"
	"io"
	"os"

	"github.com/maksimkurb/wpa-netman/internal/errors"
	"github.com/maksimkurb/wpa-netman/internal/utils"
)

// BackupSuffix is appended to the target path to name its backup copy.
const BackupSuffix = ".bkp"

// BackupPath returns the backup file path for a publish target.
func BackupPath(target string) string {
	return target + BackupSuffix
}

// Publish writes the assembled document to the target path. When a file
// already exists there, its current contents are first copied byte for
// byte to <target>.bkp, replacing any previous backup.
//
// The backup and the write are two separate steps. A crash in between
// leaves the backup complete and the target still holding the old
// contents; a failed write after a successful backup surfaces the write
// error while the backup stays intact.
func Publish(text, target string) error {
	if _, err := os.Stat(target); err == nil {
		if err := backupFile(target); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return errors.NewIOError(fmt.Sprintf("failed to check target '%s'", target), err)
	}

	if err := os.WriteFile(target, []byte(text), 0600); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to write configuration '%s'", target), err)
	}

	return nil
}

func backupFile(target string) error {
	src, err := os.Open(target)
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to open '%s' for backup", target), err)
	}
	defer utils.CloseOrPanic(src)

	backupPath := BackupPath(target)
	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to create backup '%s'", backupPath), err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		utils.CloseOrWarn(dst)
		return errors.NewIOError(fmt.Sprintf("failed to copy backup '%s'", backupPath), err)
	}

	if err := dst.Close(); err != nil {
		return errors.NewIOError(fmt.Sprintf("failed to finalize backup '%s'", backupPath), err)
	}

	return nil
}
