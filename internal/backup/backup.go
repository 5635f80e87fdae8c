package backup

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DirName is the backup directory created next to each client config file.
const DirName = ".mcp-manager-backups"

// TimestampFormat is the suffix appended to backup file names.
const TimestampFormat = "20060102_150405"

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates no backups exist for the specified config file.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrBackupNotFound indicates the specified backup file does not exist.
	ErrBackupNotFound = errors.New("backup not found")
)

// Entry describes one backup of a client config file.
type Entry struct {
	// Path is the absolute path of the backup file.
	Path string `json:"path"`

	// Original is the file name the backup was taken from.
	Original string `json:"original"`

	// CreatedAt is the timestamp encoded in the backup file name.
	CreatedAt time.Time `json:"created_at"`
}

// Dir returns the backup directory for a config file: a sibling
// DirName directory next to it.
func Dir(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), DirName)
}

// Create copies configPath into its backup directory, named
// <filename>.<timestamp>. It returns the backup path, or "" when the config
// file does not exist (a missing file needs no backup).
func Create(configPath string) (string, error) {
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "stat %s", configPath)
	}

	dir := Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}

	name := filepath.Base(configPath) + "." + time.Now().Format(TimestampFormat)
	dst := filepath.Join(dir, name)
	if _, err := copyFile(configPath, dst); err != nil {
		return "", errors.Wrapf(err, "backing up %s", configPath)
	}

	return dst, nil
}

// List returns the backups of configPath, newest first.
// Returns ErrNoBackupsFound when the backup directory is missing or holds no
// backups of this file.
func List(configPath string) ([]Entry, error) {
	dir := Dir(configPath)
	base := filepath.Base(configPath)

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	backups := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		suffix, ok := strings.CutPrefix(de.Name(), base+".")
		if !ok {
			continue
		}
		ts, err := time.ParseInLocation(TimestampFormat, suffix, time.Local)
		if err != nil {
			// Foreign files in the backup directory are ignored.
			continue
		}
		backups = append(backups, Entry{
			Path:      filepath.Join(dir, de.Name()),
			Original:  base,
			CreatedAt: ts,
		})
	}

	if len(backups) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(backups, func(a, b Entry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return backups, nil
}

// Restore copies a backup file back over configPath. The current config, if
// any, is backed up first so a restore is never destructive.
func Restore(backupPath, configPath string) error {
	// Read the backup up front: backing up the current config below may
	// reuse the same timestamped name within one second.
	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrBackupNotFound, "%s", backupPath)
		}
		return errors.Wrapf(err, "reading %s", backupPath)
	}
	info, err := os.Stat(backupPath)
	if err != nil {
		return errors.Wrapf(err, "stat %s", backupPath)
	}

	if _, err := Create(configPath); err != nil {
		return errors.Wrap(err, "backing up current config before restore")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", configPath)
	}
	if err := os.WriteFile(configPath, data, info.Mode()); err != nil {
		return errors.Wrapf(err, "restoring %s", configPath)
	}

	return nil
}

// Prune removes backups of configPath beyond the most recent keep entries.
// The reconciliation core never prunes; this exists for the CLI's explicit
// backup retention command.
func Prune(configPath string, keep int) (removed int, err error) {
	if keep < 0 {
		return 0, errors.New("keep must be non-negative")
	}

	backups, err := List(configPath)
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return 0, nil
		}
		return 0, err
	}

	// Already sorted newest first, delete everything beyond keep.
	for i := keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return removed, errors.Wrapf(err, "removing backup %s", backups[i].Path)
		}
		removed++
	}

	return removed, nil
}

// copyFile copies a file from src to dst, preserving the source's mode.
func copyFile(src, dst string) (fs.FileMode, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return 0, errors.Wrap(err, "stat source file")
	}
	mode := srcInfo.Mode()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, errors.Wrap(err, "creating destination file")
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return 0, errors.Wrap(err, "copying file")
	}

	if err := dstFile.Close(); err != nil {
		return 0, errors.Wrap(err, "closing destination file")
	}

	if err := os.Chmod(dst, mode); err != nil {
		return 0, errors.Wrap(err, "setting permissions")
	}

	return mode, nil
}
