// Package backup manages rotating copies of the data file, for both
// the JSON and SQLite storage flavors.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "fupan-"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for one data file. The backup
// suffix follows the data file's extension so JSON and SQLite stores
// produce distinguishable backups.
type Manager struct {
	dataPath  string
	backupDir string
	suffix    string
}

// NewManager creates a new backup manager
func NewManager(dataPath string) *Manager {
	configDir := filepath.Dir(dataPath)
	suffix := filepath.Ext(dataPath)
	if suffix == "" {
		suffix = ".db"
	}
	return &Manager{
		dataPath:  dataPath,
		backupDir: filepath.Join(configDir, BackupDirName),
		suffix:    suffix,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

func (m *Manager) isJSON() bool {
	return m.suffix == ".json"
}

// CreateBackup creates a new backup of the data file
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup creates a new backup of the data file.
// skipRotation prevents recursive backup creation during restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.dataPath); os.IsNotExist(err) {
		return "", fmt.Errorf("data file does not exist: %s", m.dataPath)
	}

	// Timestamped name with minute precision; fall back to seconds and
	// then a counter when a backup with the same name already exists.
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+m.suffix)

	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+m.suffix)

		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupPath = filepath.Join(m.backupDir,
				fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, m.suffix))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := m.copyData(backupPath); err != nil {
		return "", fmt.Errorf("failed to back up data file: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// A rotation failure should not fail the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// copyData writes a consistent copy of the data file to destPath.
func (m *Manager) copyData(destPath string) error {
	if m.isJSON() {
		if err := m.verifyJSON(m.dataPath); err != nil {
			return fmt.Errorf("source data file appears to be corrupted: %w", err)
		}
		return copyFile(m.dataPath, destPath)
	}

	// SQLite: VACUUM INTO produces a clean snapshot even with an open
	// connection elsewhere. Requires SQLite 3.27+; fall back to a file
	// copy when unavailable.
	srcDB, err := sql.Open("sqlite", m.dataPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		srcDB.Close()
		return copyFile(m.dataPath, destPath)
	}

	return nil
}

// ListBackups returns all available backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix)
		timestampStr = trimCounterSuffix(timestampStr)

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// trimCounterSuffix strips the "-N" disambiguation counter from a
// backup timestamp, leaving plain timestamps untouched.
func trimCounterSuffix(timestampStr string) string {
	parts := strings.Split(timestampStr, "-")
	if len(parts) <= 2 {
		return timestampStr
	}
	last := parts[len(parts)-1]
	// Time components are 4 or 6 digits; anything else that is all
	// digits is a counter.
	if len(last) == 4 || len(last) == 6 {
		return timestampStr
	}
	for _, c := range last {
		if c < '0' || c > '9' {
			return timestampStr
		}
	}
	return strings.Join(parts[:len(parts)-1], "-")
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= MaxBackups {
		return nil
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup replaces the data file with a backup, saving a copy of
// the current file first.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.dataPath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to back up current data file before restore: %w", err)
		}
		fmt.Printf("Created backup of current data file: %s\n", filepath.Base(currentBackup))
	}

	// Copy to a temp file next to the target, then rename atomically.
	tempPath := m.dataPath + ".restore.tmp"

	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.dataPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore data file: %w", err)
	}

	return nil
}

// verifyBackup checks that a backup file is readable in its format.
func (m *Manager) verifyBackup(path string) error {
	if m.isJSON() {
		return m.verifyJSON(path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func (m *Manager) verifyJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc map[string]any
	return json.Unmarshal(data, &doc)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
