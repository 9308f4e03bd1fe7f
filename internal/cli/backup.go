package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuchenli/fupan/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	mgr := backup.NewManager(ctx.Store.Path())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), backup.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		fmt.Printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.Path())

	// A bare filename is resolved against the backup directory.
	backupPath := c.BackupFile
	if !filepath.IsAbs(backupPath) {
		possiblePath := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
		if _, err := os.Stat(possiblePath); err == nil {
			backupPath = possiblePath
		}
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	fmt.Println("⚠️  WARNING: This will replace your current data file with the backup.")
	fmt.Println("A backup of your current data file will be created before restoring.")
	fmt.Printf("\nRestore from: %s\n", filepath.Base(backupPath))

	ok, err := confirm("Continue?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Restore cancelled.")
		ctx.Store.Close()
		return nil
	}

	// Close the current store connection before replacing the file.
	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Data restored successfully!")
	fmt.Println("Restart any running fupan processes to use the restored data.")

	return nil
}
