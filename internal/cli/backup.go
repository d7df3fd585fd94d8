package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/pellegrino/hamster/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCREATED\tSIZE")
	for _, b := range backups {
		fmt.Fprintf(w, "%s\t%s\t%d bytes\n",
			filepath.Base(b.Path), b.Timestamp.Format("2006-01-02 15:04"), b.Size)
	}
	return w.Flush()
}

type BackupRestoreCmd struct {
	Backup string `arg:"" help:"Backup file name or path."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	path := c.Backup
	if !filepath.IsAbs(path) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filepath.Join(mgr.GetBackupDir(), c.Backup)
		}
	}

	// The restore swaps the file out from under the open store
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close storage before restore: %w", err)
	}

	if err := mgr.RestoreBackup(path); err != nil {
		return err
	}
	fmt.Printf("Restored storage from: %s\n", filepath.Base(path))
	return nil
}
