package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cebip/internal/backup"
)

func (a *App) exportFormat() backup.Format {
	if a.config != nil {
		if f, err := backup.ParseFormat(a.config.ExportFormat); err == nil {
			return f
		}
	}
	return backup.FormatJSON
}

// Export writes a full snapshot to a local file and, when configured, to
// the remote sink as well.
func (a *App) Export(ctx context.Context, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	format := backup.FormatForPath(name, a.exportFormat())

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	snap := a.repo.ExportData(ctx)

	path, err := backup.Export(ctx, a.files, name, snap, format)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "backup written", "path", path)
	fmt.Fprintf(a.out, "Exported %d users, %d benefits, %d promotions to %s\n",
		len(snap.Users), len(snap.Benefits), len(snap.Promotions), path)

	if a.remote != nil {
		loc, err := backup.Export(ctx, a.remote, name, snap, format)
		if err != nil {
			return fmt.Errorf("local backup kept at %s: %w", path, err)
		}
		a.log.Info(ctx, "backup uploaded", "location", loc)
		fmt.Fprintf(a.out, "Uploaded to %s\n", loc)
	}
	return nil
}

// Import restores the collections present in a backup file.
func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: import <file>")
		return nil
	}

	data, err := backup.Load(args[0], a.exportFormat())
	if err != nil {
		return err
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.repo.ImportData(ctx, data); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Imported:")
	if data.Users != nil {
		fmt.Fprintf(a.out, "  users: %d\n", len(data.Users))
	}
	if data.Benefits != nil {
		fmt.Fprintf(a.out, "  benefits: %d\n", len(data.Benefits))
	}
	if data.Promotions != nil {
		fmt.Fprintf(a.out, "  promotions: %d\n", len(data.Promotions))
	}
	return nil
}

// Reset clears every collection after confirmation. Defaults are seeded
// again on the next start.
func (a *App) Reset(ctx context.Context) error {
	ok, err := confirm(a.reader, a.out, "This removes every stored collection. Continue?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	ctx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.repo.ResetAllData(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All data cleared. Defaults are restored on next start.")
	return nil
}
