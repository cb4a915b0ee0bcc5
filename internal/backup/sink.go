package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/cebip/internal/filex"
	"github.com/dmitrijs2005/cebip/internal/models"
)

// Sink stores an encoded snapshot under name and returns where it went.
type Sink interface {
	Put(ctx context.Context, name string, data []byte, f Format) (string, error)
}

// DefaultName is the file name used when the caller does not pick one.
func DefaultName(now time.Time, f Format) string {
	return fmt.Sprintf("cebip-backup-%s%s", now.UTC().Format("2006-01-02"), f.Ext())
}

// FileSink writes snapshots to the local filesystem. Relative names are
// placed under Dir.
type FileSink struct {
	Dir string
}

func (s FileSink) Put(_ context.Context, name string, data []byte, _ Format) (string, error) {
	path := name
	if !filepath.IsAbs(path) && s.Dir != "" {
		path = filepath.Join(s.Dir, name)
	}
	return filex.WriteFile(path, data)
}

// Export encodes snap in format f and hands it to sink. An empty name
// selects DefaultName.
func Export(ctx context.Context, sink Sink, name string, snap models.Snapshot, f Format) (string, error) {
	data, err := Encode(snap, f)
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}
	if name == "" {
		name = DefaultName(snap.ExportDate, f)
	}
	return sink.Put(ctx, name, data, f)
}

// Load reads a backup file. The format follows the extension, with def
// used for unknown extensions.
func Load(path string, def Format) (models.ImportData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ImportData{}, fmt.Errorf("read backup: %w", err)
	}
	return Decode(data, FormatForPath(path, def))
}
