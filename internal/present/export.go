package present

import (
	"fmt"
	"os"
	"path/filepath"
)

// Saved records one image written to disk.
type Saved struct {
	Name  string // region name: original, subdivision, minor
	Label string
	Path  string
}

// Export writes the visible images of snap into dir, creating it if
// missing. Files are named after their region with an extension matching
// the sniffed format. Hidden regions and empty images are skipped.
func Export(snap Snapshot, dir string) ([]Saved, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	regions := []struct {
		name   string
		region Region
	}{
		{"original", snap.Original},
		{"subdivision", snap.Subdivision},
		{"minor", snap.Minor},
	}

	var saved []Saved
	for _, r := range regions {
		if !r.region.Visible || r.region.Image.Empty() {
			continue
		}
		path := filepath.Join(dir, r.name+r.region.Image.Ext())
		if err := r.region.Image.Save(path); err != nil {
			return saved, fmt.Errorf("save %s image: %w", r.name, err)
		}
		saved = append(saved, Saved{Name: r.name, Label: r.region.Label, Path: path})
	}
	return saved, nil
}
