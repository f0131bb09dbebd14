package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"adaptctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Parse decodes a catalog document. Unknown keys are rejected. source names
// the document in errors and is recorded in Sources when non-empty.
func Parse(data []byte, source string) (*Catalog, error) {
	var c Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}

	if source != "" {
		c.Sources = []string{source}
	}
	return &c, nil
}

// Load reads a catalog file, or merges every catalog file of a directory in
// lexical order.
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	if !info.IsDir() {
		return loadFile(path)
	}

	files, err := catalogFiles(path)
	if err != nil {
		return nil, err
	}

	merged := &Catalog{}
	for _, file := range files {
		c, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		merged = Merge(merged, c)
	}

	logging.Debug("Catalog", "Loaded %d catalog files from %s", len(files), path)
	return merged, nil
}

// LoadAll loads each path with Load and merges the results in order.
func LoadAll(paths ...string) (*Catalog, error) {
	merged := &Catalog{}
	for _, path := range paths {
		c, err := Load(path)
		if err != nil {
			return nil, err
		}
		merged = Merge(merged, c)
	}
	return merged, nil
}

func loadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	logging.Debug("Catalog", "Loaded catalog %s: %d protocols, %d provides, %d offers",
		path, len(c.Protocols), len(c.Provides), len(c.Offers))
	return c, nil
}

func catalogFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to list catalog files in %s: %w", dir, err)
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return files, nil
}

// Merge returns a new catalog layering overlay on top of base. Protocols
// are matched by name and replaced in place; provides declarations and
// offers are appended unless an identical entry already exists.
func Merge(base, overlay *Catalog) *Catalog {
	merged := &Catalog{
		Protocols: slices.Clone(base.Protocols),
		Provides:  slices.Clone(base.Provides),
		Offers:    slices.Clone(base.Offers),
		Sources:   append(slices.Clone(base.Sources), overlay.Sources...),
	}

	for _, p := range overlay.Protocols {
		idx := slices.IndexFunc(merged.Protocols, func(q ProtocolDefinition) bool { return q.Name == p.Name })
		if idx >= 0 {
			merged.Protocols[idx] = p
			continue
		}
		merged.Protocols = append(merged.Protocols, p)
	}

	for _, p := range overlay.Provides {
		if !slices.Contains(merged.Provides, p) {
			merged.Provides = append(merged.Provides, p)
		}
	}

	for _, o := range overlay.Offers {
		if !slices.Contains(merged.Offers, o) {
			merged.Offers = append(merged.Offers, o)
		}
	}

	return merged
}
