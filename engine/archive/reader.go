// Package archive feeds the narration pipeline: it reads a definition file
// or a zip archive of definition files and hands the parsed object graphs to
// the caller. Malformed entries inside an archive are skipped and counted;
// the rest of the batch still loads.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/byte-coder-pir/Leucine-Narration-Maker/engine/definition"
	"github.com/byte-coder-pir/Leucine-Narration-Maker/pkg/logger"
)

// LoadResult reports what one batch load produced.
type LoadResult struct {
	Definitions []*definition.Definition
	Entries     int
	Failed      int
}

// Load reads definitions from path. A ".zip" path is treated as a batch
// archive of JSON entries; anything else as a single JSON file holding one
// definition or an array of them.
func Load(ctx context.Context, path string) (*LoadResult, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return loadArchive(ctx, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	defs, err := definition.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &LoadResult{Definitions: defs, Entries: 1}, nil
}

func loadArchive(ctx context.Context, path string) (*LoadResult, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer reader.Close()
	log := logger.FromContext(ctx)
	result := &LoadResult{}
	for _, entry := range reader.File {
		if entry.FileInfo().IsDir() || !strings.EqualFold(filepath.Ext(entry.Name), ".json") {
			continue
		}
		result.Entries++
		data, err := readEntry(entry)
		if err != nil {
			log.Warn("skipping unreadable archive entry", "entry", entry.Name, "error", err)
			result.Failed++
			continue
		}
		defs, err := definition.Decode(data)
		if err != nil {
			log.Warn("skipping malformed definition", "entry", entry.Name, "error", err)
			result.Failed++
			continue
		}
		result.Definitions = append(result.Definitions, defs...)
	}
	if result.Entries == 0 {
		return nil, fmt.Errorf("archive contains no definition entries")
	}
	return result, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
