// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot reads the line-delimited JSON catalogue snapshots and the
// sources manifest that maps origin tags to snapshot files.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/catalog-server/pkg/types"
)

// Load reads one snapshot file and returns its records in file order.
//
// Each non-blank line is parsed as one independent JSON object. Lines that
// fail to parse are dropped without error or logging: snapshots are scraped
// historical data and a dirty line must not take down the whole catalogue.
// Only a failure to read the file itself is an error.
func Load(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var records []types.Record
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec types.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadPair reads the scholarship main and detail snapshots concurrently.
// There is no ordering dependency between the two reads, but both must
// succeed before the caller can join them.
func LoadPair(ctx context.Context, mainPath, detailPath string) (main, details []types.Record, err error) {
	type loadResult struct {
		records []types.Record
		err     error
	}

	mainCh := make(chan loadResult, 1)
	detailCh := make(chan loadResult, 1)

	go func() {
		records, err := Load(mainPath)
		mainCh <- loadResult{records, err}
	}()
	go func() {
		records, err := Load(detailPath)
		detailCh <- loadResult{records, err}
	}()

	mainRes := <-mainCh
	detailRes := <-detailCh

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	if mainRes.err != nil {
		return nil, nil, mainRes.err
	}
	if detailRes.err != nil {
		return nil, nil, detailRes.err
	}
	return mainRes.records, detailRes.records, nil
}
