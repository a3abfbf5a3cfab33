// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/jcodagnone/hclust/clustering"
	"github.com/jcodagnone/hclust/dataset"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// stderrIsTerminal decides between a progress bar and one log line per merge.
var stderrIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stderr.Fd())
}

func parseTarget(arg string) (int, error) {
	target, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", clustering.ErrInvalidTarget, arg)
	}

	if target < 1 {
		return 0, fmt.Errorf("%w: got %d", clustering.ErrInvalidTarget, target)
	}

	return target, nil
}

// runClustering loads the points at path, reduces them to target clusters and
// prints the result to w.
func runClustering(w io.Writer, path string, target int) error {
	points, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}

	registry := clustering.NewRegistry(points)
	defer registry.Clear()

	log.Printf("Loaded %d points from %s", registry.Len(), path)

	var bar *progressbar.ProgressBar
	if merges := registry.Len() - target; merges > 0 && stderrIsTerminal() {
		bar = progressbar.NewOptions(merges,
			progressbar.OptionSetDescription("Clustering"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	n, err := registry.Reduce(target, func(s clustering.Step) {
		if bar == nil {
			log.Printf("Merge %d - clusters %d and %d at distance %g", s.N, s.First, s.Second, s.Distance)

			return
		}

		if err := bar.Add(1); err != nil {
			log.Printf("Updating progress bar: %s", err)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("Clustering complete - %d merges, %d clusters", n, registry.Len())

	if err := dataset.Print(w, registry); err != nil {
		return fmt.Errorf("printing clusters: %w", err)
	}

	return nil
}
