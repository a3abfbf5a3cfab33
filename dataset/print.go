// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jcodagnone/hclust/clustering"
)

// Print writes the clusters of r in index order, one per line, after a
// "Clusters:" header.
func Print(w io.Writer, r *clustering.Registry) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "Clusters:"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	err := r.Each(func(idx int, c *clustering.Cluster) error {
		if _, err := fmt.Fprintf(bw, "cluster %d: %s\n", idx, c); err != nil {
			return fmt.Errorf("writing cluster %d: %w", idx, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return bw.Flush()
}
