// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/jcodagnone/hclust/clustering"
	"github.com/jcodagnone/hclust/dataset"
	"github.com/spf13/cobra"
)

func newDebugCmd() *cobra.Command {
	debugCmd := &cobra.Command{
		Use:   "debug",
		Short: "Dev tools",
	}

	debugCmd.AddCommand(&cobra.Command{
		Use:   "nearest <file>",
		Short: "Imprime el par de clusters más cercano",
		Long: `Carga los puntos del archivo, uno por cluster, e imprime los índices del par
más cercano junto con su distancia.

$ hclust debug nearest testdata/square.txt
0 1 1	1[0,0] | 2[1,0]
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			points, err := dataset.LoadFile(args[0])
			if err != nil {
				return err
			}

			registry := clustering.NewRegistry(points)
			defer registry.Clear()

			if registry.Len() < 2 {
				return fmt.Errorf("%s: need at least 2 points, got %d", args[0], registry.Len())
			}

			first, second, dist := registry.FindNearest()
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %g\t%s | %s\n",
				first, second, dist, registry.At(first), registry.At(second))

			return nil
		},
	})

	return debugCmd
}
