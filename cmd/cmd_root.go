// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jcodagnone/hclust/clustering"
	"github.com/jcodagnone/hclust/dataset"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	exitOK = iota
	exitFailure
	exitOpen
	exitParse
	exitTarget
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hclust <file> <target>",
		Short: "agrupamiento jerárquico de puntos en el plano",
		Long: `
hclust lee puntos etiquetados desde un archivo y los agrupa uniendo, en cada
paso, los dos clusters más cercanos (distancia máxima entre sus miembros) hasta
que quedan <target> clusters.

El archivo comienza con count=N seguido de N líneas "id x y":

  count=4
  1 0 0
  2 1 0
  3 0 1
  4 5 5
`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseTarget(args[1])
			if err != nil {
				return err
			}

			// arguments are fine from here on, failures are not usage errors
			cmd.SilenceUsage = true

			return runClustering(cmd.OutOrStdout(), args[0], target)
		},
	}

	// a negative target such as -2 must reach parseTarget instead of being
	// taken for a shorthand flag
	root.Flags().SetInterspersed(false)

	root.AddCommand(newDebugCmd())
	root.AddCommand(newVersionCmd())

	return root
}

var Version = "dev"

func Execute(version string) {
	Version = version

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "hclust: %v\n", err)
	}

	return exitCode(err)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case dataset.IsOpenError(err):
		return exitOpen
	case dataset.IsParseError(err):
		return exitParse
	case errors.Is(err, clustering.ErrInvalidTarget):
		return exitTarget
	default:
		return exitFailure
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Imprime la versión",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hclust %s\n", Version)
		},
	}
}
