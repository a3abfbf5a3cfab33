// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/hclust/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
