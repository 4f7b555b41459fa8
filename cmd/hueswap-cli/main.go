// hueswap.go - a web-based color-row puzzle game and solver.
// Copyright (C) 2016-2017 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

// Command-line client for hueswap puzzle utilities.
package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hueswap-cli",
	Short: "Play, solve, and generate hueswap puzzles",
	Long: `hueswap-cli works with hueswap color-row puzzles from the command
line: an interactive solving session against the same storage the
web server uses, a batch solver for puzzle files, and a generator
for new puzzles.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// the CLI shares the server's .env conventions, but its
		// output belongs to the user, not the log
		godotenv.Load()
		log.SetLevel(log.WarnLevel)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
