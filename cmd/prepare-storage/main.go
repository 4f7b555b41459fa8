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

// Clear and re-initialize the hueswap storage system
package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ancientHacker/hueswap.go/dbprep"
)

func main() {
	godotenv.Load()

	// plain "prepare-storage" rebuilds everything; "prepare-storage
	// ensure" only brings an out-of-date deployment up to current
	ensure := len(os.Args) > 1 && os.Args[1] == "ensure"
	if ensure {
		log.Info("Ensuring data storage is current...")
		if err := dbprep.EnsureData(); err != nil {
			log.WithError(err).Fatal("Couldn't ensure storage")
		}
		log.Info("Database is current.")
		return
	}

	log.Info("Removing existing data storage and cache...")
	if err := dbprep.ReinitializeAll(); err != nil {
		log.WithError(err).Fatal("Couldn't reinitialize storage")
	}
	log.Info("Database re-initialized.")
}
