package main

import "embed"

// configFS holds the default tuning, campaign and level files.
//
//go:embed configs
var configFS embed.FS
