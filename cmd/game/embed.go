package main

import "embed"

// configFS holds the shipped physics tuning and levels.
//
//go:embed configs
var configFS embed.FS
