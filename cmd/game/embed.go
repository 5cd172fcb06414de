package main

import "embed"

//go:embed configs
var configFS embed.FS

//go:embed assets
var assetFS embed.FS
