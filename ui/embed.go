package ui

import "embed"

//go:embed templates/* static/*
var embeddedFiles embed.FS
