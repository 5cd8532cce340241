package web

import "embed"

// FS contains the embedded static assets served under /static and copied by
// the static export.
//
//go:embed static/*
var FS embed.FS

// StaticPrefix is the URL prefix the static assets are served under.
const StaticPrefix = "/static"
