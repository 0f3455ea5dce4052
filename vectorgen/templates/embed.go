package templates

import "embed"

// FS exposes the table template vectorgen renders the checked-in
// interop vector file from.
//
//go:embed *.go.tpl
var FS embed.FS
