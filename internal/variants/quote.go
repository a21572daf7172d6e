// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package variants

import "strings"

// posixQuote single quotes s for sh.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// cmdQuote double quotes s for cmd.exe. Windows paths cannot contain '"'.
func cmdQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, "") + `"`
}

// appleScriptString returns s as an AppleScript string literal.
func appleScriptString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// vbScriptString returns s as a single line VBScript string literal.
// Line breaks become spaces, the concatenation needed to keep them would put
// '&' outside quotes, which cmd.exe treats as a command separator.
func vbScriptString(s string) string {
	r := strings.NewReplacer(`"`, `""`, "\r\n", " ", "\n", " ", "\r", " ")
	return `"` + r.Replace(s) + `"`
}
