// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package variants

import (
	"bytes"
	"regexp"
	"slices"
	"strings"
)

var dottedQuad = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)

// ParseDefaultGateway scans a routing table for the default route of iface
// and returns the first dotted-quad address on that line.
func ParseDefaultGateway(table []byte, iface string) (string, bool) {
	// Lines have no length limit.
	for line := range bytes.Lines(table) {
		fields := strings.Fields(string(line))
		if len(fields) < 2 || fields[0] != "default" {
			continue
		}

		if !slices.Contains(fields[1:], iface) {
			continue
		}

		if gw := dottedQuad.FindString(strings.Join(fields[1:], " ")); gw != "" {
			return gw, true
		}
	}

	return "", false
}
