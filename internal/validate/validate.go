// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package validate

import (
	"net/url"
	"strings"

	"github.com/spf13/afero"
)

// IsURL reports whether v is an http or https URL with a host.
func IsURL(v string) bool {
	lower := strings.ToLower(v)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}

	u, err := url.Parse(v)
	if err != nil {
		return false
	}

	return u.Host != ""
}

// IsFilePath reports whether a filesystem entry exists at path.
func IsFilePath(fs afero.Fs, path string) bool {
	if path == "" {
		return false
	}

	_, err := fs.Stat(path)

	return err == nil
}

// IsString reports whether v is a non-empty string.
func IsString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}
