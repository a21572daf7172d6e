// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes to stderr through PrettyHandler. Its level is read from
// the environment variable derived from the executable name, e.g. DESKCTL_LOG_LEVEL
// for deskctl, and defaults to WARN.
package ctxlog
