// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI SGR codes for console output.
// Colour is disabled when NO_COLOR is set or stdout is not a terminal, and
// forced on by FORCE_COLOR.
package color
