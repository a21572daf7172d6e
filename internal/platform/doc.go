// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package platform names the operating systems and logical commands known to deskctl.
//
// The operating system identifier is detected once, by the entry point, and then
// passed explicitly to the registry. Nothing else in the module reads runtime.GOOS.
package platform
