// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package variants holds the per operating system implementations of the logical commands.
//
// A Platform is selected once, by New, from an operating system identifier. Windows and
// darwin have implementations; every other identifier gets a Platform that supports
// nothing. Commands a Platform does not support fail with *UnsupportedPlatformError.
//
// fileManage and openBrowser start their process and return. msgBox and getGateway
// return a pending.Result that settles when the process exits.
package variants
