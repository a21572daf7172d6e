// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package validate checks and normalizes the raw arguments of each logical command.
//
// Validators are pure, with one exception: FileManage checks that the path exists,
// through an injected afero.Fs, before any file manager process is started.
package validate
