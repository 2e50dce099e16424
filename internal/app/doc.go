// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the offsync process runtime.
//
// It opens the local storages, unlocks the vault with the configured user
// key, wires the resolution services and the periodic sync job, and exposes
// the operations the command line drives.
package app
