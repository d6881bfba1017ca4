// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device-side command line application.
//
// It wires the terminal UI, the client services and the periodic sync job
// into the sync, import, add-reading, edit-patient, status and version
// commands.
package client
