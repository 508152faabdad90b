// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It owns the listener lifecycle: startup, serving until the parent context
// is cancelled, and graceful shutdown with a bounded drain period.
package server
