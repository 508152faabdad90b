// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background loops of the server, such as the
// domain event dispatcher.
package workers

import "context"

// Worker is a background loop. Run must not block: implementations spawn
// their own goroutines and stop them in their own shutdown method.
type Worker interface {
	Run(ctx context.Context)
}
