// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the classifieds backend.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, CORS, compression, request timeouts and token verification
// are handled in this package before requests are delegated to the service
// layer. Every error response is a JSON {"message": ...} body.
package http
