// Package modules runs the long-lived parts of the application inside one
// errgroup. Every module stops when the group context is cancelled.
package modules

import "cancer_api/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
