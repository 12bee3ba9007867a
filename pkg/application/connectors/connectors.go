// Package connectors lazily opens the external clients shared by the
// application modules. Each connector connects once and panics on failure.
package connectors

import "cancer_api/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
