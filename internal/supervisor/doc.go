// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

/*
Package supervisor provides process supervision using suture v4.

The tree separates the data layer from the API layer so each restarts
independently:

	RootSupervisor ("radreports")
	├── DataSupervisor ("data-layer")
	│   └── DBHealthService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog into the zerolog-backed slog handler from the logging package.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddDataService(services.NewDBHealthService(db, 30*time.Second, 3))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

# Failure Handling

suture keeps a failure counter per supervisor that decays over FailureDecay
seconds. Once it passes FailureThreshold the supervisor waits FailureBackoff
before the next restart.

	Service crashes once        -> restart immediately
	Service crashes 5x in 10s   -> wait 15s before restart
*/
package supervisor
