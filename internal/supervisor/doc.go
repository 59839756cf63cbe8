// Sessionmap - Player Session Analytics and Geographic Distribution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sessionmap

/*
Package supervisor runs the long-lived services of sessionmap under suture v4.

	RootSupervisor ("sessionmap")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff; supervisor events are
logged through sutureslog, which main wires to zerolog via
logging.NewSlogLogger. Canceling the context passed to Serve stops the tree
and gives every service ShutdownTimeout to finish.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService("http-server", server, timeout))
	err = tree.Serve(ctx)
*/
package supervisor
