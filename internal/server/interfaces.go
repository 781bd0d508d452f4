package server

// Server defines the lifecycle contract of the development backend.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until a termination
	// signal arrives.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
