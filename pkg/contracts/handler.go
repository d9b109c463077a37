package contracts

import "github.com/julienschmidt/httprouter"

type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// Worker is a background loop owned by the application: started before the
// server listens and stopped during graceful shutdown.
type Worker interface {
	Start()
	Stop()
}

// Guard wraps admin-only routes.
type Guard func(httprouter.Handle) httprouter.Handle

// Open is a Guard that lets every request through.
func Open(h httprouter.Handle) httprouter.Handle { return h }
