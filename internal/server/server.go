package server

// Server groups the HTTP handlers of every resource.
type Server struct {
	CancerServer
}

func NewServer(
	cancerServer CancerServer,
) Server {
	return Server{
		CancerServer: cancerServer,
	}
}
