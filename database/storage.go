package database

// Storage is the process-wide store handle handed to routers and middleware.
// It hides the concrete GORM connection so handlers can be tested with doubles.
type Storage interface {
	Init() error
	Close() error
	GetDB() interface{}
	HealthCheck() error
}
