package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the prefix of the versioned json api.
	APIPath = RootPath + "api/v1/"

	// ErrNilFatalLogMsg is used if app, cfg or generator pointer is nil.
	ErrNilFatalLogMsg = "app, cfg or generator is nil"
)
