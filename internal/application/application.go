package application

const (
	// AppName is the application name used for messages and identification
	AppName = "showcase"

	// AppExeName is the executable name (without extension)
	AppExeName = "showcase"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"
