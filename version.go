package trajfilter

// Version is the library and CLI version.
var Version = "0.1.0"
