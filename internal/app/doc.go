// Package app contains the application logic behind the command line. It
// owns the logger, the configuration facade, the manifest loaders and the
// metrics registry, and exposes the build, validate and graph operations
// without depending on any particular entrypoint.
package app
