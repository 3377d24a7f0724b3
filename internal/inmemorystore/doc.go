// Package inmemorystore provides the map-backed implementation of the
// nodestore.Store interface. Values live only as long as the process; it is
// the only store the engine ships.
package inmemorystore
