// Package config defines the format-agnostic manifest model, the Loader
// interface implemented by format adapters, and the param validation shared
// by all of them.
//
// A manifest only describes declarations: which components exist, their
// params, their dependencies and the strategy each one is linked to.
// Strategy bodies always come from Go modules.
package config
