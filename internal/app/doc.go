// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the write sequence that turns a generator's
// values into files, decoupled from any specific entrypoint like a CLI.
package app
