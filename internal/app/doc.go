// Package app contains the core application logic. It defines the App
// struct, its configuration, the linear blend pipeline (validate ratio,
// parse both colors, mix) and the report printer, decoupled from the CLI
// entrypoint.
package app
