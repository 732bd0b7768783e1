// Package app contains the core application logic. It owns the logger, the
// resolved configuration and the commands a user can run against a flow
// program, decoupled from any specific entrypoint like a CLI.
//
// App never decides exit codes. It prints results to its output writer,
// diagnostics and logs to its error writer, and returns errors that wrap
// ErrInvalidProgram when the program itself was rejected.
package app
