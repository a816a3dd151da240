// Package commands provides structured sub-command routing for embedders such
// as game servers, REPLs, and bots. A Manager owns a tree of named commands,
// each with a typed positional argument schema, and dispatches a raw
// whitespace-delimited input line to the correct handler with validated,
// type-coerced argument values.
//
// The package deliberately stays out of the I/O business: all user-visible
// output flows through the Sender collaborator, so the same command tree can
// serve a terminal, a chat connection, or a test buffer.
package commands
