// Package cli provides the interactive CEBIP command-line client.
//
// It wires the repository, the session manager and the backup sinks into a
// read-eval-print loop. Administrators manage members, browse the catalog
// and handle backups; members see the benefits and promotions currently
// available to them.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See runREPL for the command table.
package cli
