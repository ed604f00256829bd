// Package cli provides the interactive scanbatch operator console.
//
// It wires configuration, the collection store, the repositories, the
// session, the scan engine and the exporter, then runs a REPL. Typical flow:
// pick or add a user, open or add a batch, scan codes (one per line, empty
// line to stop) and export the batch as CSV.
//
// Commands that need a user or a batch check the session and send the
// operator back to the selection step with a message. Storage and sharing
// failures are printed and the session keeps going.
package cli
