// Package cli is the interactive shell of the userdir client. It is a thin
// presentation layer: commands read the synchronized state owned by the
// state managers and dispatch intents into them; no business decisions are
// made here beyond requiring a login before collection commands.
package cli
