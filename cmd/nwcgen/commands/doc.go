// Package commands wires the nwcgen CLI: key generation, connection URI building,
// NIP-19 decoding, URI inspection, vanity search and the interactive console.
package commands
