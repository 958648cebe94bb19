// Package unix implements a Unix domain socket transport for the RPC
// client engine. It is the typical way to reach an editor-automation host
// on the same machine, e.g. the socket advertised in $NVIM.
package unix
