//go:build windows

package main

import "os"

// shutdownSignals stop a running batch. On Windows, only os.Interrupt
// (Ctrl+C) is supported; SIGTERM does not exist.
var shutdownSignals = []os.Signal{os.Interrupt}
