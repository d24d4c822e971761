// Package cli provides the interactive tribunal command-line client.
//
// It drives the same page controllers as the web portal from a REPL: sign
// in with a demo or real account, search cases page by page, browse and
// download forms, and list hearings. A background watcher pings the API and
// shows online/offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
