// Package ui contains the Bubble Tea program for the lyrics reader.
// Model.Update routes each message through a typed handler registry, so key
// presses, mouse events, lookup results and timers are each handled by a
// focused function.
//
// Reading flow:
//   - Lyrics are tokenized into segments and wrapped by internal/ui/state.Layout,
//     which maps screen cells back to lines, columns and words.
//   - A click on a word asks the panel.Router for a transition and runs the
//     resulting effects: the dictionary lookup is started on the backend.Runner
//     and its ticket recorded in the word store.
//   - A drag extends a selection.Range. Each extension re-arms a debounce
//     timer; when the timer fires after release the text is captured,
//     normalized and handed to the router, which opens the video panel.
//
// State ownership:
//   - Lookup results arrive as lookupResultMsg values and pass through the
//     dispatcher, which applies them to the word, video and song stores in
//     internal/state. A store only accepts the result for the ticket it is
//     waiting on, so superseded and cancelled lookups never reach the screen.
//   - Command execution goes through the internal/ui/command bus so every
//     asynchronous lookup is traced the same way.
//
// The song picker (search.go) and the playback bar (keys.go) sit alongside
// the reader and share the same stores.
package ui
