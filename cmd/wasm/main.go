//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/kittclouds/jotkit/internal/store"
	"github.com/kittclouds/jotkit/pkg/engine"
)

// Version info
const Version = "0.3.0" // Candidate-tag discovery + blob sync

// Global state
var blobs *store.MemoryBlobStore // Blob store; the JS shell owns durability
var core *engine.Engine

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	blobs = store.NewMemoryBlobStore()
	notes := store.NewNoteStore(blobs, store.DefaultBlobKey, log)

	var err error
	core, err = engine.New(notes, engine.WithLogger(log))
	if err != nil {
		fmt.Println("[Jotkit] FATAL: Failed to initialize engine:", err.Error())
		return
	}

	fmt.Println("[Jotkit] WASM Ready v" + Version)

	// Register exports
	js.Global().Set("Jotkit", js.ValueOf(map[string]interface{}{
		"version": js.FuncOf(getVersion),
		// Lifecycle: importBlob (replay persisted state), then hydrate
		"hydrate":    js.FuncOf(hydrate),
		"importBlob": js.FuncOf(importBlob),
		"exportBlob": js.FuncOf(exportBlob),
		"clear":      js.FuncOf(clear),
		// Capture
		"saveNote": js.FuncOf(saveNote),
		// Query
		"search":        js.FuncOf(search),
		"toggleTag":     js.FuncOf(toggleTag),
		"visibleNotes":  js.FuncOf(visibleNotes),
		"allTags":       js.FuncOf(allTags),
		"selectedTags":  js.FuncOf(selectedTags),
		"candidateTags": js.FuncOf(candidateTags),
	}))

	// Keep the Go runtime alive for callbacks
	select {}
}

func errorResult(msg string) interface{} {
	return map[string]interface{}{"ok": false, "error": msg}
}

func successResult(msg string) interface{} {
	return map[string]interface{}{"ok": true, "message": msg}
}

// getVersion returns the module version
func getVersion(this js.Value, args []js.Value) interface{} {
	return Version
}

// hydrate loads the note collection from the blob store.
// Call after importBlob on startup. Returns the note count.
func hydrate(this js.Value, args []js.Value) interface{} {
	return core.Hydrate()
}

// importBlob replays a previously exported blob into the store.
// Args: [data string]
func importBlob(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("importBlob requires 1 argument: data")
	}
	if err := blobs.Put(store.DefaultBlobKey, []byte(args[0].String())); err != nil {
		return errorResult(err.Error())
	}
	return successResult("imported")
}

// exportBlob returns the raw persisted blob for the shell to store
// (localStorage, OPFS). Empty string when nothing is persisted yet.
func exportBlob(this js.Value, args []js.Value) interface{} {
	data, ok, err := blobs.Get(store.DefaultBlobKey)
	if err != nil {
		return errorResult(err.Error())
	}
	if !ok {
		return ""
	}
	return string(data)
}

// clear destroys the store.
func clear(this js.Value, args []js.Value) interface{} {
	if err := core.Clear(); err != nil {
		return errorResult(err.Error())
	}
	return successResult("cleared")
}

// saveNote captures a new note and returns it as JSON.
// Args: [content string]
func saveNote(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("saveNote requires 1 argument: content")
	}

	note, err := core.SaveNote(args[0].String())
	if err != nil {
		return errorResult(err.Error())
	}

	bytes, err := json.Marshal(note)
	if err != nil {
		return errorResult(err.Error())
	}
	return string(bytes)
}

// search sets the current search phrase.
// Args: [phrase string]
func search(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("search requires 1 argument: phrase")
	}
	core.Search(args[0].String())
	return successResult("ok")
}

// toggleTag flips a tag in the current selection.
// Args: [tag string]
func toggleTag(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("toggleTag requires 1 argument: tag")
	}
	core.ToggleTag(args[0].String())
	return successResult("ok")
}

// visibleNotes returns the filtered note list as JSON.
func visibleNotes(this js.Value, args []js.Value) interface{} {
	bytes, err := json.Marshal(core.Visible())
	if err != nil {
		return errorResult(err.Error())
	}
	return string(bytes)
}

// allTags returns the sorted tag union as JSON.
func allTags(this js.Value, args []js.Value) interface{} {
	bytes, err := json.Marshal(core.AllTags())
	if err != nil {
		return errorResult(err.Error())
	}
	return string(bytes)
}

// selectedTags returns the current selection as JSON.
func selectedTags(this js.Value, args []js.Value) interface{} {
	bytes, err := json.Marshal(core.SelectedTags())
	if err != nil {
		return errorResult(err.Error())
	}
	return string(bytes)
}

// candidateTags returns discovery's promoted vocabulary as JSON.
func candidateTags(this js.Value, args []js.Value) interface{} {
	bytes, err := json.Marshal(core.CandidateTags())
	if err != nil {
		return errorResult(err.Error())
	}
	return string(bytes)
}
