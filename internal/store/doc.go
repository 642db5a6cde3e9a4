// Package store provides file-based persistence for nucore's documents.
//
// Objects are written whole, one per file, as YAML (".yaml") or JSON
// (".json"); the extension selects the codec and any other extension is
// rejected. Writes go through a temp file and a rename so a reader never sees
// a partial document. Parent directories are created on save.
//
// The package includes:
//   - FileStore, a domain.DocumentStore rooted at a directory
//   - RunFileStore, which files depletion results under content fingerprints
//   - Fingerprint, a short BLAKE2b digest of an object's YAML form
package store
