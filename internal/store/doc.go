// Package store persists the projects document.
//
// The document is a single YAML file (projects-config.yaml by default) with
// a top-level "projects" list. It is read once at the start of a run and
// replaced wholesale at the end:
//
//	s := store.NewFileStore("projects-config.yaml")
//	prior := s.Load()            // never fails
//	err := s.Save(projects, now) // overwrites in place
//
// # Tolerant Loading
//
// Users edit the file by hand, so [Normalize] accepts anything: a missing,
// empty or unparsable file, a document without "projects", or a "projects"
// value that is not a list all yield an empty slice. Each entry is read
// field by field and a missing or wrong-typed field falls back to its
// default. Keys the tool does not know are kept in [model.Project.Extra].
//
// # Header
//
// [Save] prepends a comment header with the update time and editing
// instructions. The header is not parsed back.
package store
