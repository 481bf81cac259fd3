// Package model defines the data structures used throughout showcase.
//
// # Repository
//
// The [Repository] struct is a repository as fetched from GitHub. Optional
// fields are defaulted once with [Repository.WithDefaults] so business logic
// never checks for their presence:
//
//	type Repository struct {
//	    Name        string   // Unique key within one fetch
//	    Description string   // Possibly empty
//	    URL         string   // Browsable URL
//	    Language    string   // "Unknown" when not detected
//	    Stars       int      // Stargazer count
//	    Forks       int      // Fork count
//	    Topics      []string // Topics in service order
//	    Fork        bool     // Whether the repository is a fork
//	    Private     bool     // Whether the repository is private
//	    UpdatedAt   string   // RFC 3339 or empty
//	}
//
// # Project
//
// The [Project] struct is one entry of projects-config.yaml. It merges the
// fetched metadata with fields a user may edit by hand. Classification and
// Image survive across runs; unknown keys are kept in Extra.
package model
