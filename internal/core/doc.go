// Package core provides the business logic layer for showcase.
//
// This package contains all core functionality separated from CLI concerns.
// Functions in this package return errors instead of printing; the cmd
// package owns output.
//
// # Pipeline
//
// [Generate] runs one site build:
//
//  1. Fetch the profile and public repositories through a [RepositorySource]
//  2. Load the persisted projects document (never fails)
//  3. [Merge] fetched and persisted records
//  4. [WriteLogos] derives and writes one SVG per project
//  5. Save the projects document
//  6. Render index.html
//
// Only fetching and saving are fatal. Everything else degrades to a default
// and is reported as a [Warning].
//
// # Deterministic Derivations
//
// [Classify], [AnimalFor] and [DeriveAsset] are pure functions of the
// repository or its name, so reruns on unchanged input produce identical
// output.
package core
