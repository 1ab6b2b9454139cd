// Package serpscore scores the textual content behind search-engine results.
// Given a query it retrieves the SERP entries, fetches each linked page,
// extracts the main body text, and produces a composite sentiment/quality
// score and a short summary per page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, lexicon/).
package serpscore
