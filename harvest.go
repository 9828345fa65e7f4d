// Package harvest provides a site harvester that turns the pages of one
// website into clean plain-text documents for a retrieval index.
// It crawls a site within a path prefix, extracts body text while dropping
// navigation chrome, detects boilerplate repeated across pages, and writes
// one document per page plus a ledger of every visited URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package harvest
