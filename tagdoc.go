// Package tagdoc resolves expressions typed into an interactive C++ session
// to documentation pages. It extracts the expression from the query text,
// asks the interpreter for the expression's runtime type, and searches an
// ordered list of Doxygen tag files for the matching class, struct, function
// or member entry.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, sqlite/, cling/).
package tagdoc
