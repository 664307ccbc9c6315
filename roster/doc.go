// Package roster is the typed ingestion boundary of the pairing engine.
//
// Upstream storage collaborators (spreadsheets, databases, files) deliver
// heterogeneously encoded rows: booleans as bool, string or number, flags in
// varying case, blank or header rows mixed in. This package normalizes all
// of that into strict typed values — Entry and Meeting — so that no package
// past this boundary ever performs truthy coercion again.
//
// Malformed rows are not errors here: NormalizeEntry reports ok=false and
// the caller skips the row. Partial data is the expected steady state.
package roster
