// Package geozone models the airspace-restriction-zone JSON fixtures
// consumed by the automated-testing harness.
//
// A fixture file is a Set of zones. Each zone carries an identifier, the
// issuing country, a restriction kind, time-based applicability windows,
// authority contact records, and one or more volumes (altitude band plus a
// polygon or circle footprint).
//
// The package loads and validates fixtures but never rewrites existing
// files: the harness matches on fixture bytes, so files on disk are treated
// as read-only once created. Only newly scaffolded fixtures are serialized.
package geozone
