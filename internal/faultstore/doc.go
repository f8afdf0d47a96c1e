// Package faultstore is the out-of-scope fault-CRUD collaborator (spec
// §6 "the fault-CRUD collaborator", §5 "kept keyed by connection name,
// lazily opened, and reused; all access is via parameterized statements").
// It stores free-text operator annotations against decoded fault items; it
// never participates in frame decoding itself.
package faultstore
