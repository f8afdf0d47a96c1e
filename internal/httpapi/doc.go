// Package httpapi implements the KAVACH decode/query HTTP surface (spec
// §6): thin chi handlers that parse query parameters or an uploaded file,
// call the decodecore/scan/graph/trackprofile packages, and serialize
// {success, data} JSON envelopes. The surface is unauthenticated except
// for a hard-coded /api/auth/login check. Server holds an optional
// internal/faultstore collaborator through the narrow FaultLabelStore
// interface; the router registers no fault-CRUD route.
package httpapi
