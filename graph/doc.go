// Package graph implements Graph Meta/Data (spec §4.9): it derives the
// distinct loco ids, file-dates, and directions observed in a date range of
// 0x12-Regular packets, and projects (x,y) series for the four
// {Location, Time} × {Speed, Mode} graph types.
package graph
