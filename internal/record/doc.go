// Package record defines the loosely-typed record bag that flows through the
// view engine, plus the field accessor registry that maps logical column keys
// onto raw record fields.
//
// The upstream API never settled on one spelling for a field: the same value
// appears as "first_name" on one endpoint and "First_Name" on another, and
// some numeric fields arrive pre-formatted as strings. The registry absorbs
// all of that in one place so the rest of the engine only ever deals in
// logical column keys.
//
// Resolution is pure and side-effect free: the same registry is used both to
// render a cell and to extract the sort key for that cell, and the two are
// guaranteed to agree.
package record
