// Package repository implements data access for campers, activities, and
// signups on top of the database abstraction.
//
// Records use integer primary keys (camper:1, activity:2, ...) allocated from
// per-table counter records; the counter increment and the CREATE commit in
// one transaction. Relationships are stored as record links on the signup
// table and hydrated with FETCH only to the depth a caller requests, never by
// following live object references.
//
// Cascade deletes (camper or activity plus its dependent signups) execute as
// a single atomic batch.
package repository
