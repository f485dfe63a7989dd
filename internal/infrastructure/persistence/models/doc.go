// Package models contains the GORM row types of the logistics schema.
//
// Domain types carry no GORM tags; each model here has ToDomain and a
// ...FromDomain constructor, and repositories only hand domain types to
// callers. Read models over views are scanned straight into domain rows.
package models
