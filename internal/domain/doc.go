// Package domain defines the core business types for the IGNITE ad delivery
// platform.
//
// Types in this package are pure value objects with no database dependencies
// and no HTTP concerns. They are the shared language between handlers, the
// resolver, and the stores.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - JSON/DB tags are allowed (they're metadata, not behavior)
//   - Classification methods are allowed (they're pure functions on the type)
//   - Constants and enums belong here
package domain
