// Package integrity provides preflight checks for catalog reconciliation.
//
// # Checks Provided
//
//   - Sources: every configured source is readable, has rows and carries the columns the
//     reconciliation reads.
//   - Bucket: the storage bucket used by s3:// locations exists (supports ?fix=true).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/sources : Runs the source check.
//   - GET /integrity/bucket : Runs the bucket check (supports ?fix=true).
package integrity
