// Package diagnostic collects the notices produced while analyzing a batch
// of root types.
//
// Key capabilities:
//   - Unresolved root warnings (the root is skipped, the batch continues)
//   - Introspector defect errors (the batch is aborted)
//   - Informational notes such as an empty names file
package diagnostic
