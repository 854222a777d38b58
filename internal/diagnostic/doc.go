// Package diagnostic collects the findings of the static accessor checker.
//
// Key capabilities:
//   - Ambiguous getter and setter reports, the build-time twin of ErrAmbiguousAccessor
//   - Warnings for methods named like accessors whose signature cannot bind
//   - Infos for write-only properties
//   - Suggestions carried along from error hints
package diagnostic
