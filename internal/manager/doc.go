// Package manager coordinates wizard sessions and recommendation requests.
// It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults.
//   - types.go: Session and Snapshot.
//   - errors.go: error types and helpers (IsSubmitInFlight, IsInvalidOption, ...).
//   - session.go: session lookup, creation, reset and idle eviction.
//   - wizard.go: step edits (Advance, Back) on a session.
//   - submit.go: the submission flow and the stateless Recommend call.
//   - status_report.go: Status reporting.
//   - events.go, eventpub_memory.go: lifecycle events.
//   - metrics.go: Prometheus collectors.
//
// A session owns one wizard.State. All state is guarded by Manager.mu; the
// model call itself runs without the lock held so readers observe IsLoading.
// Submission failures are logged and swallowed: the session simply stops
// loading and keeps the form visible.
package manager
