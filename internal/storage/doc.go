// Package storage provides the in-memory collections backing the demo
// API. Each collection owns its records exclusively: reads hand out
// copies, writes happen under the collection lock as a single atomic
// step.
//
// Identifier assignment is max(existing ids)+1, or 1 for an empty
// collection. After deleting the highest-numbered record the next
// insert reuses that id. This mirrors the reference behavior and is a
// documented, tested property rather than a bug.
package storage
