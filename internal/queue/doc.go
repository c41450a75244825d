// Package queue provides the bounded top-K heap used by the scan workers.
//
// Candidates are totally ordered by (score desc, traversal index asc), so
// the kept set never depends on the order in which candidates were offered
// as long as every candidate is offered once.
package queue
