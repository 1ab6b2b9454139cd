package serpscore

// RecordCache memoizes analysis records by URL within a session, so the
// same URL showing up across phrases or engines is fetched once.
// Semantics are last-writer-wins with no ordering guarantees; records are
// idempotent, so write races are harmless. The pipeline itself is stateless
// and never requires a cache to be present.
type RecordCache interface {
	Get(url string) (*AnalysisRecord, bool)
	Set(url string, record *AnalysisRecord)
}
