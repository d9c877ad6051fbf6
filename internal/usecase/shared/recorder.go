package shared

// Recorder receives domain-level counters from the stores. The metrics
// registry implements it; tests use NopRecorder.
type Recorder interface {
	CartMutation(op string)
	OfferApplied(rule string)
}

type NopRecorder struct{}

func (NopRecorder) CartMutation(string) {}
func (NopRecorder) OfferApplied(string) {}
