package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	CartMutations *prometheus.CounterVec
	OffersApplied *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
	}, []string{"method", "path", "status"})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_mutations_total",
	}, []string{"op"})
	offersApplied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_offers_applied_total",
	}, []string{"rule"})

	r.MustRegister(httpRequests, cartMutations, offersApplied)
	return &Registry{
		reg:           r,
		HTTPRequests:  httpRequests,
		CartMutations: cartMutations,
		OffersApplied: offersApplied,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// CartMutation and OfferApplied satisfy the stores' Recorder port.
func (r *Registry) CartMutation(op string) {
	r.CartMutations.WithLabelValues(op).Inc()
}

func (r *Registry) OfferApplied(rule string) {
	r.OffersApplied.WithLabelValues(rule).Inc()
}
