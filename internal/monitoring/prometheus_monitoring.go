package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// https://prometheus.io/docs/guides/go-application/

const namespace = "verduqr"

var (
	createdOrderMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_order",
		Help:      "The total number of times an amount was successfully loaded onto the fixed QR",
	})
	orderCreateFailedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_create_failed",
		Help:      "The total number of times loading an amount onto the fixed QR failed",
	})
	statusCheckedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_checked",
		Help:      "The total number of successful payment status lookups",
	})
	statusCheckFailedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_check_failed",
		Help:      "The total number of failed payment status lookups",
	})
	webhookReceivedMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_received",
		Help:      "The total number of provider webhook notifications received",
	})
)

func TickOrderCreated() {
	createdOrderMetric.Inc()
}

func TickOrderCreateFailed() {
	orderCreateFailedMetric.Inc()
}

func TickStatusChecked() {
	statusCheckedMetric.Inc()
}

func TickStatusCheckFailed() {
	statusCheckFailedMetric.Inc()
}

func TickWebhookReceived() {
	webhookReceivedMetric.Inc()
}
