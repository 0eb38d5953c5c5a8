package usecase

import (
	"time"

	"immo-media/pkg/logger"
	"immo-media/pkg/queue"
)

// routing keys are owned by the queue package, which binds them at startup
const (
	eventMediaUploaded        = queue.RoutingMediaUploaded
	eventPaymentStatusChanged = queue.RoutingPaymentStatusChanged
)

// publishEvent is fire and forget: a broker outage never fails the request.
func publishEvent(events EventPublisher, log *logger.Logger, routingKey string, payload map[string]interface{}) {
	if events == nil {
		return
	}
	payload["event"] = routingKey
	payload["occurred_at"] = time.Now().UTC().Format(time.RFC3339)
	if err := events.Publish(routingKey, payload); err != nil {
		log.Warn("Failed to publish %s event: %v", routingKey, err)
	}
}
