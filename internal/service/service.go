// Package service implements the account and catalog operations on top of
// the store, the token service and the access guard.
package service

import (
	"context"
	"time"

	"github.com/marqspnosa/shopwise/internal/events"
	"github.com/marqspnosa/shopwise/internal/logging"
)

const publishTimeout = 5 * time.Second

// publish is best effort: a broker failure is logged and never fails the caller.
func publish(ctx context.Context, p events.Publisher, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("publish_failed", "topic", topic, "type", event["type"], "error", err)
	}
}
