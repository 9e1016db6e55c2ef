package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"
	"github.com/smazurov/halshim/internal/api/models"
	"github.com/smazurov/halshim/internal/events"
)

// registerSSERoutes registers the native Huma SSE endpoint.
func (s *Server) registerSSERoutes() {
	if s.eventBus == nil {
		s.logger.Debug("Event bus not available, skipping SSE routes")
		return
	}

	sse.Register(s.api, huma.Operation{
		OperationID: "events-stream",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Server-Sent Events Stream",
		Description: "Real-time stream of indicator changes, brightness writes and write failures",
		Tags:        []string{"events"},
		Security:    withAuth(),
		Errors:      []int{401},
	}, map[string]any{
		"lights-state":       models.LightsState{},
		"light-applied":      events.LightAppliedEvent{},
		"brightness-changed": events.BrightnessChangedEvent{},
		"write-failed":       events.WriteFailedEvent{},
		"mac-resolved":       events.MACResolvedEvent{},
	}, func(ctx context.Context, _ *struct{}, send sse.Sender) {
		eventCh := make(chan any, 10)

		unsubscribers := []func(){
			events.SubscribeToChannel[events.LightAppliedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.BrightnessChangedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.WriteFailedEvent](s.eventBus, eventCh),
			events.SubscribeToChannel[events.MACResolvedEvent](s.eventBus, eventCh),
		}
		defer func() {
			for _, unsub := range unsubscribers {
				unsub()
			}
		}()

		// Current state first so clients need no separate GET
		if err := send.Data(toLightsState(s.module.Context().Snapshot())); err != nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case event := <-eventCh:
				if err := send.Data(event); err != nil {
					return
				}
			}
		}
	})
}
