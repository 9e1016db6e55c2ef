package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/smazurov/halshim/internal/api/models"
	"github.com/smazurov/halshim/internal/events"
	"github.com/smazurov/halshim/internal/wlanmac"
)

func (s *Server) registerWLANRoutes() {
	if s.resolver == nil {
		s.logger.Debug("WLAN resolver not available, skipping WLAN routes")
		return
	}

	huma.Register(s.api, huma.Operation{
		OperationID: "get-wlan-mac",
		Method:      http.MethodGet,
		Path:        "/api/wlan/mac",
		Summary:     "WLAN MAC Address",
		Description: "Read the factory WLAN address; only vendor OUIs are accepted",
		Tags:        []string{"wlan"},
		Errors:      []int{401, 404, 500},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*models.WLANAddressResponse, error) {
		addr, err := s.resolver.Resolve()
		if s.eventBus != nil {
			s.eventBus.Publish(events.NewMACResolvedEvent(addr, err))
		}

		switch {
		case errors.Is(err, wlanmac.ErrNotFound):
			return nil, huma.Error404NotFound("WLAN address not found")
		case err != nil:
			return nil, huma.Error500InternalServerError("Failed to resolve WLAN address", err)
		}

		return &models.WLANAddressResponse{
			Body: models.WLANAddressData{Address: addr.String()},
		}, nil
	})
}
