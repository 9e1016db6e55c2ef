package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/smazurov/halshim/internal/api/models"
	"github.com/smazurov/halshim/internal/lights"
	"github.com/smazurov/halshim/internal/version"
)

func (s *Server) registerModuleRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-module",
		Method:      http.MethodGet,
		Path:        "/api/module",
		Summary:     "Module",
		Description: "Get the lights module descriptor and build information",
		Tags:        []string{"system"},
		Security:    []map[string][]string{},
	}, func(ctx context.Context, input *struct{}) (*models.ModuleResponse, error) {
		info := s.module.Info()
		v := version.Get()

		names := make([]string, 0, len(lights.IDs()))
		for _, id := range lights.IDs() {
			names = append(names, id.String())
		}

		return &models.ModuleResponse{
			Body: models.ModuleData{
				Tag:          info.Tag,
				VersionMajor: info.VersionMajor,
				VersionMinor: info.VersionMinor,
				ID:           info.ID,
				Name:         info.Name,
				Author:       info.Author,
				Lights:       names,
				Version:      v.Version,
				GitCommit:    v.GitCommit,
				BuildDate:    v.BuildDate,
				GoVersion:    v.GoVersion,
				Platform:     v.Platform,
			},
		}, nil
	})
}

func (s *Server) registerLightRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "set-light",
		Method:      http.MethodPost,
		Path:        "/api/lights/{id}",
		Summary:     "Set Light",
		Description: "Open the named light and apply one request to it",
		Tags:        []string{"lights"},
		Errors:      []int{400, 401, 500},
		Security:    withAuth(),
	}, func(ctx context.Context, input *models.SetLightRequest) (*models.SetLightResponse, error) {
		req, err := toRequest(input)
		if err != nil {
			return nil, lightError(err)
		}

		dev, err := s.module.Open(input.ID)
		if err != nil {
			return nil, lightError(err)
		}
		defer dev.Close()

		if err := dev.SetLight(req); err != nil {
			s.logger.Warn("Failed to set light", "light", input.ID, "error", err)
			return nil, lightError(err)
		}

		return &models.SetLightResponse{
			Body: models.SetLightData{Light: dev.ID().String()},
		}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "get-lights",
		Method:      http.MethodGet,
		Path:        "/api/lights",
		Summary:     "Lights State",
		Description: "Get the attention, notification and battery requests and which one owns the indicator",
		Tags:        []string{"lights"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*models.LightsResponse, error) {
		return &models.LightsResponse{Body: toLightsState(s.module.Context().Snapshot())}, nil
	})
}

// toRequest converts the HTTP body into a module request.
func toRequest(input *models.SetLightRequest) (*lights.Request, error) {
	color, err := lights.ParseColor(input.Body.Color)
	if err != nil {
		return nil, err
	}
	mode, err := lights.ParseFlashMode(input.Body.FlashMode)
	if err != nil {
		return nil, err
	}
	return &lights.Request{
		Color:          color,
		FlashMode:      mode,
		FlashOnMS:      input.Body.FlashOnMS,
		FlashOffMS:     input.Body.FlashOffMS,
		BrightnessMode: lights.BrightnessMode(input.Body.BrightnessMode),
	}, nil
}

// lightError maps a module error to an HTTP error carrying the errno.
func lightError(err error) error {
	detail := &huma.ErrorDetail{
		Message:  err.Error(),
		Location: "errno",
		Value:    lights.Errno(err),
	}
	if errors.Is(err, lights.ErrInvalidArgument) {
		return huma.Error400BadRequest("Invalid light request", detail)
	}
	return huma.Error500InternalServerError("Failed to write light", detail)
}

func toLightState(r lights.Request) models.LightState {
	return models.LightState{
		Color:          fmt.Sprintf("%08x", r.Color),
		FlashMode:      r.FlashMode.String(),
		FlashOnMS:      r.FlashOnMS,
		FlashOffMS:     r.FlashOffMS,
		BrightnessMode: int(r.BrightnessMode),
	}
}

func toLightsState(snap lights.Snapshot) models.LightsState {
	state := models.LightsState{
		Attention:    toLightState(snap.Attention),
		Notification: toLightState(snap.Notification),
		Battery:      toLightState(snap.Battery),
	}
	if snap.Applied {
		state.Active = snap.Active.String()
	}
	return state
}
