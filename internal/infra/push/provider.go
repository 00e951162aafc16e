package push

import (
	"context"
	"log/slog"

	"adinas/config"
	"adinas/internal/domain/service"

	"go.uber.org/fx"
)

// noopService drops pushes when Firebase is not configured. In-app
// notifications still persist; only device delivery is skipped.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendSingleNotification(_ context.Context, _, title, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("title", title),
	)

	return nil
}

func (s *noopService) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("title", title),
		slog.Int("token_count", len(tokens)),
	)

	return 0, 0, nil, nil
}

// Params holds dependencies for PushService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a PushService based on configuration
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op push service")

		return &noopService{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging push service",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
}
