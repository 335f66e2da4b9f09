//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"driversync/internal/eventchannel"
	"driversync/internal/gateway/http/dispatch"
	"driversync/internal/handlers/tasks/location_push"
	"driversync/internal/locations/sampler"
	"driversync/internal/locations/simsource"
	"driversync/internal/pkg/config"
	"driversync/internal/service/completion"
	"driversync/internal/service/session"
	"driversync/pkg/background"
	"driversync/pkg/logger"

	"github.com/google/wire"
)

type (
	PushInterval time.Duration
)

type Application struct {
	Session           *session.Session
	CompletionFlow    *completion.Flow
	EventChannel      *eventchannel.Client
	Sampler           *sampler.Sampler
	BackgroundWorkers *background.Worker
}

// InitializeApplication для бинаря сессии (cmd/session)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideHTTPClient,
		provideDispatchGateway,
		provideEventChannel,
		provideSession,
		provideCompletionFlow,

		provideSimSource,
		provideSampler,

		providePushInterval,
		provideLocationPushTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{
		Timeout: cfg.Dispatch.RequestTimeout,
	}
}

func provideDispatchGateway(client *http.Client, cfg *config.Config) *dispatch.Gateway {
	return dispatch.New(client, cfg.Dispatch.BaseURL)
}

func provideEventChannel(log logger.Logger, cfg *config.Config) *eventchannel.Client {
	connectTimeout := cfg.EventChannel.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = eventchannel.DefaultConnectTimeout
	}
	return eventchannel.New(log, eventchannel.NewWSDialer(), cfg.EventChannel.URL, connectTimeout)
}

func provideSession(log logger.Logger, gateway *dispatch.Gateway, channel *eventchannel.Client) *session.Session {
	return session.New(log, gateway, channel)
}

func provideCompletionFlow(store *session.Session) *completion.Flow {
	return completion.NewFlow(store)
}

func provideSimSource(cfg *config.Config) *simsource.Source {
	return simsource.New(
		cfg.Sampler.StartLatitude,
		cfg.Sampler.StartLongitude,
		cfg.Sampler.SourceInterval,
		time.Now().UnixNano(),
	)
}

func provideSampler(log logger.Logger, source *simsource.Source, store *session.Session, cfg *config.Config) *sampler.Sampler {
	minInterval := cfg.Sampler.MinInterval
	if minInterval == 0 {
		minInterval = sampler.DefaultMinInterval
	}
	return sampler.New(log, source, store, minInterval)
}

func providePushInterval(cfg *config.Config) PushInterval {
	return PushInterval(cfg.Tasks.LocationPushInterval)
}

func provideLocationPushTask(store *session.Session, interval PushInterval) *location_push.LocationPush {
	return location_push.New(store, time.Duration(interval))
}

func provideTaskList(
	locationPushTask *location_push.LocationPush,
) []background.Task {
	return []background.Task{
		locationPushTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
