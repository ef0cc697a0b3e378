package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/rank-api/internal/api/handler/router"
	"github.com/vfg2006/rank-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-api/internal/usecases/registering"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Ranks(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects/:projectId/items",
			Method:  http.MethodPost,
			Handler: CreateItem(service),
		},
		{
			Path:    "/v1/projects/:projectId/items/:itemId",
			Method:  http.MethodGet,
			Handler: GetItem(service),
		},
		{
			Path:    "/v1/projects/:projectId/items/:itemId",
			Method:  http.MethodDelete,
			Handler: DeleteItem(service),
		},
		{
			Path:    "/v1/projects/:projectId/items/:itemId/rank",
			Method:  http.MethodPost,
			Handler: RankItem(service),
		},
	}
}

func Users(service registering.UserService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodGet,
			Handler: GetUser(service),
		},
	}
}
