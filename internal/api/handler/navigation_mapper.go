package handler

import (
	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/ports"
)

func toTitleResponse(res ports.Resolution) titleResponse {
	out := titleResponse{Path: res.Path, Title: res.Title, Match: string(res.Kind)}
	if res.Route != nil {
		out.Route = res.Route.Path
	}
	return out
}

func toRouteListResponse(userType domain.UserType, routes []domain.Route) routeListResponse {
	data := make([]routeResponse, len(routes))
	for i, r := range routes {
		data[i] = routeResponse{
			Path:          r.Path,
			Title:         r.Title,
			Icon:          string(r.Icon),
			ShowInSidebar: r.ShowInSidebar,
			UserType:      string(r.UserType),
			Dynamic:       r.IsDynamic(),
		}
	}
	return routeListResponse{UserType: string(userType), Count: len(data), Data: data}
}
