package apiclient

import (
	"fmt"
	"net/http"
)

// Endpoint describes one backend operation.
type Endpoint struct {
	Name   string
	Method string
	Path   string
	Auth   bool
}

// Routes is the full set of backend operations for one deployment flavour.
type Routes struct {
	Predict          Endpoint
	PredictFromQuery Endpoint
	PredictFromURL   Endpoint
	PublicHistory    Endpoint
	Register         Endpoint
	Login            Endpoint
	UserHistory      Endpoint
	AdminStats       Endpoint
	AdminDisputes    Endpoint
	AdminUsers       Endpoint
	Retrain          Endpoint
	Feedback         Endpoint
	LiveNews         Endpoint
}

const (
	RoutesAPI    = "api"
	RoutesLegacy = "legacy"
)

// RoutesFor returns the canonical /api/... set or the older unprefixed
// prediction routes, which were served without authentication.
func RoutesFor(name string) (Routes, error) {
	r := Routes{
		Predict:          Endpoint{Name: "predict", Method: http.MethodPost, Path: "/api/predict", Auth: true},
		PredictFromQuery: Endpoint{Name: "predict-from-api", Method: http.MethodPost, Path: "/api/predict-from-api", Auth: true},
		PredictFromURL:   Endpoint{Name: "predict-from-url", Method: http.MethodPost, Path: "/api/predict-from-url", Auth: true},
		PublicHistory:    Endpoint{Name: "history", Method: http.MethodGet, Path: "/api/history"},
		Register:         Endpoint{Name: "register", Method: http.MethodPost, Path: "/auth/register"},
		Login:            Endpoint{Name: "login", Method: http.MethodPost, Path: "/auth/login"},
		UserHistory:      Endpoint{Name: "user-history", Method: http.MethodGet, Path: "/api/user/history", Auth: true},
		AdminStats:       Endpoint{Name: "admin-stats", Method: http.MethodGet, Path: "/api/admin/stats", Auth: true},
		AdminDisputes:    Endpoint{Name: "admin-disputes", Method: http.MethodGet, Path: "/api/admin/disputes", Auth: true},
		AdminUsers:       Endpoint{Name: "admin-users", Method: http.MethodGet, Path: "/api/admin/users", Auth: true},
		Retrain:          Endpoint{Name: "admin-retrain", Method: http.MethodPost, Path: "/api/admin/retrain", Auth: true},
		Feedback:         Endpoint{Name: "feedback", Method: http.MethodPost, Path: "/api/feedback", Auth: true},
		LiveNews:         Endpoint{Name: "live-news", Method: http.MethodGet, Path: "/api/live-news", Auth: true},
	}

	switch name {
	case RoutesAPI, "":
		return r, nil
	case RoutesLegacy:
		r.Predict = Endpoint{Name: "predict", Method: http.MethodPost, Path: "/predict"}
		r.PredictFromQuery = Endpoint{Name: "predict-from-api", Method: http.MethodPost, Path: "/predict-from-api"}
		r.PredictFromURL = Endpoint{Name: "predict-from-url", Method: http.MethodPost, Path: "/predict-from-url"}
		return r, nil
	}
	return Routes{}, fmt.Errorf("unknown route set %q", name)
}
