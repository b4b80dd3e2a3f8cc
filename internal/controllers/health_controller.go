package controllers

import (
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"time"

	"globalpass/internal/catalog"
)

type HealthController struct {
	catalog   catalog.ProviderInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	Packages      int     `json:"packages"`
	Countries     int     `json:"countries"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
	}

	if snapshot := hc.catalog.Snapshot(); snapshot != nil {
		resp.CatalogLoaded = true
		resp.Packages = len(snapshot.All)
		resp.Countries = len(snapshot.Countries)
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(catalogProvider catalog.ProviderInterface) *HealthController {
	return &HealthController{
		catalog:   catalogProvider,
		startTime: time.Now(),
	}
}
