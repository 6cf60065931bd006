package api

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/dayledger/internal/app"
	"github.com/terraincognita07/dayledger/internal/metrics"
	"github.com/terraincognita07/dayledger/internal/services"
)

const contextOwnerKey = "owner"

const (
	headerCarryRequested = "X-Carry-Requested"
	headerCarryCreated   = "X-Carry-Created"
	headerCarrySkipped   = "X-Carry-Skipped"
)

type Handler struct {
	services     *app.Services
	location     *time.Location
	defaultOwner string
	authSecret   string
	logger       zerolog.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

type HandlerOptions struct {
	DefaultOwner string
	// AuthSecret enables bearer-token owner resolution when non-empty.
	AuthSecret string
	// Metrics is optional; nil disables instrumentation and /metrics.
	Metrics *metrics.Metrics
}

type carryForwardPayload struct {
	FromDate           string `json:"fromDate"`
	ToDate             string `json:"toDate"`
	SkipAlreadyCarried bool   `json:"skipAlreadyCarried"`
}

type dailyLogPayload struct {
	Date string `json:"date"`
	services.DailyLogFields
}

type weeklyReviewPayload struct {
	WeekStart string                    `json:"weekStart"`
	Notes     services.Optional[string] `json:"notes"`
}
