package cli

import (
	"context"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/PT-IMM-P2H/backend/internal/core/expiry"
	"github.com/PT-IMM-P2H/backend/internal/ports/primary"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// statusLabel colors an overall or item status.
func statusLabel(status string) string {
	switch status {
	case primary.StatusNormal:
		return green.Sprint(status)
	case primary.StatusWarning:
		return yellow.Sprint(status)
	case primary.StatusAbnormal:
		return red.Sprint(status)
	}
	return status
}

// daysLabel renders remaining document days, flagging expired and near ones.
func daysLabel(days int) string {
	switch {
	case days >= expiry.NoExpiry:
		return "-"
	case days < 0:
		return red.Sprintf("expired %d day(s) ago", -days)
	case days == 0:
		return red.Sprint("expires today")
	case days <= 7:
		return yellow.Sprintf("%d day(s)", days)
	}
	return green.Sprintf("%d day(s)", days)
}

func activeLabel(active bool) string {
	if active {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// ResolveVehicle accepts either a vehicle ID or a hull number.
func ResolveVehicle(ctx context.Context, service primary.VehicleService, ref string) (*primary.Vehicle, error) {
	if _, err := uuid.Parse(ref); err == nil {
		return service.GetVehicle(ctx, ref)
	}
	return service.GetVehicleByHullNumber(ctx, ref)
}
