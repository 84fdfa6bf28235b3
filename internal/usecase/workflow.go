package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// WorkflowOptions toggles the hardening rules layered on top of the legacy behaviour.
//
//   - StrictTransitions: status changes must follow the transition tables. When off, any
//     status may be written over any other, as the shop's first system allowed.
//   - RequireCompletedOrder: invoices can only be generated for "Concluída" orders.
type WorkflowOptions struct {
	StrictTransitions     bool
	RequireCompletedOrder bool
}

func DefaultWorkflowOptions() WorkflowOptions {
	return WorkflowOptions{StrictTransitions: true, RequireCompletedOrder: true}
}

// Metric result labels.
const (
	resultOK       = "ok"
	resultConflict = "conflict"
	resultNotFound = "not_found"
	resultError    = "error"
)

type noopMetrics struct{}

func (noopMetrics) BudgetCreated()                  {}
func (noopMetrics) BudgetTransition(string, string) {}
func (noopMetrics) InvoiceGenerated(string)         {}
func (noopMetrics) ReconciliationRepaired(int)      {}

func metricsOrNoop(m interfaces.IWorkflowMetrics) interfaces.IWorkflowMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, entities.ErrConflict):
		return resultConflict
	case errors.Is(err, entities.ErrNotFound):
		return resultNotFound
	default:
		return resultError
	}
}

// resolveParty checks that both references exist. With ownership set the vehicle must
// also belong to the client.
func resolveParty(ctx context.Context, clients interfaces.IClientRepository, vehicles interfaces.IVehicleRepository, clientID, vehicleID string, ownership bool) error {
	c, err := clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrUnknownClientRef
	}
	v, err := vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if v.ID == "" {
		return ErrUnknownVehicle
	}
	if ownership && v.ClientID != c.ID {
		return ErrVehicleClientMismatch
	}
	return nil
}

// resolveServices loads the referenced catalog entries; any unknown id is a validation error.
func resolveServices(ctx context.Context, services interfaces.IServiceRepository, ids []string) (map[string]entities.Service, error) {
	if len(ids) == 0 {
		return map[string]entities.Service{}, nil
	}
	found, err := services.ListByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	catalog := entities.IndexServices(found)
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			return nil, entities.NewError(entities.ErrValidation, "SERVICE_NOT_FOUND", fmt.Sprintf("service %q not found", id))
		}
	}
	return catalog, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func trimIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
