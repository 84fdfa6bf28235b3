package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetInput carries the editable fields of a budget.
// TotalValue is only informative: the engine always recomputes the total.
type BudgetInput struct {
	ClientID    string
	VehicleID   string
	QuoteDate   time.Time
	Odometer    int64
	Description string
	ServiceIDs  []string
	Parts       []entities.Part
	TotalValue  *decimal.Decimal
}

// IBudgetUseCase exposes the budget (orçamento) engine.
//
// Mapping to the shop workflow:
//   - "Novo orçamento" => CreateBudget() (sequential number + priced total)
//   - "Editar orçamento" => UpdateBudget() (total recomputed server-side)
//   - "Aprovar"/"Rejeitar" => ApproveBudget()/RejectBudget(), guarded on "Pendente"

type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, in BudgetInput) (entities.Budget, error)
	UpdateBudget(ctx context.Context, id string, in BudgetInput) (entities.Budget, error)
	ApproveBudget(ctx context.Context, id string) (entities.Budget, error)
	RejectBudget(ctx context.Context, id string) (entities.Budget, error)
	GetBudget(ctx context.Context, id string) (entities.Budget, error)
	ListBudgets(ctx context.Context) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	tx       interfaces.ITransactor
	seq      interfaces.ISequence
	repo     interfaces.IBudgetRepository
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	services interfaces.IServiceRepository
	metrics  interfaces.IWorkflowMetrics
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	tx interfaces.ITransactor,
	seq interfaces.ISequence,
	repo interfaces.IBudgetRepository,
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	services interfaces.IServiceRepository,
	metrics interfaces.IWorkflowMetrics,
) *BudgetUseCase {
	return &BudgetUseCase{
		tx:       tx,
		seq:      seq,
		repo:     repo,
		clients:  clients,
		vehicles: vehicles,
		services: services,
		metrics:  metricsOrNoop(metrics),
	}
}

func (u *BudgetUseCase) CreateBudget(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	in, err := normalizeBudgetInput(in)
	if err != nil {
		return entities.Budget{}, err
	}

	var created entities.Budget
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		total, err := u.price(ctx, in)
		if err != nil {
			return err
		}

		// A committed number is never handed out again, even if the budget is later discarded.
		number, err := u.seq.Next(ctx, entities.BudgetNumberSequence, entities.FirstBudgetNumber-1)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		quoteDate := in.QuoteDate
		if quoteDate.IsZero() {
			quoteDate = now
		}
		created, err = u.repo.Create(ctx, entities.Budget{
			ID:          uuid.NewString(),
			Number:      number,
			QuoteDate:   quoteDate,
			ClientID:    in.ClientID,
			VehicleID:   in.VehicleID,
			Odometer:    in.Odometer,
			Description: in.Description,
			ServiceIDs:  in.ServiceIDs,
			Parts:       in.Parts,
			TotalValue:  total,
			Status:      entities.BudgetStatusPendente,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("client_id", in.ClientID).Msg("[budget][usecase] create failed")
		return entities.Budget{}, err
	}

	u.metrics.BudgetCreated()
	log.Info().Str("budget_id", created.ID).Int64("number", created.Number).Str("total", created.TotalValue.StringFixed(2)).
		Msg("[budget][usecase] created")
	return created, nil
}

func (u *BudgetUseCase) UpdateBudget(ctx context.Context, id string, in BudgetInput) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidID
	}
	in, err := normalizeBudgetInput(in)
	if err != nil {
		return entities.Budget{}, err
	}

	var updated entities.Budget
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrBudgetNotFound
		}

		total, err := u.price(ctx, in)
		if err != nil {
			return err
		}
		if in.TotalValue != nil && !entities.RoundMoney(*in.TotalValue).Equal(total) {
			log.Warn().Str("budget_id", id).Str("supplied", in.TotalValue.StringFixed(2)).Str("computed", total.StringFixed(2)).
				Msg("[budget][usecase] ignoring caller supplied total")
		}

		current.ClientID = in.ClientID
		current.VehicleID = in.VehicleID
		current.Odometer = in.Odometer
		current.Description = in.Description
		current.ServiceIDs = in.ServiceIDs
		current.Parts = in.Parts
		current.TotalValue = total
		if !in.QuoteDate.IsZero() {
			current.QuoteDate = in.QuoteDate
		}
		current.UpdatedAt = time.Now().UTC()

		updated, err = u.repo.Update(ctx, current)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return ErrBudgetNotFound
		}
		return nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return updated, nil
}

func (u *BudgetUseCase) ApproveBudget(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusAprovado)
}

func (u *BudgetUseCase) RejectBudget(ctx context.Context, id string) (entities.Budget, error) {
	return u.transition(ctx, id, entities.BudgetStatusRejeitado)
}

// transition moves a pending budget to next. The update is conditional on the stored
// status, so two racing approvals cannot both succeed.
func (u *BudgetUseCase) transition(ctx context.Context, id string, next entities.BudgetStatus) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidID
	}

	var out entities.Budget
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ok, err := u.repo.UpdateStatusIf(ctx, id, entities.BudgetStatusPendente, next)
		if err != nil {
			return err
		}
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrBudgetNotFound
		}
		if !ok {
			if current.Status == entities.BudgetStatusAprovado && next == entities.BudgetStatusAprovado {
				return ErrBudgetAlreadyApproved
			}
			if _, err := current.Status.TransitionTo(next); err != nil {
				return err
			}
			return ErrBudgetStatusChanged
		}
		out = current
		return nil
	})
	u.metrics.BudgetTransition(next.String(), resultOf(err))
	if err != nil {
		log.Info().Err(err).Str("budget_id", id).Str("to", next.String()).Msg("[budget][usecase] transition refused")
		return entities.Budget{}, err
	}
	log.Info().Str("budget_id", id).Str("status", out.Status.String()).Msg("[budget][usecase] transition applied")
	return out, nil
}

func (u *BudgetUseCase) GetBudget(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListBudgets(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.List(ctx)
}

// price resolves the references and returns Σ(service.price) + Σ(part.value) at current catalog prices.
func (u *BudgetUseCase) price(ctx context.Context, in BudgetInput) (decimal.Decimal, error) {
	if err := resolveParty(ctx, u.clients, u.vehicles, in.ClientID, in.VehicleID, true); err != nil {
		return decimal.Zero, err
	}
	catalog, err := resolveServices(ctx, u.services, in.ServiceIDs)
	if err != nil {
		return decimal.Zero, err
	}
	return entities.ComputeBudgetTotal(in.ServiceIDs, in.Parts, catalog)
}

func normalizeBudgetInput(in BudgetInput) (BudgetInput, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	in.Description = strings.TrimSpace(in.Description)
	if in.ClientID == "" {
		return in, entities.Validationf("clienteId is required")
	}
	if in.VehicleID == "" {
		return in, entities.Validationf("veiculoId is required")
	}
	if in.Odometer < 0 {
		return in, ErrInvalidOdometer
	}
	in.ServiceIDs = trimIDs(in.ServiceIDs)
	parts := make([]entities.Part, 0, len(in.Parts))
	for _, p := range in.Parts {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return in, entities.Validationf("part name is required")
		}
		if p.Value.IsNegative() {
			return in, entities.Validationf("part %q has a negative value", p.Name)
		}
		p.Value = entities.RoundMoney(p.Value)
		parts = append(parts, p)
	}
	in.Parts = parts
	return in, nil
}
