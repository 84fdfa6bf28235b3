package usecase

import (
	"errors"

	"oficina_xpto/internal/domain/entities"
)

var (
	ErrInvalidID = entities.NewError(entities.ErrValidation, "INVALID_ID", "invalid id")

	ErrClientNotFound   = entities.NewError(entities.ErrNotFound, "CLIENT_NOT_FOUND", "client not found")
	ErrVehicleNotFound  = entities.NewError(entities.ErrNotFound, "VEHICLE_NOT_FOUND", "vehicle not found")
	ErrServiceNotFound  = entities.NewError(entities.ErrNotFound, "SERVICE_NOT_FOUND", "service not found")
	ErrBudgetNotFound   = entities.NewError(entities.ErrNotFound, "BUDGET_NOT_FOUND", "budget not found")
	ErrOrderNotFound    = entities.NewError(entities.ErrNotFound, "ORDER_NOT_FOUND", "service order not found")
	ErrInvoiceNotFound  = entities.NewError(entities.ErrNotFound, "INVOICE_NOT_FOUND", "invoice not found")
	ErrPaymentNotFound  = entities.NewError(entities.ErrNotFound, "PAYMENT_NOT_FOUND", "payment not found")
	ErrCompanyNotFound  = entities.NewError(entities.ErrNotFound, "COMPANY_INFO_NOT_FOUND", "company info not found")
	ErrUnknownClientRef = entities.NewError(entities.ErrValidation, "INVALID_CLIENT_REFERENCE", "client reference does not exist")
	ErrUnknownVehicle   = entities.NewError(entities.ErrValidation, "INVALID_VEHICLE_REFERENCE", "vehicle reference does not exist")

	ErrVehicleClientMismatch = entities.NewError(entities.ErrValidation, "VEHICLE_CLIENT_MISMATCH", "vehicle does not belong to client")
	ErrSeedMismatch          = entities.NewError(entities.ErrValidation, "SEED_BUDGET_MISMATCH", "client or vehicle differs from the seed budget")
	ErrInvalidTaxID          = entities.NewError(entities.ErrValidation, "INVALID_CPF_CNPJ", "cpf/cnpj must have 11 or 14 digits")
	ErrInvalidPlate          = entities.NewError(entities.ErrValidation, "INVALID_PLATE", "invalid plate")
	ErrInvalidOdometer       = entities.NewError(entities.ErrValidation, "INVALID_ODOMETER", "odometer must not be negative")
	ErrInvalidPrice          = entities.NewError(entities.ErrValidation, "INVALID_PRICE", "price must not be negative")

	ErrBudgetAlreadyApproved = entities.NewError(entities.ErrConflict, "BUDGET_ALREADY_APPROVED", "budget already approved")
	ErrBudgetStatusChanged   = entities.NewError(entities.ErrConflict, "BUDGET_STATUS_CHANGED", "budget status changed concurrently")
	ErrOrderStatusChanged    = entities.NewError(entities.ErrConflict, "ORDER_STATUS_CHANGED", "service order status changed concurrently")
	ErrInvoiceStatusChanged  = entities.NewError(entities.ErrConflict, "INVOICE_STATUS_CHANGED", "invoice status changed concurrently")
	ErrInvoiceNotPayable     = entities.NewError(entities.ErrConflict, "INVOICE_NOT_PAYABLE", "invoice is not pending")
	ErrInvoicePaymentRunning = entities.NewError(entities.ErrConflict, "INVOICE_PAYMENT_IN_PROGRESS", "a payment for this invoice is already in progress")
	ErrOrderInvoicedManually = entities.NewError(entities.ErrConflict, "ORDER_INVOICED_BY_INVOICE_ONLY", "service order becomes \"Faturada\" only when its invoice is created")
	ErrServiceInUse          = entities.NewError(entities.ErrConflict, "SERVICE_IN_USE", "service is referenced by budgets or service orders")
	ErrTaxIDTaken            = entities.NewError(entities.ErrConflict, "CPF_CNPJ_ALREADY_EXISTS", "cpf/cnpj already registered")
	ErrPlateTaken            = entities.NewError(entities.ErrConflict, "PLATE_ALREADY_EXISTS", "plate already registered")
	ErrEmailTaken            = entities.NewError(entities.ErrConflict, "EMAIL_ALREADY_EXISTS", "email already registered")

	ErrOrderNotCompleted = entities.NewError(entities.ErrPreconditionFailed, "ORDER_NOT_COMPLETED", "service order is not completed")

	ErrInvalidCredentials = entities.NewError(entities.ErrAuth, "INVALID_CREDENTIALS", "invalid credentials")

	ErrInvalidMPPayload               = entities.NewError(entities.ErrValidation, "INVALID_REQUEST", "invalid mercado pago payload")
	ErrPaymentGatewayBadRequest       = entities.NewError(entities.ErrValidation, "PAYMENT_PROVIDER_BAD_REQUEST", "payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = entities.NewError(entities.ErrAuth, "PAYMENT_PROVIDER_UNAUTHORIZED", "payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = entities.NewError(entities.ErrValidation, "PAYMENT_PROVIDER_INVALID_USERS", "payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = entities.NewError(entities.ErrValidation, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "payment gateway customer not found")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)
