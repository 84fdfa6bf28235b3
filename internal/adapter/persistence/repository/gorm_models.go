package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Storage columns use English snake case. The Portuguese names only exist at the HTTP boundary.

type clientModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(40)"`
	Address   string `gorm:"type:text"`
	TaxID     string `gorm:"column:cpf_cnpj;type:varchar(14);not null;uniqueIndex"`
	CreatedAt time.Time
}

func (clientModel) TableName() string { return "clients" }

type vehicleModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Make      string `gorm:"type:varchar(80);not null"`
	Model     string `gorm:"type:varchar(80);not null"`
	Year      int    `gorm:"not null"`
	Plate     string `gorm:"type:varchar(10);not null;uniqueIndex"`
	ClientID  string `gorm:"type:varchar(36);not null;index"`
	CreatedAt time.Time
}

func (vehicleModel) TableName() string { return "vehicles" }

type serviceRecordModel struct {
	ID          string           `gorm:"primaryKey;type:varchar(36)"`
	VehicleID   string           `gorm:"type:varchar(36);not null;index"`
	Description string           `gorm:"type:text;not null"`
	Value       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PerformedAt time.Time        `gorm:"not null"`
}

func (serviceRecordModel) TableName() string { return "service_records" }

type serviceModel struct {
	ID          string          `gorm:"primaryKey;type:varchar(10)"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Duration    string          `gorm:"type:varchar(40)"`
	Category    string          `gorm:"type:varchar(80)"`
}

func (serviceModel) TableName() string { return "services" }

type partColumn struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type budgetModel struct {
	ID          string                          `gorm:"primaryKey;type:varchar(36)"`
	Number      int64                           `gorm:"not null;uniqueIndex"`
	QuoteDate   time.Time                       `gorm:"not null"`
	ClientID    string                          `gorm:"type:varchar(36);not null;index"`
	VehicleID   string                          `gorm:"type:varchar(36);not null;index"`
	Odometer    int64                           `gorm:"not null;default:0"`
	Description string                          `gorm:"type:text"`
	ServiceIDs  datatypes.JSONSlice[string]     `gorm:"column:service_ids"`
	Parts       datatypes.JSONSlice[partColumn] `gorm:"column:parts"`
	TotalValue  decimal.Decimal                 `gorm:"type:numeric(12,2);not null"`
	Status      string                          `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (budgetModel) TableName() string { return "budgets" }

type serviceOrderModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	ClientID    *string   `gorm:"type:varchar(36);index"`
	VehicleID   *string   `gorm:"type:varchar(36);index"`
	BudgetID    *string   `gorm:"type:varchar(36)"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	Description string    `gorm:"type:text"`
	FuelLevel   string    `gorm:"type:varchar(20)"`
	Odometer    int64     `gorm:"not null;default:0"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     *time.Time
	PartsCost   decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	LaborCost   decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	TotalPrice  decimal.Decimal             `gorm:"type:numeric(12,2);not null"`
	ServiceIDs  datatypes.JSONSlice[string] `gorm:"column:service_ids"`
}

func (serviceOrderModel) TableName() string { return "service_orders" }

type invoiceModel struct {
	ID             string          `gorm:"primaryKey;type:varchar(36)"`
	ServiceOrderID string          `gorm:"type:varchar(36);not null;index"`
	IssueDate      time.Time       `gorm:"not null;index"`
	TotalValue     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt      time.Time

	// PaymentClaim holds the token of the payment attempt currently charging the invoice.
	PaymentClaim     string `gorm:"type:varchar(36);not null;default:''"`
	PaymentClaimedAt *time.Time
}

func (invoiceModel) TableName() string { return "invoices" }

type companyInfoModel struct {
	ID      string `gorm:"primaryKey;type:varchar(36)"`
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"type:varchar(40)"`
	Email   string `gorm:"type:varchar(255)"`
	TaxID   string `gorm:"column:tax_id;type:varchar(14)"`
}

func (companyInfoModel) TableName() string { return "company_info" }

type userModel struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type sequenceModel struct {
	Name  string `gorm:"primaryKey;type:varchar(64)"`
	Value int64  `gorm:"not null"`
}

func (sequenceModel) TableName() string { return "sequences" }

// AutoMigrate creates or updates every SQL table used by the repositories.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientModel{},
		&vehicleModel{},
		&serviceRecordModel{},
		&serviceModel{},
		&budgetModel{},
		&serviceOrderModel{},
		&invoiceModel{},
		&companyInfoModel{},
		&userModel{},
		&sequenceModel{},
	)
}
