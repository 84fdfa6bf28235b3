package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyGormRepository stores the company profile under entities.CompanyProfileID.
type CompanyGormRepository struct {
	gormBase
}

var _ interfaces.ICompanyRepository = (*CompanyGormRepository)(nil)

func NewCompanyGormRepository(db *gorm.DB) *CompanyGormRepository {
	return &CompanyGormRepository{gormBase{db: db}}
}

func (r *CompanyGormRepository) Get(ctx context.Context) (entities.CompanyInfo, error) {
	var m companyInfoModel
	found, err := takeOne(r.conn(ctx).Where("id = ?", entities.CompanyProfileID), &m)
	if err != nil {
		return entities.CompanyInfo{}, translateError("get company info", err)
	}
	if !found {
		return entities.CompanyInfo{}, nil
	}
	return fromCompanyInfoModel(m), nil
}

// Save inserts the profile or overwrites every column of the existing one in a single statement.
func (r *CompanyGormRepository) Save(ctx context.Context, c entities.CompanyInfo) (entities.CompanyInfo, error) {
	c.ID = entities.CompanyProfileID
	m := toCompanyInfoModel(c)
	err := r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&m).Error
	if err != nil {
		return entities.CompanyInfo{}, translateError("save company info", err)
	}
	return fromCompanyInfoModel(m), nil
}

func toCompanyInfoModel(c entities.CompanyInfo) companyInfoModel {
	return companyInfoModel{ID: c.ID, Name: c.Name, Address: c.Address, Phone: c.Phone, Email: c.Email, TaxID: c.TaxID}
}

func fromCompanyInfoModel(m companyInfoModel) entities.CompanyInfo {
	return entities.CompanyInfo{ID: m.ID, Name: m.Name, Address: m.Address, Phone: m.Phone, Email: m.Email, TaxID: m.TaxID}
}
