package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// ContractTypeRepository 合同类型数据访问接口
type ContractTypeRepository interface {
	Create(ctx context.Context, ct *model.ContractType) error
	GetByID(ctx context.Context, id string) (*model.ContractType, error)
	List(ctx context.Context) ([]model.ContractType, error)
	Update(ctx context.Context, ct *model.ContractType) error
	Delete(ctx context.Context, id string) error
}

type contractTypeRepo struct {
	db *gorm.DB
}

// NewContractTypeRepo 创建 ContractTypeRepository 实例
func NewContractTypeRepo(db *gorm.DB) ContractTypeRepository {
	return &contractTypeRepo{db: db}
}

func (r *contractTypeRepo) Create(ctx context.Context, ct *model.ContractType) error {
	return r.db.WithContext(ctx).Create(ct).Error
}

func (r *contractTypeRepo) GetByID(ctx context.Context, id string) (*model.ContractType, error) {
	var ct model.ContractType
	err := r.db.WithContext(ctx).
		Where("contract_type_id = ?", id).
		First(&ct).Error
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *contractTypeRepo) List(ctx context.Context) ([]model.ContractType, error) {
	var cts []model.ContractType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&cts).Error
	return cts, err
}

func (r *contractTypeRepo) Update(ctx context.Context, ct *model.ContractType) error {
	return r.db.WithContext(ctx).Save(ct).Error
}

func (r *contractTypeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("contract_type_id = ?", id).
		Delete(&model.ContractType{}).Error
}

// ContractRepository 合同数据访问接口
type ContractRepository interface {
	Create(ctx context.Context, contract *model.Contract) error
	GetByID(ctx context.Context, id string) (*model.Contract, error)
	ListByUser(ctx context.Context, userID string) ([]model.Contract, error)
	List(ctx context.Context, page, pageSize int) ([]model.Contract, int64, error)
	Update(ctx context.Context, contract *model.Contract) error
	Delete(ctx context.Context, id string) error
}

type contractRepo struct {
	db *gorm.DB
}

// NewContractRepo 创建 ContractRepository 实例
func NewContractRepo(db *gorm.DB) ContractRepository {
	return &contractRepo{db: db}
}

func (r *contractRepo) Create(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *contractRepo) GetByID(ctx context.Context, id string) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("ContractType").
		Where("contract_id = ?", id).
		First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepo) ListByUser(ctx context.Context, userID string) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Preload("ContractType").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&contracts).Error
	return contracts, err
}

func (r *contractRepo) List(ctx context.Context, page, pageSize int) ([]model.Contract, int64, error) {
	var contracts []model.Contract
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Contract{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("User").
		Preload("ContractType").
		Order("start_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&contracts).Error
	return contracts, total, err
}

func (r *contractRepo) Update(ctx context.Context, contract *model.Contract) error {
	return r.db.WithContext(ctx).Save(contract).Error
}

func (r *contractRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("contract_id = ?", id).
		Delete(&model.Contract{}).Error
}
