package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// SaleService defines the use cases for point-of-sale transactions.
type SaleService interface {
	Create(ctx context.Context, sl *model.Sale) (*model.Sale, error)
	Get(ctx context.Context, id string) (*model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	Update(ctx context.Context, id string, sl *model.Sale) (*model.Sale, error)
	Delete(ctx context.Context, id string) error
}

type saleService struct {
	sales repository.SaleRepository
}

// NewSaleService constructs a new SaleService.
func NewSaleService(sales repository.SaleRepository) SaleService {
	return &saleService{sales: sales}
}

func (s *saleService) Create(ctx context.Context, sl *model.Sale) (*model.Sale, error) {
	if err := validateSale(sl); err != nil {
		return nil, err
	}
	sl.ID = uuid.New().String()
	if sl.Date.IsZero() {
		sl.Date = time.Now().UTC()
	}
	return s.sales.Create(ctx, sl)
}

func (s *saleService) Get(ctx context.Context, id string) (*model.Sale, error) {
	sl, err := s.sales.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("sale")
		}
		return nil, err
	}
	return sl, nil
}

func (s *saleService) List(ctx context.Context) ([]model.Sale, error) {
	return s.sales.List(ctx)
}

func (s *saleService) Update(ctx context.Context, id string, sl *model.Sale) (*model.Sale, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := validateSale(sl); err != nil {
		return nil, err
	}
	sl.ID = id
	return s.sales.Update(ctx, sl)
}

func (s *saleService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.sales.Delete(ctx, id)
}

func validateSale(sl *model.Sale) error {
	var missing []string
	if sl.ClientName == "" {
		missing = append(missing, "clientName")
	}
	if sl.ClientPhone == "" {
		missing = append(missing, "clientPhone")
	}
	if len(sl.Items) == 0 {
		missing = append(missing, "items")
	}
	if sl.PaymentMethod == "" {
		missing = append(missing, "paymentMethod")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	switch sl.PaymentMethod {
	case model.PaymentCash, model.PaymentCard, model.PaymentInsurance, model.PaymentOnline:
	default:
		return &ValidationError{Fields: []string{"paymentMethod"}}
	}
	return nil
}
