package service

import (
	"context"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/repository"
)

// MedicineService defines the use cases for the pharmacy catalogue. Every
// write is mirrored into inventory as an item of type "Medicine" keyed by
// (name, type), so the stock view and the catalogue stay in step.
type MedicineService interface {
	Create(ctx context.Context, m *model.Medicine) (*model.Medicine, error)
	Get(ctx context.Context, id string) (*model.Medicine, error)
	List(ctx context.Context) ([]model.Medicine, error)
	Update(ctx context.Context, id string, m *model.Medicine) (*model.Medicine, error)
	Delete(ctx context.Context, id string) error
}

const medicineItemType = "Medicine"

type medicineService struct {
	medicines repository.MedicineRepository
	items     repository.InventoryRepository
	inventory InventoryService
}

// NewMedicineService constructs a new MedicineService.
func NewMedicineService(medicines repository.MedicineRepository, items repository.InventoryRepository, inventory InventoryService) MedicineService {
	return &medicineService{medicines: medicines, items: items, inventory: inventory}
}

func (s *medicineService) Create(ctx context.Context, m *model.Medicine) (*model.Medicine, error) {
	if err := validateMedicine(m); err != nil {
		return nil, err
	}
	m.ID = uuid.New().String()
	stored, err := s.medicines.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	if err := s.mirrorUpsert(ctx, stored.Name, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *medicineService) Get(ctx context.Context, id string) (*model.Medicine, error) {
	m, err := s.medicines.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, notFound("medicine")
		}
		return nil, err
	}
	return m, nil
}

func (s *medicineService) List(ctx context.Context) ([]model.Medicine, error) {
	return s.medicines.List(ctx)
}

func (s *medicineService) Update(ctx context.Context, id string, m *model.Medicine) (*model.Medicine, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateMedicine(m); err != nil {
		return nil, err
	}
	m.ID = id
	stored, err := s.medicines.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	// The mirror row is looked up under the name the medicine had before the
	// update, in case the name itself changed.
	if err := s.mirrorUpsert(ctx, existing.Name, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *medicineService) Delete(ctx context.Context, id string) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.medicines.Delete(ctx, id); err != nil {
		return err
	}
	item, err := s.items.FindByNameAndType(ctx, m.Name, medicineItemType)
	if err != nil {
		if isNoRows(err) {
			return nil
		}
		return err
	}
	return s.inventory.Delete(ctx, item.ID)
}

// mirrorUpsert creates or refreshes the inventory row backing the medicine.
// lookupName is the catalogue name before the write.
func (s *medicineService) mirrorUpsert(ctx context.Context, lookupName string, m *model.Medicine) error {
	supplier := &model.Supplier{Name: m.Supplier}
	expiry := m.ExpiryDate

	item, err := s.items.FindByNameAndType(ctx, lookupName, medicineItemType)
	if err != nil {
		if !isNoRows(err) {
			return err
		}
		_, err = s.inventory.Create(ctx, &model.InventoryItem{
			Name:         m.Name,
			Type:         medicineItemType,
			UnitName:     m.UnitName,
			Quantity:     m.Unit,
			Price:        m.SellingPrice,
			CostPrice:    m.CostPrice,
			SellingPrice: m.SellingPrice,
			ExpiryDate:   &expiry,
			Threshold:    model.DefaultReorderThreshold,
		}, supplier)
		return err
	}

	item.Name = m.Name
	item.UnitName = m.UnitName
	item.Quantity = m.Unit
	item.Price = m.SellingPrice
	item.CostPrice = m.CostPrice
	item.SellingPrice = m.SellingPrice
	item.ExpiryDate = &expiry
	_, err = s.inventory.Update(ctx, item.ID, item, supplier)
	return err
}

func validateMedicine(m *model.Medicine) error {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Type == "" {
		missing = append(missing, "type")
	}
	if m.UnitName == "" {
		missing = append(missing, "unitName")
	}
	if m.Supplier == "" {
		missing = append(missing, "supplier")
	}
	if m.ExpiryDate.IsZero() {
		missing = append(missing, "expiryDate")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
