package catalogrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates
// modified within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(product.ID(), product)
	return nil
}

// Update saves an existing product to the database.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product_id", product.ID())
	}

	r.tracker.TrackAggregate(product.ID(), product)
	return nil
}

// Get retrieves a product by id.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product_id", id)
		}
		return nil, err
	}

	return productToDomain(dto)
}

// Remove deletes a product by id.
func (r *GormProductRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product_id", id)
	}

	return nil
}

// GormFoodGroupRepository implements FoodGroupRepository using GORM.
type GormFoodGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormFoodGroupRepository creates a new GORM food group repository.
func NewGormFoodGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormFoodGroupRepository {
	return &GormFoodGroupRepository{db: db, tracker: tracker}
}

// Add saves a new food group to the database.
func (r *GormFoodGroupRepository) Add(ctx context.Context, group *catalog.FoodGroup) error {
	if err := group.Validate(); err != nil {
		return err
	}

	dto := foodGroupFromDomain(group)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(group.ID(), group)
	return nil
}

// Update saves an existing food group to the database.
func (r *GormFoodGroupRepository) Update(ctx context.Context, group *catalog.FoodGroup) error {
	if err := group.Validate(); err != nil {
		return err
	}

	dto := foodGroupFromDomain(group)
	result := r.db.WithContext(ctx).Model(&FoodGroupDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food_group_id", group.ID())
	}

	r.tracker.TrackAggregate(group.ID(), group)
	return nil
}

// Get retrieves a food group by id.
func (r *GormFoodGroupRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.FoodGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food_group_id", id)
		}
		return nil, err
	}

	return foodGroupToDomain(dto)
}

// Remove deletes a food group by id.
func (r *GormFoodGroupRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&FoodGroupDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food_group_id", id)
	}

	return nil
}

// GormPreparationTypeRepository implements PreparationTypeRepository
// using GORM.
type GormPreparationTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPreparationTypeRepository creates a new GORM preparation type
// repository.
func NewGormPreparationTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormPreparationTypeRepository {
	return &GormPreparationTypeRepository{db: db, tracker: tracker}
}

// Add saves a new preparation type to the database.
func (r *GormPreparationTypeRepository) Add(ctx context.Context, preparationType *catalog.PreparationType) error {
	if err := preparationType.Validate(); err != nil {
		return err
	}

	dto := preparationTypeFromDomain(preparationType)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(preparationType.ID(), preparationType)
	return nil
}

// Update saves an existing preparation type to the database.
func (r *GormPreparationTypeRepository) Update(ctx context.Context, preparationType *catalog.PreparationType) error {
	if err := preparationType.Validate(); err != nil {
		return err
	}

	dto := preparationTypeFromDomain(preparationType)
	result := r.db.WithContext(ctx).Model(&PreparationTypeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("preparation_type_id", preparationType.ID())
	}

	r.tracker.TrackAggregate(preparationType.ID(), preparationType)
	return nil
}

// Get retrieves a preparation type by id.
func (r *GormPreparationTypeRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.PreparationType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PreparationTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("preparation_type_id", id)
		}
		return nil, err
	}

	return preparationTypeToDomain(dto)
}

// Remove deletes a preparation type by id.
func (r *GormPreparationTypeRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PreparationTypeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("preparation_type_id", id)
	}

	return nil
}

// GormPreparedItemRepository implements PreparedItemRepository using
// GORM.
type GormPreparedItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPreparedItemRepository creates a new GORM prepared item
// repository.
func NewGormPreparedItemRepository(db *gorm.DB, tracker aggregateTracker) *GormPreparedItemRepository {
	return &GormPreparedItemRepository{db: db, tracker: tracker}
}

// Add saves a new prepared item to the database.
func (r *GormPreparedItemRepository) Add(ctx context.Context, item *catalog.PreparedItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := preparedItemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing prepared item to the database.
func (r *GormPreparedItemRepository) Update(ctx context.Context, item *catalog.PreparedItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := preparedItemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&PreparedItemDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("prepared_item_id", item.ID())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a prepared item by id.
func (r *GormPreparedItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.PreparedItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PreparedItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("prepared_item_id", id)
		}
		return nil, err
	}

	return preparedItemToDomain(dto)
}

// GetByIDs retrieves the prepared items for the given ids in one round
// trip. A missing id fails with ObjectNotFoundError naming the first
// absent reference.
func (r *GormPreparedItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.PreparedItem, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []PreparedItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]PreparedItemDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}

	items := make([]*catalog.PreparedItem, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		raw := id.Bytes()
		if seen[raw] {
			continue
		}
		seen[raw] = true

		dto, ok := found[raw]
		if !ok {
			return nil, errs.NewObjectNotFoundError("prepared_item_id", id)
		}

		item, err := preparedItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Remove deletes a prepared item by id.
func (r *GormPreparedItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PreparedItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("prepared_item_id", id)
	}

	return nil
}

// GormMenuRepository implements MenuRepository using GORM. The menu row
// and its item rows always change together inside the owning unit of
// work's transaction.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{db: db, tracker: tracker}
}

// Add saves a new menu and its item references to the database.
func (r *GormMenuRepository) Add(ctx context.Context, menu *catalog.Menu) error {
	if err := menu.Validate(); err != nil {
		return err
	}

	dto, items := menuFromDomain(menu)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(menu.ID(), menu)
	return nil
}

// Update saves an existing menu, replacing its item references
// wholesale.
func (r *GormMenuRepository) Update(ctx context.Context, menu *catalog.Menu) error {
	if err := menu.Validate(); err != nil {
		return err
	}

	dto, items := menuFromDomain(menu)
	result := r.db.WithContext(ctx).Model(&MenuDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu_id", menu.ID())
	}

	if err := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "menu_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(menu.ID(), menu)
	return nil
}

// Get retrieves a menu with its item references by id.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu_id", id)
		}
		return nil, err
	}

	var items []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&items, "menu_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return menuToDomain(dto, items)
}

// Remove deletes a menu and its item references by id.
func (r *GormMenuRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "menu_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu_id", id)
	}

	return nil
}
