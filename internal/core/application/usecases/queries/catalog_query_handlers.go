package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFoodGroupQueryHandler retrieves single food groups from the
// database.
type GetFoodGroupQueryHandler struct {
	db *gorm.DB
}

// NewGetFoodGroupQueryHandler creates a handler for single food group
// reads.
func NewGetFoodGroupQueryHandler(db *gorm.DB) GetFoodGroupQueryHandler {
	return GetFoodGroupQueryHandler{db: db}
}

// Handle executes the query. An unknown id fails with
// ObjectNotFoundError.
func (h GetFoodGroupQueryHandler) Handle(
	ctx context.Context,
	query GetFoodGroupQuery,
) (FoodGroupResponse, error) {
	if err := query.Validate(); err != nil {
		return FoodGroupResponse{}, err
	}

	groups, err := scanFoodGroups(h.db.WithContext(ctx).Raw(
		`SELECT id, name FROM food_groups WHERE id = ?`,
		query.FoodGroupID().Bytes(),
	))
	if err != nil {
		return FoodGroupResponse{}, err
	}

	if len(groups) == 0 {
		return FoodGroupResponse{}, errs.NewObjectNotFoundError("food_group_id", query.FoodGroupID())
	}

	return groups[0], nil
}

// GetAllFoodGroupsQueryHandler retrieves the food group list from the
// database.
type GetAllFoodGroupsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllFoodGroupsQueryHandler creates a handler for food group
// list reads.
func NewGetAllFoodGroupsQueryHandler(db *gorm.DB) GetAllFoodGroupsQueryHandler {
	return GetAllFoodGroupsQueryHandler{db: db}
}

// Handle executes the query. Groups are returned sorted by name.
func (h GetAllFoodGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetAllFoodGroupsQuery,
) ([]FoodGroupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanFoodGroups(h.db.WithContext(ctx).Raw(
		`SELECT id, name FROM food_groups ORDER BY name`,
	))
}

func scanFoodGroups(result *gorm.DB) ([]FoodGroupResponse, error) {
	rows, err := result.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]FoodGroupResponse, 0)
	for rows.Next() {
		var group FoodGroupResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &group.Name); err != nil {
			return nil, err
		}

		groupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		group.ID = groupID
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

// GetPreparationTypeQueryHandler retrieves single preparation types
// from the database.
type GetPreparationTypeQueryHandler struct {
	db *gorm.DB
}

// NewGetPreparationTypeQueryHandler creates a handler for single
// preparation type reads.
func NewGetPreparationTypeQueryHandler(db *gorm.DB) GetPreparationTypeQueryHandler {
	return GetPreparationTypeQueryHandler{db: db}
}

// Handle executes the query. An unknown id fails with
// ObjectNotFoundError.
func (h GetPreparationTypeQueryHandler) Handle(
	ctx context.Context,
	query GetPreparationTypeQuery,
) (PreparationTypeResponse, error) {
	if err := query.Validate(); err != nil {
		return PreparationTypeResponse{}, err
	}

	types, err := scanPreparationTypes(h.db.WithContext(ctx).Raw(
		`SELECT id, description FROM preparation_types WHERE id = ?`,
		query.PreparationTypeID().Bytes(),
	))
	if err != nil {
		return PreparationTypeResponse{}, err
	}

	if len(types) == 0 {
		return PreparationTypeResponse{}, errs.NewObjectNotFoundError(
			"preparation_type_id", query.PreparationTypeID())
	}

	return types[0], nil
}

// GetAllPreparationTypesQueryHandler retrieves the preparation type
// list from the database.
type GetAllPreparationTypesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPreparationTypesQueryHandler creates a handler for
// preparation type list reads.
func NewGetAllPreparationTypesQueryHandler(db *gorm.DB) GetAllPreparationTypesQueryHandler {
	return GetAllPreparationTypesQueryHandler{db: db}
}

// Handle executes the query. Types are returned sorted by description.
func (h GetAllPreparationTypesQueryHandler) Handle(
	ctx context.Context,
	query GetAllPreparationTypesQuery,
) ([]PreparationTypeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanPreparationTypes(h.db.WithContext(ctx).Raw(
		`SELECT id, description FROM preparation_types ORDER BY description`,
	))
}

func scanPreparationTypes(result *gorm.DB) ([]PreparationTypeResponse, error) {
	rows, err := result.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]PreparationTypeResponse, 0)
	for rows.Next() {
		var preparationType PreparationTypeResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &preparationType.Description); err != nil {
			return nil, err
		}

		typeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		preparationType.ID = typeID
		types = append(types, preparationType)
	}

	return types, rows.Err()
}

const preparedItemSelect = `
	SELECT
		pi.id,
		pi.name,
		pi.product_id,
		p.name,
		pi.preparation_type_id,
		pt.description,
		pi.preparation_cost,
		pi.preparation_time
	FROM prepared_items pi
	JOIN products p ON p.id = pi.product_id
	JOIN preparation_types pt ON pt.id = pi.preparation_type_id
`

func scanPreparedItems(rows *sql.Rows) ([]PreparedItemResponse, error) {
	items := make([]PreparedItemResponse, 0)

	for rows.Next() {
		var item PreparedItemResponse
		var id, productID, preparationTypeID uuid.UUID

		err := rows.Scan(
			&id,
			&item.Name,
			&productID,
			&item.ProductName,
			&preparationTypeID,
			&item.PreparationTypeName,
			&item.PreparationCost,
			&item.PreparationTime,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = itemProductID

		itemPreparationTypeID, idErr := kernel.UUIDFromBytes(preparationTypeID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.PreparationTypeID = itemPreparationTypeID

		items = append(items, item)
	}

	return items, rows.Err()
}

// GetPreparedItemQueryHandler retrieves single prepared items from the
// database.
type GetPreparedItemQueryHandler struct {
	db *gorm.DB
}

// NewGetPreparedItemQueryHandler creates a handler for single prepared
// item reads.
func NewGetPreparedItemQueryHandler(db *gorm.DB) GetPreparedItemQueryHandler {
	return GetPreparedItemQueryHandler{db: db}
}

// Handle executes the query. An unknown id fails with
// ObjectNotFoundError.
func (h GetPreparedItemQueryHandler) Handle(
	ctx context.Context,
	query GetPreparedItemQuery,
) (PreparedItemResponse, error) {
	if err := query.Validate(); err != nil {
		return PreparedItemResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		preparedItemSelect+`WHERE pi.id = ?`,
		query.PreparedItemID().Bytes(),
	).Rows()
	if err != nil {
		return PreparedItemResponse{}, err
	}
	defer rows.Close()

	items, err := scanPreparedItems(rows)
	if err != nil {
		return PreparedItemResponse{}, err
	}

	if len(items) == 0 {
		return PreparedItemResponse{}, errs.NewObjectNotFoundError(
			"prepared_item_id", query.PreparedItemID())
	}

	return items[0], nil
}

// GetAllPreparedItemsQueryHandler retrieves the prepared item list
// from the database.
type GetAllPreparedItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPreparedItemsQueryHandler creates a handler for prepared
// item list reads.
func NewGetAllPreparedItemsQueryHandler(db *gorm.DB) GetAllPreparedItemsQueryHandler {
	return GetAllPreparedItemsQueryHandler{db: db}
}

// Handle executes the query. Items are returned sorted by name.
func (h GetAllPreparedItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllPreparedItemsQuery,
) ([]PreparedItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(preparedItemSelect + `ORDER BY pi.name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPreparedItems(rows)
}

// GetMenuQueryHandler retrieves single menus with their item
// references from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for single menu reads.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query. An unknown id fails with
// ObjectNotFoundError.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) (MenuResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuResponse{}, err
	}

	menus, err := loadMenus(ctx, h.db, `WHERE m.id = ?`, query.MenuID().Bytes())
	if err != nil {
		return MenuResponse{}, err
	}

	if len(menus) == 0 {
		return MenuResponse{}, errs.NewObjectNotFoundError("menu_id", query.MenuID())
	}

	return menus[0], nil
}

// GetAllMenusQueryHandler retrieves the menu list with item references
// from the database.
type GetAllMenusQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMenusQueryHandler creates a handler for menu list reads.
func NewGetAllMenusQueryHandler(db *gorm.DB) GetAllMenusQueryHandler {
	return GetAllMenusQueryHandler{db: db}
}

// Handle executes the query. Menus are returned sorted by name.
func (h GetAllMenusQueryHandler) Handle(
	ctx context.Context,
	query GetAllMenusQuery,
) ([]MenuResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadMenus(ctx, h.db, `ORDER BY m.name`)
}

func loadMenus(ctx context.Context, db *gorm.DB, clause string, args ...any) ([]MenuResponse, error) {
	rows, err := db.WithContext(ctx).Raw(
		`SELECT m.id, m.name, m.description FROM menus m `+clause, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make([]MenuResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var menu MenuResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &menu.Name, &menu.Description); err != nil {
			return nil, err
		}

		menuID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		menu.ID = menuID
		menu.Items = make([]MenuItemResponse, 0)

		index[id] = len(menus)
		menus = append(menus, menu)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(menus) == 0 {
		return menus, nil
	}

	menuIDs := make([]uuid.UUID, 0, len(menus))
	for id := range index {
		menuIDs = append(menuIDs, id)
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			mi.menu_id,
			mi.prepared_item_id,
			pi.name
		FROM menu_items mi
		JOIN prepared_items pi ON pi.id = mi.prepared_item_id
		WHERE mi.menu_id IN ?
		ORDER BY mi.position`, menuIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item MenuItemResponse
		var menuID, preparedItemID uuid.UUID

		if err = itemRows.Scan(&menuID, &preparedItemID, &item.PreparedItemName); err != nil {
			return nil, err
		}

		itemPreparedItemID, idErr := kernel.UUIDFromBytes(preparedItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.PreparedItemID = itemPreparedItemID

		position, ok := index[menuID]
		if !ok {
			continue
		}
		menus[position].Items = append(menus[position].Items, item)
	}

	return menus, itemRows.Err()
}
