// Package http is the inbound HTTP adapter: an echo server translating
// JSON requests into commands and queries and domain results back into
// response DTOs. Malformed ids and dates inside request bodies parse to
// zero values on purpose, so the aggregates report them as validation
// violations alongside everything else instead of failing one field at
// a time.
package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/core/domain/model/registry"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// parseID converts a body field to a UUID, mapping malformed input to
// the zero UUID so aggregate validation reports it.
func parseID(s string) kernel.UUID {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return kernel.UUID{}
	}
	return id
}

// parsePathID converts a URL path parameter to a UUID. Unlike body
// fields a malformed path id fails immediately: there is no aggregate
// validation to fold it into.
func parsePathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidError(name)
	}
	return id, nil
}

// parseDate converts a body field to a date, mapping malformed input
// to the zero time so aggregate validation reports it.
func parseDate(s string) time.Time {
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return date
}

// parseClock converts a body field to a time of day, accepting both
// "15:04" and "15:04:05".
func parseClock(s string) time.Time {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if clock, err := time.Parse(layout, s); err == nil {
			return clock
		}
	}
	return time.Time{}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

type orderItemRequest struct {
	PreparedItemID string `json:"prepared_item_id"`
	Portions       int    `json:"portions"`
}

type productRequest struct {
	Name           string          `json:"name"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	MinimumStock   int             `json:"minimum_stock"`
	EnergeticValue int             `json:"energetic_value"`
	FoodGroupID    string          `json:"food_group_id"`
}

type productResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	MinimumStock   int             `json:"minimum_stock"`
	EnergeticValue int             `json:"energetic_value"`
	FoodGroupID    string          `json:"food_group_id"`
	OnHand         *int            `json:"on_hand,omitempty"`
}

func renderProduct(product *catalog.Product) productResponse {
	return productResponse{
		ID:             product.ID().String(),
		Name:           product.Name(),
		UnitCost:       product.UnitCost(),
		MinimumStock:   product.MinimumStock(),
		EnergeticValue: product.EnergeticValue(),
		FoodGroupID:    product.FoodGroup().String(),
	}
}

func renderProductView(view queries.ProductResponse) productResponse {
	onHand := view.OnHand
	return productResponse{
		ID:             view.ID.String(),
		Name:           view.Name,
		UnitCost:       view.UnitCost,
		MinimumStock:   view.MinimumStock,
		EnergeticValue: view.EnergeticValue,
		FoodGroupID:    view.FoodGroupID.String(),
		OnHand:         &onHand,
	}
}

type foodGroupRequest struct {
	Name string `json:"name"`
}

type foodGroupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func renderFoodGroup(group *catalog.FoodGroup) foodGroupResponse {
	return foodGroupResponse{ID: group.ID().String(), Name: group.Name()}
}

func renderFoodGroupView(view queries.FoodGroupResponse) foodGroupResponse {
	return foodGroupResponse{ID: view.ID.String(), Name: view.Name}
}

type preparationTypeRequest struct {
	Description string `json:"description"`
}

type preparationTypeResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

func renderPreparationType(preparationType *catalog.PreparationType) preparationTypeResponse {
	return preparationTypeResponse{
		ID:          preparationType.ID().String(),
		Description: preparationType.Description(),
	}
}

func renderPreparationTypeView(view queries.PreparationTypeResponse) preparationTypeResponse {
	return preparationTypeResponse{ID: view.ID.String(), Description: view.Description}
}

type preparedItemRequest struct {
	Name              string          `json:"name"`
	ProductID         string          `json:"product_id"`
	PreparationTypeID string          `json:"preparation_type_id"`
	PreparationCost   decimal.Decimal `json:"preparation_cost"`
	PreparationTime   int             `json:"preparation_time"`
}

type preparedItemResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	ProductID           string          `json:"product_id"`
	ProductName         string          `json:"product_name,omitempty"`
	PreparationTypeID   string          `json:"preparation_type_id"`
	PreparationTypeName string          `json:"preparation_type_name,omitempty"`
	PreparationCost     decimal.Decimal `json:"preparation_cost"`
	PreparationTime     int             `json:"preparation_time"`
}

func renderPreparedItem(item *catalog.PreparedItem) preparedItemResponse {
	return preparedItemResponse{
		ID:                item.ID().String(),
		Name:              item.Name(),
		ProductID:         item.Product().String(),
		PreparationTypeID: item.PreparationType().String(),
		PreparationCost:   item.PreparationCost(),
		PreparationTime:   item.PreparationTime(),
	}
}

func renderPreparedItemView(view queries.PreparedItemResponse) preparedItemResponse {
	return preparedItemResponse{
		ID:                  view.ID.String(),
		Name:                view.Name,
		ProductID:           view.ProductID.String(),
		ProductName:         view.ProductName,
		PreparationTypeID:   view.PreparationTypeID.String(),
		PreparationTypeName: view.PreparationTypeName,
		PreparationCost:     view.PreparationCost,
		PreparationTime:     view.PreparationTime,
	}
}

type menuRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

type menuItemResponse struct {
	PreparedItemID   string `json:"prepared_item_id"`
	PreparedItemName string `json:"prepared_item_name,omitempty"`
}

type menuResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Items       []menuItemResponse `json:"items"`
}

func renderMenu(menu *catalog.Menu) menuResponse {
	items := make([]menuItemResponse, 0, len(menu.Items()))
	for _, itemID := range menu.Items() {
		items = append(items, menuItemResponse{PreparedItemID: itemID.String()})
	}

	return menuResponse{
		ID:          menu.ID().String(),
		Name:        menu.Name(),
		Description: menu.Description(),
		Items:       items,
	}
}

func renderMenuView(view queries.MenuResponse) menuResponse {
	items := make([]menuItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, menuItemResponse{
			PreparedItemID:   item.PreparedItemID.String(),
			PreparedItemName: item.PreparedItemName,
		})
	}

	return menuResponse{
		ID:          view.ID.String(),
		Name:        view.Name,
		Description: view.Description,
		Items:       items,
	}
}

type neighborhoodRequest struct {
	Name        string          `json:"name"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}

type neighborhoodResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}

func renderNeighborhood(neighborhood *registry.Neighborhood) neighborhoodResponse {
	return neighborhoodResponse{
		ID:          neighborhood.ID().String(),
		Name:        neighborhood.Name(),
		DeliveryFee: neighborhood.DeliveryFee(),
	}
}

func renderNeighborhoodView(view queries.NeighborhoodResponse) neighborhoodResponse {
	return neighborhoodResponse{ID: view.ID.String(), Name: view.Name, DeliveryFee: view.DeliveryFee}
}

type clientRequest struct {
	Name           string `json:"name"`
	IdentityCard   string `json:"identity_card"`
	TaxID          string `json:"tax_id"`
	Phone          string `json:"phone"`
	Street         string `json:"street"`
	Number         string `json:"number"`
	NeighborhoodID string `json:"neighborhood_id"`
	ReferencePoint string `json:"reference_point"`
}

type clientResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	IdentityCard     string `json:"identity_card"`
	TaxID            string `json:"tax_id"`
	Phone            string `json:"phone"`
	Street           string `json:"street"`
	Number           string `json:"number"`
	NeighborhoodID   string `json:"neighborhood_id"`
	NeighborhoodName string `json:"neighborhood_name,omitempty"`
	ReferencePoint   string `json:"reference_point"`
}

func renderClient(client *registry.Client) clientResponse {
	return clientResponse{
		ID:             client.ID().String(),
		Name:           client.Name(),
		IdentityCard:   client.IdentityCard(),
		TaxID:          client.TaxID(),
		Phone:          client.Phone(),
		Street:         client.Street(),
		Number:         client.Number(),
		NeighborhoodID: client.Neighborhood().String(),
		ReferencePoint: client.ReferencePoint(),
	}
}

func renderClientView(view queries.ClientResponse) clientResponse {
	return clientResponse{
		ID:               view.ID.String(),
		Name:             view.Name,
		IdentityCard:     view.IdentityCard,
		TaxID:            view.TaxID,
		Phone:            view.Phone,
		Street:           view.Street,
		Number:           view.Number,
		NeighborhoodID:   view.NeighborhoodID.String(),
		NeighborhoodName: view.NeighborhoodName,
		ReferencePoint:   view.ReferencePoint,
	}
}

type personRequest struct {
	Name         string `json:"name"`
	IdentityCard string `json:"identity_card"`
	TaxID        string `json:"tax_id"`
	Phone        string `json:"phone"`
}

type personResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	IdentityCard string `json:"identity_card"`
	TaxID        string `json:"tax_id"`
	Phone        string `json:"phone"`
}

func renderDeliveryPerson(person *registry.DeliveryPerson) personResponse {
	return personResponse{
		ID:           person.ID().String(),
		Name:         person.Name(),
		IdentityCard: person.IdentityCard(),
		TaxID:        person.TaxID(),
		Phone:        person.Phone(),
	}
}

func renderCollaborator(collaborator *registry.Collaborator) personResponse {
	return personResponse{
		ID:           collaborator.ID().String(),
		Name:         collaborator.Name(),
		IdentityCard: collaborator.IdentityCard(),
		TaxID:        collaborator.TaxID(),
		Phone:        collaborator.Phone(),
	}
}

func renderPersonView(view queries.PersonResponse) personResponse {
	return personResponse{
		ID:           view.ID.String(),
		Name:         view.Name,
		IdentityCard: view.IdentityCard,
		TaxID:        view.TaxID,
		Phone:        view.Phone,
	}
}

type stockMovementRequest struct {
	ProductID string `json:"product_id"`
	Date      string `json:"date"`
	Quantity  int    `json:"quantity"`
	Kind      string `json:"kind"`
}

type stockMovementResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Date        string `json:"date"`
	Quantity    int    `json:"quantity"`
	Kind        string `json:"kind"`
}

func renderStockMovement(movement *stock.Movement) stockMovementResponse {
	return stockMovementResponse{
		ID:        movement.ID().String(),
		ProductID: movement.Product().String(),
		Date:      formatDate(movement.Date()),
		Quantity:  movement.Quantity(),
		Kind:      movement.Kind().String(),
	}
}

func renderStockMovementView(view queries.StockMovementResponse) stockMovementResponse {
	return stockMovementResponse{
		ID:          view.ID.String(),
		ProductID:   view.ProductID.String(),
		ProductName: view.ProductName,
		Date:        formatDate(view.Date),
		Quantity:    view.Quantity,
		Kind:        view.Kind,
	}
}

type productionOrderRequest struct {
	MenuID         string             `json:"menu_id"`
	ProductionDate string             `json:"production_date"`
	Items          []orderItemRequest `json:"items"`
}

type productionOrderItemResponse struct {
	ID               string `json:"id"`
	PreparedItemID   string `json:"prepared_item_id"`
	PreparedItemName string `json:"prepared_item_name,omitempty"`
	Portions         int    `json:"portions"`
}

type productionOrderResponse struct {
	ID             string                        `json:"id"`
	MenuID         string                        `json:"menu_id"`
	MenuName       string                        `json:"menu_name,omitempty"`
	ProductionDate string                        `json:"production_date"`
	Status         string                        `json:"status"`
	Items          []productionOrderItemResponse `json:"items"`
}

func renderProductionOrder(order *production.Order) productionOrderResponse {
	items := make([]productionOrderItemResponse, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, productionOrderItemResponse{
			ID:             item.ID().String(),
			PreparedItemID: item.PreparedItemID().String(),
			Portions:       item.Portions(),
		})
	}

	return productionOrderResponse{
		ID:             order.ID().String(),
		MenuID:         order.Menu().String(),
		ProductionDate: formatDate(order.ProductionDate()),
		Status:         order.Status().String(),
		Items:          items,
	}
}

func renderProductionOrderView(view queries.ProductionOrderResponse) productionOrderResponse {
	items := make([]productionOrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, productionOrderItemResponse{
			ID:               item.ID.String(),
			PreparedItemID:   item.PreparedItemID.String(),
			PreparedItemName: item.PreparedItemName,
			Portions:         item.Portions,
		})
	}

	return productionOrderResponse{
		ID:             view.ID.String(),
		MenuID:         view.MenuID.String(),
		MenuName:       view.MenuName,
		ProductionDate: formatDate(view.ProductionDate),
		Status:         view.Status,
		Items:          items,
	}
}

type productionReportItemResponse struct {
	PreparedItemName string          `json:"prepared_item_name"`
	Portions         int             `json:"portions"`
	PreparationCost  decimal.Decimal `json:"preparation_cost"`
	Value            decimal.Decimal `json:"value"`
}

type productionOrderReportResponse struct {
	OrderID        string                         `json:"order_id"`
	ProductionDate string                         `json:"production_date"`
	Items          []productionReportItemResponse `json:"items"`
	Total          decimal.Decimal                `json:"total"`
}

type productionReportResponse struct {
	Orders     []productionOrderReportResponse `json:"orders"`
	GrandTotal decimal.Decimal                 `json:"grand_total"`
}

func renderProductionReport(report queries.ProductionReportResponse) productionReportResponse {
	orders := make([]productionOrderReportResponse, 0, len(report.Orders))
	for _, order := range report.Orders {
		items := make([]productionReportItemResponse, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, productionReportItemResponse{
				PreparedItemName: item.PreparedItemName,
				Portions:         item.Portions,
				PreparationCost:  item.PreparationCost,
				Value:            item.Value,
			})
		}
		orders = append(orders, productionOrderReportResponse{
			OrderID:        order.OrderID.String(),
			ProductionDate: formatDate(order.ProductionDate),
			Items:          items,
			Total:          order.Total,
		})
	}

	return productionReportResponse{Orders: orders, GrandTotal: report.GrandTotal}
}

type customerOrderRequest struct {
	ClientID  string             `json:"client_id"`
	OrderDate string             `json:"order_date"`
	OrderTime string             `json:"order_time"`
	Items     []orderItemRequest `json:"items"`
}

type deliveryRequest struct {
	DeliveryPersonID string `json:"delivery_person_id"`
}

type customerOrderItemResponse struct {
	ID               string `json:"id"`
	PreparedItemID   string `json:"prepared_item_id"`
	PreparedItemName string `json:"prepared_item_name,omitempty"`
	Portions         int    `json:"portions"`
}

type customerOrderResponse struct {
	ID                 string                      `json:"id"`
	ClientID           string                      `json:"client_id"`
	ClientName         string                      `json:"client_name,omitempty"`
	DeliveryPersonID   *string                     `json:"delivery_person_id,omitempty"`
	DeliveryPersonName string                      `json:"delivery_person_name,omitempty"`
	OrderDate          string                      `json:"order_date"`
	OrderTime          string                      `json:"order_time"`
	Status             string                      `json:"status"`
	RegisteredAt       time.Time                   `json:"registered_at"`
	ReadyAt            *time.Time                  `json:"ready_at,omitempty"`
	CompletedAt        *time.Time                  `json:"completed_at,omitempty"`
	Items              []customerOrderItemResponse `json:"items"`
}

func renderCustomerOrder(order *customerorder.Order) customerOrderResponse {
	var deliveryPersonID *string
	if id := order.DeliveryPerson(); id != nil {
		rendered := id.String()
		deliveryPersonID = &rendered
	}

	items := make([]customerOrderItemResponse, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, customerOrderItemResponse{
			ID:             item.ID().String(),
			PreparedItemID: item.PreparedItemID().String(),
			Portions:       item.Portions(),
		})
	}

	return customerOrderResponse{
		ID:               order.ID().String(),
		ClientID:         order.Client().String(),
		DeliveryPersonID: deliveryPersonID,
		OrderDate:        formatDate(order.OrderDate()),
		OrderTime:        order.OrderTime().Format("15:04:05"),
		Status:           order.Status().String(),
		RegisteredAt:     order.RegisteredAt(),
		ReadyAt:          order.ReadyAt(),
		CompletedAt:      order.CompletedAt(),
		Items:            items,
	}
}

func renderCustomerOrderView(view queries.CustomerOrderResponse) customerOrderResponse {
	var deliveryPersonID *string
	if view.DeliveryPersonID != nil {
		rendered := view.DeliveryPersonID.String()
		deliveryPersonID = &rendered
	}

	items := make([]customerOrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, customerOrderItemResponse{
			ID:               item.ID.String(),
			PreparedItemID:   item.PreparedItemID.String(),
			PreparedItemName: item.PreparedItemName,
			Portions:         item.Portions,
		})
	}

	return customerOrderResponse{
		ID:                 view.ID.String(),
		ClientID:           view.ClientID.String(),
		ClientName:         view.ClientName,
		DeliveryPersonID:   deliveryPersonID,
		DeliveryPersonName: view.DeliveryPersonName,
		OrderDate:          formatDate(view.OrderDate),
		OrderTime:          view.OrderTime.Format("15:04:05"),
		Status:             view.Status,
		RegisteredAt:       view.RegisteredAt,
		ReadyAt:            view.ReadyAt,
		CompletedAt:        view.CompletedAt,
		Items:              items,
	}
}

type leadTimesResponse struct {
	AverageToReadySeconds      float64 `json:"average_to_ready_seconds"`
	AverageToCompletionSeconds float64 `json:"average_to_completion_seconds"`
}

func renderLeadTimes(view queries.OrderLeadTimesResponse) leadTimesResponse {
	return leadTimesResponse{
		AverageToReadySeconds:      view.AverageToReady.Seconds(),
		AverageToCompletionSeconds: view.AverageToCompletion.Seconds(),
	}
}
