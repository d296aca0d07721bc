package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) createProduct(ctx echo.Context) error {
	var req productRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(),
		req.Name,
		req.UnitCost,
		req.MinimumStock,
		req.EnergeticValue,
		parseID(req.FoodGroupID),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	product, err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderProduct(product))
}

func (s *Server) updateProduct(ctx echo.Context) error {
	productID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req productRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		req.Name,
		req.UnitCost,
		req.MinimumStock,
		req.EnergeticValue,
		parseID(req.FoodGroupID),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	product, err := s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderProduct(product))
}

func (s *Server) removeProduct(ctx echo.Context) error {
	productID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveProductCommand(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getProduct(ctx echo.Context) error {
	productID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderProductView(view))
}

func (s *Server) listProducts(ctx echo.Context) error {
	views, err := s.queries.GetAllProducts.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]productResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderProductView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) listProductsBelowMinimum(ctx echo.Context) error {
	views, err := s.queries.GetProductsBelowMinimum.Handle(
		ctx.Request().Context(),
		queries.NewGetProductsBelowMinimumQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]productResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderProductView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) createFoodGroup(ctx echo.Context) error {
	var req foodGroupRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreateFoodGroupCommand(kernel.NewUUID(), req.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	group, err := s.commands.CreateFoodGroup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderFoodGroup(group))
}

func (s *Server) updateFoodGroup(ctx echo.Context) error {
	groupID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req foodGroupRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdateFoodGroupCommand(groupID, req.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	group, err := s.commands.UpdateFoodGroup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderFoodGroup(group))
}

func (s *Server) removeFoodGroup(ctx echo.Context) error {
	groupID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveFoodGroupCommand(groupID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveFoodGroup.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getFoodGroup(ctx echo.Context) error {
	groupID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetFoodGroupQuery(groupID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetFoodGroup.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderFoodGroupView(view))
}

func (s *Server) listFoodGroups(ctx echo.Context) error {
	views, err := s.queries.GetAllFoodGroups.Handle(ctx.Request().Context(), queries.NewGetAllFoodGroupsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]foodGroupResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderFoodGroupView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) createPreparationType(ctx echo.Context) error {
	var req preparationTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreatePreparationTypeCommand(kernel.NewUUID(), req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	preparationType, err := s.commands.CreatePreparationType.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderPreparationType(preparationType))
}

func (s *Server) updatePreparationType(ctx echo.Context) error {
	typeID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req preparationTypeRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdatePreparationTypeCommand(typeID, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	preparationType, err := s.commands.UpdatePreparationType.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderPreparationType(preparationType))
}

func (s *Server) removePreparationType(ctx echo.Context) error {
	typeID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemovePreparationTypeCommand(typeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemovePreparationType.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getPreparationType(ctx echo.Context) error {
	typeID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPreparationTypeQuery(typeID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetPreparationType.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderPreparationTypeView(view))
}

func (s *Server) listPreparationTypes(ctx echo.Context) error {
	views, err := s.queries.GetAllPreparationTypes.Handle(
		ctx.Request().Context(),
		queries.NewGetAllPreparationTypesQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]preparationTypeResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderPreparationTypeView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) createPreparedItem(ctx echo.Context) error {
	var req preparedItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreatePreparedItemCommand(
		kernel.NewUUID(),
		req.Name,
		parseID(req.ProductID),
		parseID(req.PreparationTypeID),
		req.PreparationCost,
		req.PreparationTime,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.commands.CreatePreparedItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderPreparedItem(item))
}

func (s *Server) updatePreparedItem(ctx echo.Context) error {
	itemID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req preparedItemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdatePreparedItemCommand(
		itemID,
		req.Name,
		parseID(req.ProductID),
		parseID(req.PreparationTypeID),
		req.PreparationCost,
		req.PreparationTime,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.commands.UpdatePreparedItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderPreparedItem(item))
}

func (s *Server) removePreparedItem(ctx echo.Context) error {
	itemID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemovePreparedItemCommand(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemovePreparedItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getPreparedItem(ctx echo.Context) error {
	itemID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPreparedItemQuery(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetPreparedItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderPreparedItemView(view))
}

func (s *Server) listPreparedItems(ctx echo.Context) error {
	views, err := s.queries.GetAllPreparedItems.Handle(
		ctx.Request().Context(),
		queries.NewGetAllPreparedItemsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]preparedItemResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderPreparedItemView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) createMenu(ctx echo.Context) error {
	var req menuRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	itemIDs := make([]kernel.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		itemIDs = append(itemIDs, parseID(item))
	}

	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), req.Name, req.Description, itemIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	menu, err := s.commands.CreateMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderMenu(menu))
}

func (s *Server) updateMenu(ctx echo.Context) error {
	menuID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req menuRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	itemIDs := make([]kernel.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		itemIDs = append(itemIDs, parseID(item))
	}

	cmd, err := commands.NewUpdateMenuCommand(menuID, req.Name, req.Description, itemIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	menu, err := s.commands.UpdateMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderMenu(menu))
}

func (s *Server) removeMenu(ctx echo.Context) error {
	menuID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveMenuCommand(menuID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveMenu.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getMenu(ctx echo.Context) error {
	menuID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMenuQuery(menuID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderMenuView(view))
}

func (s *Server) listMenus(ctx echo.Context) error {
	views, err := s.queries.GetAllMenus.Handle(ctx.Request().Context(), queries.NewGetAllMenusQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]menuResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderMenuView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}
