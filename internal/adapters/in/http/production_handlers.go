package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"

	"github.com/labstack/echo/v4"
)

func orderItemInputs(items []orderItemRequest) []commands.OrderItemInput {
	inputs := make([]commands.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.OrderItemInput{
			PreparedItemID: parseID(item.PreparedItemID),
			Portions:       item.Portions,
		})
	}
	return inputs
}

func (s *Server) createProductionOrder(ctx echo.Context) error {
	var req productionOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreateProductionOrderCommand(
		kernel.NewUUID(),
		parseID(req.MenuID),
		parseDate(req.ProductionDate),
		orderItemInputs(req.Items),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.CreateProductionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderProductionOrder(order))
}

func (s *Server) updateProductionOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req productionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdateProductionOrderCommand(
		orderID,
		parseID(req.MenuID),
		parseDate(req.ProductionDate),
		orderItemInputs(req.Items),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.UpdateProductionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderProductionOrder(order))
}

func (s *Server) removeProductionOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveProductionOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveProductionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// processProductionOrder flips the order to PROCESSED and debits the
// consumed products from stock in the same transaction.
func (s *Server) processProductionOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewProcessProductionOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.ProcessProductionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderProductionOrder(order))
}

func (s *Server) getProductionOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductionOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetProductionOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderProductionOrderView(view))
}

func (s *Server) listProductionOrders(ctx echo.Context) error {
	var status *production.Status
	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		parsed, err := production.StatusFromString(statusParam)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	dateStart, dateEnd := parseOptionalDateWindow(ctx)

	query, err := queries.NewListProductionOrdersQuery(status, dateStart, dateEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.queries.ListProductionOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]productionOrderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderProductionOrderView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) getProductionReport(ctx echo.Context) error {
	dateStart, dateEnd := parseDateWindow(ctx)

	query, err := queries.NewGetProductionReportQuery(dateStart, dateEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.queries.GetProductionReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderProductionReport(report))
}

func (s *Server) getProducedTotals(ctx echo.Context) error {
	dateStart, dateEnd := parseDateWindow(ctx)

	query, err := queries.NewGetProducedTotalsQuery(dateStart, dateEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	totals, err := s.queries.GetProducedTotals.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, totals)
}
