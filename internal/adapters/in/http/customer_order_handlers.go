package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) createCustomerOrder(ctx echo.Context) error {
	var req customerOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreateCustomerOrderCommand(
		kernel.NewUUID(),
		parseID(req.ClientID),
		parseDate(req.OrderDate),
		parseClock(req.OrderTime),
		orderItemInputs(req.Items),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.CreateCustomerOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderCustomerOrder(order))
}

func (s *Server) updateCustomerOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req customerOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdateCustomerOrderCommand(
		orderID,
		parseID(req.ClientID),
		parseDate(req.OrderDate),
		parseClock(req.OrderTime),
		orderItemInputs(req.Items),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.UpdateCustomerOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderCustomerOrder(order))
}

func (s *Server) removeCustomerOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCustomerOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveCustomerOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) startOrderProduction(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartOrderProductionCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.StartOrderProduction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderCustomerOrder(order))
}

func (s *Server) markOrderReady(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.MarkOrderReady.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderCustomerOrder(order))
}

func (s *Server) startOrderDelivery(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req deliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewStartOrderDeliveryCommand(orderID, parseID(req.DeliveryPersonID))
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.StartOrderDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderCustomerOrder(order))
}

func (s *Server) completeOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderCustomerOrder(order))
}

func (s *Server) getCustomerOrder(ctx echo.Context) error {
	orderID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetCustomerOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderCustomerOrderView(view))
}

func (s *Server) listCustomerOrders(ctx echo.Context) error {
	var clientID *kernel.UUID
	if clientParam := ctx.QueryParam("client_id"); clientParam != "" {
		parsed, err := kernel.UUIDFromString(clientParam)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidError("client_id"))
		}
		clientID = &parsed
	}

	var status *customerorder.Status
	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		parsed, err := customerorder.StatusFromString(statusParam)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	dateStart, dateEnd := parseOptionalDateWindow(ctx)

	query, err := queries.NewListCustomerOrdersQuery(clientID, status, dateStart, dateEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.queries.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]customerOrderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderCustomerOrderView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) getOrderLeadTimes(ctx echo.Context) error {
	view, err := s.queries.GetOrderLeadTimes.Handle(
		ctx.Request().Context(),
		queries.NewGetOrderLeadTimesQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderLeadTimes(view))
}
