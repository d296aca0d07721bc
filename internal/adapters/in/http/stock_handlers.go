package http

import (
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) recordStockMovement(ctx echo.Context) error {
	var req stockMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	// An unrecognized kind string maps to KindUnknown so the movement
	// reports it as a validation violation instead of a parse failure.
	kind, _ := stock.KindFromString(req.Kind)

	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(),
		parseID(req.ProductID),
		parseDate(req.Date),
		req.Quantity,
		kind,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	movement, err := s.commands.RecordStockMovement.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderStockMovement(movement))
}

func (s *Server) removeStockMovement(ctx echo.Context) error {
	movementID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveStockMovementCommand(movementID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveStockMovement.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getStockMovement(ctx echo.Context) error {
	movementID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStockMovementQuery(movementID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetStockMovement.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderStockMovementView(view))
}

// listStockMovements serves the kind-filtered ledger listing. The kind
// query parameter is mandatory: the ledger has no unfiltered listing.
func (s *Server) listStockMovements(ctx echo.Context) error {
	kindParam := ctx.QueryParam("kind")
	if kindParam == "" {
		return respondError(ctx, errs.NewValueIsRequiredError("kind"))
	}

	kind, err := stock.KindFromString(kindParam)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMovementsByKindQuery(kind)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.queries.GetMovementsByKind.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderStockMovementViews(views))
}

func (s *Server) listProductStockMovements(ctx echo.Context) error {
	productID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMovementsByProductQuery(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.queries.GetMovementsByProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderStockMovementViews(views))
}

func (s *Server) listDiscardedMovements(ctx echo.Context) error {
	dateStart, dateEnd := parseDateWindow(ctx)

	query, err := queries.NewGetDiscardedMovementsQuery(dateStart, dateEnd)
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.queries.GetDiscardedMovements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderStockMovementViews(views))
}

// parseDateWindow reads the date_start/date_end query parameters.
// Missing or malformed bounds come back as zero times; the query
// constructor turns those into the proper validation errors.
func parseDateWindow(ctx echo.Context) (time.Time, time.Time) {
	return parseDate(ctx.QueryParam("date_start")), parseDate(ctx.QueryParam("date_end"))
}

// parseOptionalDateWindow reads the window for list filters, where the
// bounds are optional but must be given together. A bound is only
// pointed to when its parameter is present, so a half-open window
// reaches the query constructor and fails there.
func parseOptionalDateWindow(ctx echo.Context) (*time.Time, *time.Time) {
	var dateStart, dateEnd *time.Time
	if param := ctx.QueryParam("date_start"); param != "" {
		parsed := parseDate(param)
		dateStart = &parsed
	}
	if param := ctx.QueryParam("date_end"); param != "" {
		parsed := parseDate(param)
		dateEnd = &parsed
	}
	return dateStart, dateEnd
}

func renderStockMovementViews(views []queries.StockMovementResponse) []stockMovementResponse {
	responses := make([]stockMovementResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderStockMovementView(view))
	}
	return responses
}
