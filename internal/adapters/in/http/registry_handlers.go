package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) createNeighborhood(ctx echo.Context) error {
	var req neighborhoodRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreateNeighborhoodCommand(kernel.NewUUID(), req.Name, req.DeliveryFee)
	if err != nil {
		return respondError(ctx, err)
	}

	neighborhood, err := s.commands.CreateNeighborhood.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderNeighborhood(neighborhood))
}

func (s *Server) updateNeighborhood(ctx echo.Context) error {
	neighborhoodID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req neighborhoodRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdateNeighborhoodCommand(neighborhoodID, req.Name, req.DeliveryFee)
	if err != nil {
		return respondError(ctx, err)
	}

	neighborhood, err := s.commands.UpdateNeighborhood.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderNeighborhood(neighborhood))
}

func (s *Server) removeNeighborhood(ctx echo.Context) error {
	neighborhoodID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveNeighborhoodCommand(neighborhoodID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveNeighborhood.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getNeighborhood(ctx echo.Context) error {
	neighborhoodID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetNeighborhoodQuery(neighborhoodID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetNeighborhood.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderNeighborhoodView(view))
}

func (s *Server) listNeighborhoods(ctx echo.Context) error {
	views, err := s.queries.GetAllNeighborhoods.Handle(
		ctx.Request().Context(),
		queries.NewGetAllNeighborhoodsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]neighborhoodResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderNeighborhoodView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) createClient(ctx echo.Context) error {
	var req clientRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreateClientCommand(
		kernel.NewUUID(),
		req.Name,
		req.IdentityCard,
		req.TaxID,
		req.Phone,
		req.Street,
		req.Number,
		parseID(req.NeighborhoodID),
		req.ReferencePoint,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	client, err := s.commands.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderClient(client))
}

func (s *Server) updateClient(ctx echo.Context) error {
	clientID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req clientRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdateClientCommand(
		clientID,
		req.Name,
		req.IdentityCard,
		req.TaxID,
		req.Phone,
		req.Street,
		req.Number,
		parseID(req.NeighborhoodID),
		req.ReferencePoint,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	client, err := s.commands.UpdateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderClient(client))
}

func (s *Server) removeClient(ctx echo.Context) error {
	clientID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveClientCommand(clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getClient(ctx echo.Context) error {
	clientID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetClientQuery(clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderClientView(view))
}

func (s *Server) listClients(ctx echo.Context) error {
	views, err := s.queries.GetAllClients.Handle(ctx.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]clientResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderClientView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) createDeliveryPerson(ctx echo.Context) error {
	var req personRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreateDeliveryPersonCommand(
		kernel.NewUUID(), req.Name, req.IdentityCard, req.TaxID, req.Phone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	person, err := s.commands.CreateDeliveryPerson.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderDeliveryPerson(person))
}

func (s *Server) updateDeliveryPerson(ctx echo.Context) error {
	personID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req personRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdateDeliveryPersonCommand(
		personID, req.Name, req.IdentityCard, req.TaxID, req.Phone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	person, err := s.commands.UpdateDeliveryPerson.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderDeliveryPerson(person))
}

func (s *Server) removeDeliveryPerson(ctx echo.Context) error {
	personID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveDeliveryPersonCommand(personID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveDeliveryPerson.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getDeliveryPerson(ctx echo.Context) error {
	personID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryPersonQuery(personID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetDeliveryPerson.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderPersonView(view))
}

func (s *Server) listDeliveryPeople(ctx echo.Context) error {
	views, err := s.queries.GetAllDeliveryPeople.Handle(
		ctx.Request().Context(),
		queries.NewGetAllDeliveryPeopleQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]personResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderPersonView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

func (s *Server) createCollaborator(ctx echo.Context) error {
	var req personRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewCreateCollaboratorCommand(
		kernel.NewUUID(), req.Name, req.IdentityCard, req.TaxID, req.Phone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	collaborator, err := s.commands.CreateCollaborator.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, renderCollaborator(collaborator))
}

func (s *Server) updateCollaborator(ctx echo.Context) error {
	collaboratorID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req personRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Text: "malformed request body"})
	}

	cmd, err := commands.NewUpdateCollaboratorCommand(
		collaboratorID, req.Name, req.IdentityCard, req.TaxID, req.Phone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	collaborator, err := s.commands.UpdateCollaborator.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderCollaborator(collaborator))
}

func (s *Server) removeCollaborator(ctx echo.Context) error {
	collaboratorID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCollaboratorCommand(collaboratorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RemoveCollaborator.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) getCollaborator(ctx echo.Context) error {
	collaboratorID, err := parsePathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCollaboratorQuery(collaboratorID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.queries.GetCollaborator.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, renderPersonView(view))
}

func (s *Server) listCollaborators(ctx echo.Context) error {
	views, err := s.queries.GetAllCollaborators.Handle(
		ctx.Request().Context(),
		queries.NewGetAllCollaboratorsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]personResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, renderPersonView(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}
