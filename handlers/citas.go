package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/citas-backend/models"
	"github.com/lizet96/citas-backend/store"
)

// CitaHandler atiende las rutas /citas sobre el store inyectado
type CitaHandler struct {
	store store.CitaStore
	log   *slog.Logger
}

func NewCitaHandler(s store.CitaStore, log *slog.Logger) *CitaHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CitaHandler{store: s, log: log}
}

// CrearCita crea una nueva cita
func (h *CitaHandler) CrearCita(c *fiber.Ctx) error {
	req, err := parsearCita(c)
	if err != nil {
		return err
	}

	cita, err := h.store.Crear(c.UserContext(), req)
	if err != nil {
		return h.responderError(c, "crear", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cita)
}

// ObtenerCitas lista todas las citas
func (h *CitaHandler) ObtenerCitas(c *fiber.Ctx) error {
	citas, err := h.store.Listar(c.UserContext())
	if err != nil {
		return h.responderError(c, "listar", err)
	}
	return c.Status(fiber.StatusOK).JSON(citas)
}

// ObtenerCitaPorID obtiene una cita específica por ID
func (h *CitaHandler) ObtenerCitaPorID(c *fiber.Ctx) error {
	cita, err := h.store.ObtenerPorID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.responderError(c, "obtener", err)
	}
	return c.Status(fiber.StatusOK).JSON(cita)
}

// ActualizarCita aplica los campos enviados sobre una cita existente
func (h *CitaHandler) ActualizarCita(c *fiber.Ctx) error {
	req, err := parsearCita(c)
	if err != nil {
		return err
	}

	cita, err := h.store.Actualizar(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return h.responderError(c, "actualizar", err)
	}
	return c.Status(fiber.StatusOK).JSON(cita)
}

// EliminarCita elimina una cita
func (h *CitaHandler) EliminarCita(c *fiber.Ctx) error {
	if err := h.store.Eliminar(c.UserContext(), c.Params("id")); err != nil {
		return h.responderError(c, "eliminar", err)
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: msgCitaEliminada})
}

// parsearCita lee el body JSON. Un body vacío equivale a {} y deja la
// validación de campos requeridos al store.
func parsearCita(c *fiber.Ctx) (models.CitaRequest, error) {
	var req models.CitaRequest
	if len(c.Body()) == 0 {
		return req, nil
	}
	if err := c.BodyParser(&req); err != nil {
		if errors.Is(err, fiber.ErrUnprocessableEntity) {
			return req, fiber.NewError(fiber.StatusBadRequest, msgContentType)
		}
		return req, fiber.NewError(fiber.StatusBadRequest, "Datos inválidos: "+err.Error())
	}
	return req, nil
}
