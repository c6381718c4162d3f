// Package devserver is a local stand-in for the HealthMate backend: the same
// REST surface the client syncs against, backed by sqlite, so the client and
// its tests can run without the real service.
package devserver

import (
	"encoding/json"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/healthmate/healthmate/internal/models"
	"gorm.io/gorm"
)

var knownDomains = map[string]bool{
	"Health":     true,
	"Activity":   true,
	"Mood":       true,
	"Medication": true,
	"Nutrition":  true,
}

// Short payloads carry reference ids; stored records echo them back in the
// embedded form the full record types use.
var referenceFields = map[string]string{
	"activityTypeId": "activityType",
	"mealTypeId":     "mealType",
	"genderId":       "gender",
}

type Server struct {
	app   *fiber.App
	store *storage
}

func New(database *gorm.DB) (*Server, error) {
	store, err := newStorage(database)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "HealthMate Dev Backend",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	server := &Server{app: app, store: store}

	// /User must be registered before the /:domain wildcards.
	app.Post("/User", server.createUser)
	app.Get("/User/:id", server.getUser)
	app.Put("/User/:id", server.updateUser)
	app.Delete("/User/:id", server.deleteUser)

	app.Get("/:domain/:userId/by-date", server.recordsByDate)
	app.Get("/:domain/:userId/between-dates", server.recordsBetweenDates)
	app.Post("/:domain", server.createRecord)
	app.Put("/:domain/:id", server.updateRecord)
	app.Delete("/:domain/:id", server.deleteRecord)

	return server, nil
}

func (server *Server) Listen(address string) error {
	return server.app.Listen(address)
}

// Listener serves on an already-bound listener; tests use this with a
// loopback port.
func (server *Server) Listener(listener net.Listener) error {
	return server.app.Listener(listener)
}

func (server *Server) Shutdown() error {
	return server.app.Shutdown()
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func requireDomain(c *fiber.Ctx) (string, bool) {
	domain := c.Params("domain")
	return domain, knownDomains[domain]
}

func expandReferences(payload map[string]any) {
	for shortKey, fullKey := range referenceFields {
		value, ok := payload[shortKey]
		if !ok {
			continue
		}
		delete(payload, shortKey)
		payload[fullKey] = map[string]any{"id": value, "name": ""}
	}
}

func payloadsToJSON(rows []recordRow) []json.RawMessage {
	payloads := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		payloads = append(payloads, json.RawMessage(row.Payload))
	}
	return payloads
}

func (server *Server) recordsByDate(c *fiber.Ctx) error {
	domain, ok := requireDomain(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "unknown resource")
	}
	date, err := models.ParseDay(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	rows, err := server.store.listRecordsByDate(domain, c.Params("userId"), date.String())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
	}
	return c.JSON(payloadsToJSON(rows))
}

func (server *Server) recordsBetweenDates(c *fiber.Ctx) error {
	domain, ok := requireDomain(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "unknown resource")
	}
	startDate, err := models.ParseDay(c.Query("startDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid startDate")
	}
	finishDate, err := models.ParseDay(c.Query("finishDate"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid finishDate")
	}
	if finishDate.Before(startDate) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	rows, err := server.store.listRecordsBetween(domain, c.Params("userId"), startDate.String(), finishDate.String())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
	}
	return c.JSON(payloadsToJSON(rows))
}

func (server *Server) createRecord(c *fiber.Ctx) error {
	domain, ok := requireDomain(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "unknown resource")
	}

	payload := map[string]any{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid json body")
	}
	userID, _ := payload["userId"].(string)
	if userID == "" {
		return apiError(c, fiber.StatusBadRequest, "userId is required")
	}
	dateValue, _ := payload["date"].(string)
	date, err := models.ParseDay(dateValue)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	delete(payload, "userId")
	expandReferences(payload)
	payload["id"] = uuid.NewString()

	encoded, err := json.Marshal(payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store record")
	}
	row := recordRow{
		ID:      payload["id"].(string),
		Domain:  domain,
		UserID:  userID,
		Date:    date.String(),
		Payload: encoded,
	}
	if err := server.store.createRecord(&row); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store record")
	}
	return c.Status(fiber.StatusCreated).JSON(json.RawMessage(encoded))
}

func (server *Server) updateRecord(c *fiber.Ctx) error {
	domain, ok := requireDomain(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "unknown resource")
	}

	row, found, err := server.store.findRecord(domain, c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load record")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	payload := map[string]any{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid json body")
	}
	if userID, _ := payload["userId"].(string); userID != "" {
		row.UserID = userID
	}
	if dateValue, _ := payload["date"].(string); dateValue != "" {
		date, err := models.ParseDay(dateValue)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		row.Date = date.String()
	}

	delete(payload, "userId")
	expandReferences(payload)
	payload["id"] = row.ID

	encoded, err := json.Marshal(payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store record")
	}
	row.Payload = encoded
	if err := server.store.saveRecord(&row); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store record")
	}
	return c.JSON(json.RawMessage(encoded))
}

func (server *Server) deleteRecord(c *fiber.Ctx) error {
	domain, ok := requireDomain(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "unknown resource")
	}
	deleted, err := server.store.deleteRecord(domain, c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (server *Server) createUser(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid json body")
	}
	expandReferences(payload)
	payload["id"] = uuid.NewString()

	encoded, err := json.Marshal(payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store user")
	}
	row := userRow{ID: payload["id"].(string), Payload: encoded}
	if err := server.store.createUser(&row); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store user")
	}
	return c.Status(fiber.StatusCreated).JSON(json.RawMessage(encoded))
}

func (server *Server) getUser(c *fiber.Ctx) error {
	row, found, err := server.store.findUser(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	return c.JSON(json.RawMessage(row.Payload))
}

func (server *Server) updateUser(c *fiber.Ctx) error {
	row, found, err := server.store.findUser(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}

	payload := map[string]any{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid json body")
	}
	expandReferences(payload)
	payload["id"] = row.ID

	encoded, err := json.Marshal(payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store user")
	}
	row.Payload = encoded
	if err := server.store.saveUser(&row); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store user")
	}
	return c.JSON(json.RawMessage(encoded))
}

func (server *Server) deleteUser(c *fiber.Ctx) error {
	deleted, err := server.store.deleteUser(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "user not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
