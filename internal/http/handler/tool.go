package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"rentdocs/internal/model"
	"rentdocs/internal/publish"
	"rentdocs/internal/reference"
	"rentdocs/internal/schema"
	"rentdocs/internal/service"
	"rentdocs/internal/storage"
)

var fileNamePattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}\.pdf$`)

type generateResponse struct {
	URL              string `json:"url"`
	Link             string `json:"link"`
	Answer           string `json:"answer"`
	ID               string `json:"id"`
	VerificationCode string `json:"verification_code"`
}

// decodeObject parses a JSON object body. An empty body is an empty object.
func decodeObject(body []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(strings.TrimSpace(string(body))) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// absoluteURL prefixes root-relative links with the request's scheme and host.
func absoluteURL(c *fiber.Ctx, u string) string {
	if strings.HasPrefix(u, "/") {
		return c.BaseURL() + u
	}
	return u
}

// GenerateDocument validates the body against the template schema, then
// renders, lays out and publishes the document.
//
// @Summary Generate a rental agreement or rent receipt PDF
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "Template fields, see GET /tools for the schema"
// @Success 200 {object} generateResponse
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /tool/generate_agreement [post]
// @Router /tool/generate_rent_receipt [post]
func GenerateDocument(svc service.DocumentService, schemas *schema.Registry, name model.TemplateName, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := decodeObject(c.Body())
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body must be a JSON object")
		}

		fields, err := schemas.Validate(name, body)
		if err != nil {
			return writeDocumentError(c, log, err)
		}

		file, err := svc.Generate(c.UserContext(), name, fields)
		if err != nil {
			return writeDocumentError(c, log, err)
		}

		link := absoluteURL(c, file.URL)
		return c.JSON(generateResponse{
			URL:              link,
			Link:             link,
			Answer:           "Your document is ready: " + link,
			ID:               file.Reference,
			VerificationCode: file.VerificationCode,
		})
	}
}

type stampDutyRequest struct {
	Jurisdiction string `json:"jurisdiction"`
	// State is accepted for clients using the older field name.
	State string `json:"state"`
}

type stampDutyResponse struct {
	model.ReferenceRecord
	Found  bool   `json:"found"`
	Answer string `json:"answer"`
}

type stampDutyListResponse struct {
	Answer        string                  `json:"answer"`
	Jurisdictions []model.ReferenceRecord `json:"jurisdictions"`
}

// StampDutyInfo looks up one jurisdiction, or lists all of them when none is given.
// Unknown jurisdictions get the default record with found=false.
//
// @Summary Stamp duty reference for a jurisdiction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body stampDutyRequest false "Jurisdiction to look up"
// @Success 200 {object} stampDutyResponse
// @Failure 401 {object} errorPayload
// @Router /tool/stamp_duty_info [post]
func StampDutyInfo(table *reference.Table) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req stampDutyRequest
		if len(strings.TrimSpace(string(c.Body()))) > 0 {
			if err := json.Unmarshal(c.Body(), &req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body must be a JSON object")
			}
		}

		j := strings.TrimSpace(req.Jurisdiction)
		if j == "" {
			j = strings.TrimSpace(req.State)
		}
		if j == "" {
			return c.JSON(stampDutyListResponse{
				Answer:        "Stamp duty information for available states.",
				Jurisdictions: table.All(),
			})
		}

		rec, found := table.Lookup(j)
		answer := fmt.Sprintf("Stamp duty information for %s: %s.", rec.Jurisdiction, rec.RateDescription)
		if !found {
			answer = fmt.Sprintf("Sorry, I don't have stamp duty information for %s. %s", j, rec.RateDescription)
		}
		return c.JSON(stampDutyResponse{ReferenceRecord: rec, Found: found, Answer: answer})
	}
}

// ServeFile streams a published document from storage.
//
// @Summary Download a generated document
// @Produce application/pdf
// @Param category path string true "agreements or receipts"
// @Param name path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /files/{category}/{name} [get]
func ServeFile(store storage.Storage, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := model.Category(c.Params("category"))
		name := c.Params("name")
		if !category.Valid() || !fileNamePattern.MatchString(name) {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}

		rc, info, err := store.Get(c.UserContext(), publish.Key(category, name))
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
			}
			log.Error("file_read_failed", zap.String("key", publish.Key(category, name)), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
		return c.SendStream(rc, int(info.Size))
	}
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Method      string         `json:"method"`
	Path        string         `json:"path"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

type toolManifest struct {
	ServerID string           `json:"server_id"`
	Name     string           `json:"name"`
	Version  string           `json:"version"`
	Tools    []toolDescriptor `json:"tools"`
}

// ListTools describes the tool endpoints with their input schemas.
//
// @Summary Tool manifest with input schemas
// @Produce json
// @Success 200 {object} toolManifest
// @Router /tools [get]
func ListTools(schemas *schema.Registry) fiber.Handler {
	tools := []toolDescriptor{{
		Name:        "validate",
		Method:      fiber.MethodPost,
		Path:        PathValidate,
		Description: "Validate bearer token and return the caller phone.",
		InputSchema: map[string]any{"type": "object", "properties": map[string]any{}},
	}}
	for _, def := range schemas.Definitions() {
		path := generatePaths[def.Template]
		tools = append(tools, toolDescriptor{
			Name:        strings.TrimPrefix(path, "/tool/"),
			Method:      fiber.MethodPost,
			Path:        path,
			Description: def.Description,
			InputSchema: def.JSONSchema(),
		})
	}
	tools = append(tools, toolDescriptor{
		Name:        "stamp_duty_info",
		Method:      fiber.MethodPost,
		Path:        PathStampDutyInfo,
		Description: "Stamp duty rates for a state, or for every known state when none is given.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"jurisdiction": map[string]any{"type": "string"},
			},
		},
	})

	manifest := toolManifest{ServerID: "rentsmart-mcp", Name: "RentSmart MCP", Version: "1.0", Tools: tools}
	return func(c *fiber.Ctx) error {
		return c.JSON(manifest)
	}
}
