package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"rentdocs/internal/http/middleware"
	"rentdocs/internal/model"
	"rentdocs/internal/reference"
	"rentdocs/internal/schema"
	"rentdocs/internal/service"
	"rentdocs/internal/storage"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Documents     service.DocumentService
	Schemas       *schema.Registry
	Reference     *reference.Table
	Files         storage.Storage
	AuthToken     string
	ValidatePhone string
	Log           *zap.Logger
}

// Tool endpoint paths.
const (
	PathValidate          = "/validate"
	PathGenerateAgreement = "/tool/generate_agreement"
	PathGenerateReceipt   = "/tool/generate_rent_receipt"
	PathStampDutyInfo     = "/tool/stamp_duty_info"
)

var generatePaths = map[model.TemplateName]string{
	model.TemplateAgreement: PathGenerateAgreement,
	model.TemplateReceipt:   PathGenerateReceipt,
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	// Any origin may call the API. Preflights are answered by cors; every
	// other OPTIONS request gets 204 from the catch-all below.
	app.Use(cors.New())
	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Some clients probe the root during their connection handshake.
	app.Get("/", Root())
	app.Head("/", Root())
	app.Post("/", Root())

	app.Get("/health", HealthCheck())
	app.Get("/healthz", HealthCheck())
	app.Get("/tools", ListTools(d.Schemas))
	app.Get("/files/:category/:name", ServeFile(d.Files, log))

	validateAuth := middleware.BearerAuth(middleware.AuthConfig{Token: d.AuthToken, QueryParam: "token"})
	app.Get(PathValidate, validateAuth, Validate(d.ValidatePhone))
	app.Post(PathValidate, validateAuth, Validate(d.ValidatePhone))

	toolAuth := middleware.BearerAuth(middleware.AuthConfig{Token: d.AuthToken})
	for _, name := range []model.TemplateName{model.TemplateAgreement, model.TemplateReceipt} {
		app.Post(generatePaths[name], toolAuth, GenerateDocument(d.Documents, d.Schemas, name, log))
	}
	app.Post(PathStampDutyInfo, toolAuth, StampDutyInfo(d.Reference))
}

// Root answers handshake probes on "/".
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// HealthCheck is a constant liveness response; it performs no I/O.
//
// @Summary Liveness check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// Validate returns the configured phone number once BearerAuth has accepted the token.
//
// @Summary Check the bearer token and return the caller phone
// @Produce json
// @Security BearerAuth
// @Param token query string false "Token when no Authorization header is sent"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errorPayload
// @Router /validate [post]
func Validate(phone string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"phone": phone})
	}
}
