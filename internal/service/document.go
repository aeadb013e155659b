package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"rentdocs/internal/document"
	"rentdocs/internal/metrics"
	"rentdocs/internal/model"
	"rentdocs/internal/template"
)

var (
	ErrUnknownTemplate  = errors.New("unknown template")
	ErrGenerationFailed = errors.New("document generation failed")
)

// Fields the service fills in itself; request values for them are ignored.
const (
	FieldReference        = "id"
	FieldVerificationCode = "verification_code"
)

var tracer = otel.Tracer("rentdocs/internal/service")

// Publisher stores document bytes and returns where they can be fetched.
type Publisher interface {
	Publish(ctx context.Context, category model.Category, data []byte) (*model.GeneratedFile, error)
}

// DocumentService defines the document generation use case.
type DocumentService interface {
	// Generate renders the named template with fields, lays it out as a PDF
	// and publishes it. Nothing is written when rendering fails.
	Generate(ctx context.Context, name model.TemplateName, fields model.FieldSet) (*model.GeneratedFile, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	templates template.Store
	generator document.Generator
	publisher Publisher
	metrics   *metrics.Documents
	log       *zap.Logger
	newCodes  func() (reference, verification string)
}

// Option customizes the document service.
type Option func(*documentService)

// WithMetrics records generation metrics.
func WithMetrics(m *metrics.Documents) Option {
	return func(s *documentService) { s.metrics = m }
}

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *documentService) { s.log = l }
}

// WithCodeGenerator replaces the random reference/verification code source.
func WithCodeGenerator(f func() (string, string)) Option {
	return func(s *documentService) { s.newCodes = f }
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(templates template.Store, generator document.Generator, publisher Publisher, opts ...Option) DocumentService {
	s := &documentService{
		templates: templates,
		generator: generator,
		publisher: publisher,
		log:       zap.NewNop(),
		newCodes:  randomCodes,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// randomCodes returns an 8 character document reference and a 6 character
// upper-case verification code.
func randomCodes() (string, string) {
	ref := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return ref, code
}

func (s *documentService) Generate(ctx context.Context, name model.TemplateName, fields model.FieldSet) (file *model.GeneratedFile, err error) {
	category, ok := name.Category()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	ctx, span := tracer.Start(ctx, "DocumentService.Generate", trace.WithAttributes(
		attribute.String("document.template", string(name)),
	))
	start := time.Now()
	defer func() {
		s.metrics.Observe(string(category), time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tpl, err := s.templates.Load(name)
	if err != nil {
		return nil, err
	}

	ref, code := s.newCodes()
	values := make(model.FieldSet, len(fields)+2)
	for k, v := range fields {
		values[k] = v
	}
	values[FieldReference] = ref
	values[FieldVerificationCode] = code

	text, err := template.Render(tpl, values)
	if err != nil {
		return nil, err
	}

	pdf, err := s.generator.Generate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	file, err = s.publisher.Publish(ctx, category, pdf)
	if err != nil {
		return nil, err
	}
	file.Reference = ref
	file.VerificationCode = code

	span.SetAttributes(attribute.String("document.id", file.ID), attribute.Int64("document.size", file.Size))
	s.log.Info("document_published",
		zap.String("template", string(name)),
		zap.String("file_id", file.ID),
		zap.String("reference", ref),
		zap.Int64("size", file.Size),
	)
	return file, nil
}
