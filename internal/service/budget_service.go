package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/freelance-pricing/internal/budget"
	"github.com/nurpe/freelance-pricing/internal/config"
	"github.com/nurpe/freelance-pricing/internal/model"
)

//go:generate mockgen -destination=mocks/document_generator.go -package=mocks github.com/nurpe/freelance-pricing/internal/service DocumentGenerator

// DocumentGenerator renders a paginated budget into one file format.
type DocumentGenerator interface {
	Generate(budget model.PrintableBudget) ([]byte, error)
	ContentType() string
	Extension() string
}

// BudgetView is what callers see of a session.
type BudgetView struct {
	ID       uuid.UUID             `json:"id"`
	State    budget.State          `json:"state"`
	Document *model.BudgetDocument `json:"document,omitempty"`
}

type RenderResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

type sessionEntry struct {
	session  *budget.Session
	category model.Category
	touched  time.Time
}

// BudgetService keeps budget sessions in memory. Sessions idle for longer
// than the configured TTL are dropped.
type BudgetService struct {
	mu         sync.Mutex
	sessions   map[uuid.UUID]*sessionEntry
	generators map[string]DocumentGenerator
	cfg        config.BudgetConfig
	log        zerolog.Logger
	now        func() time.Time
}

func NewBudgetService(cfg config.BudgetConfig, log zerolog.Logger, generators ...DocumentGenerator) *BudgetService {
	byFormat := make(map[string]DocumentGenerator, len(generators))
	for _, g := range generators {
		byFormat[strings.ToLower(g.Extension())] = g
	}
	return &BudgetService{
		sessions:   make(map[uuid.UUID]*sessionEntry),
		generators: byFormat,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}
}

// Create opens a session for src and generates its document right away.
func (s *BudgetService) Create(ctx context.Context, src budget.Source) (*BudgetView, error) {
	src, err := normalizeSource(src)
	if err != nil {
		return nil, err
	}

	session := budget.NewSession(&src)
	now := s.now()
	if err := session.Generate(now); err != nil {
		return nil, mapBudgetError(err)
	}

	id := uuid.New()
	s.mu.Lock()
	s.evictLocked(now)
	s.sessions[id] = &sessionEntry{session: session, category: src.Category, touched: now}
	s.mu.Unlock()

	s.log.Info().Str("budget_id", id.String()).Str("category", string(src.Category)).Msg("budget generated")
	return view(id, session), nil
}

func (s *BudgetService) Get(ctx context.Context, id uuid.UUID) (*BudgetView, error) {
	var result *BudgetView
	err := s.with(id, func(e *sessionEntry) error {
		result = view(id, e.session)
		return nil
	})
	return result, err
}

func (s *BudgetService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(s.now())
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// SetResult swaps the upstream result; any generated document is discarded.
func (s *BudgetService) SetResult(ctx context.Context, id uuid.UUID, src budget.Source) (*BudgetView, error) {
	src, err := normalizeSource(src)
	if err != nil {
		return nil, err
	}

	var result *BudgetView
	err = s.with(id, func(e *sessionEntry) error {
		e.session.ResultChanged(&src)
		e.category = src.Category
		result = view(id, e.session)
		return nil
	})
	if err == nil {
		s.log.Debug().Str("budget_id", id.String()).Msg("budget result replaced")
	}
	return result, err
}

func (s *BudgetService) Generate(ctx context.Context, id uuid.UUID) (*BudgetView, error) {
	var result *BudgetView
	err := s.with(id, func(e *sessionEntry) error {
		if err := e.session.Generate(s.now()); err != nil {
			return mapBudgetError(err)
		}
		result = view(id, e.session)
		return nil
	})
	return result, err
}

func (s *BudgetService) ToggleEdit(ctx context.Context, id uuid.UUID) (*BudgetView, error) {
	var result *BudgetView
	err := s.with(id, func(e *sessionEntry) error {
		if err := e.session.ToggleEdit(); err != nil {
			return mapBudgetError(err)
		}
		result = view(id, e.session)
		return nil
	})
	if err == nil {
		s.log.Debug().Str("budget_id", id.String()).Str("state", string(result.State)).Msg("budget edit toggled")
	}
	return result, err
}

func (s *BudgetService) Apply(ctx context.Context, id uuid.UUID, change budget.Change) (*model.BudgetDocument, error) {
	var result *model.BudgetDocument
	err := s.with(id, func(e *sessionEntry) error {
		doc, err := e.session.Apply(change)
		if err != nil {
			return mapBudgetError(err)
		}
		result = &doc
		return nil
	})
	return result, err
}

func (s *BudgetService) SelectPrice(ctx context.Context, id uuid.UUID, rawChoice string) (*model.BudgetDocument, error) {
	choice, err := budget.ParsePriceChoice(rawChoice)
	if err != nil {
		return nil, mapBudgetError(err)
	}

	var result *model.BudgetDocument
	err = s.with(id, func(e *sessionEntry) error {
		doc, err := e.session.SelectPrice(choice)
		if err != nil {
			return mapBudgetError(err)
		}
		result = &doc
		return nil
	})
	return result, err
}

func (s *BudgetService) Pages(ctx context.Context, id uuid.UUID) ([]model.Page, error) {
	var pages []model.Page
	err := s.with(id, func(e *sessionEntry) error {
		doc, ok := e.session.Document()
		if !ok {
			return fmt.Errorf("%w: budget has no document", ErrInvalidTransition)
		}
		pages = budget.Paginate(doc, s.cfg.ItemsPerPage)
		return nil
	})
	return pages, err
}

// Render prints the current document with the generator registered for format.
func (s *BudgetService) Render(ctx context.Context, id uuid.UUID, format string) (*RenderResult, error) {
	generator, ok := s.generators[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidInput, format)
	}

	var (
		printable model.PrintableBudget
		category  model.Category
	)
	err := s.with(id, func(e *sessionEntry) error {
		doc, ok := e.session.Document()
		if !ok {
			return fmt.Errorf("%w: budget has no document", ErrInvalidTransition)
		}
		printable = budget.Printable(doc, s.cfg.ItemsPerPage, s.cfg.Location)
		category = e.category
		return nil
	})
	if err != nil {
		return nil, err
	}

	content, err := generator.Generate(printable)
	if err != nil {
		s.log.Error().Err(err).Str("budget_id", id.String()).Str("format", format).Msg("render budget failed")
		return nil, err
	}

	return &RenderResult{
		FileName:    buildFileName(id, category, printable.Document, generator.Extension()),
		ContentType: generator.ContentType(),
		Content:     content,
	}, nil
}

// Sweep drops expired sessions and reports how many were removed.
func (s *BudgetService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked(s.now())
}

// RunJanitor sweeps every interval until ctx is done.
func (s *BudgetService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug().Int("evicted", n).Msg("expired budget sessions removed")
			}
		}
	}
}

func (s *BudgetService) with(id uuid.UUID, fn func(e *sessionEntry) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)
	entry, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	entry.touched = now
	return fn(entry)
}

func (s *BudgetService) evictLocked(now time.Time) int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}
	evicted := 0
	for id, entry := range s.sessions {
		if now.Sub(entry.touched) > s.cfg.SessionTTL {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func normalizeSource(src budget.Source) (budget.Source, error) {
	if src.Category == "" {
		switch {
		case src.Hourly != nil:
			src.Category = model.CategoryHourly
		case src.Estimate != nil:
			src.Category = src.Estimate.ProjectType
		}
	}
	if src.Category != "" {
		category, ok := model.ParseCategory(string(src.Category))
		if !ok {
			return budget.Source{}, fmt.Errorf("%w: %q", ErrUnknownCategory, src.Category)
		}
		src.Category = category
	}
	if err := src.Validate(); err != nil {
		return budget.Source{}, mapBudgetError(err)
	}
	return src, nil
}

func view(id uuid.UUID, session *budget.Session) *BudgetView {
	v := &BudgetView{ID: id, State: session.State()}
	if doc, ok := session.Document(); ok {
		v.Document = &doc
	}
	return v
}

func mapBudgetError(err error) error {
	switch {
	case errors.Is(err, budget.ErrInvalidField), errors.Is(err, budget.ErrInvalidSource):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, budget.ErrInvalidState):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	default:
		return err
	}
}

func buildFileName(id uuid.UUID, category model.Category, doc model.BudgetDocument, ext string) string {
	client := sanitizeFileName(doc.ClientName)
	if client == "" || doc.ClientName == budget.DefaultClientName {
		client = id.String()[:8]
	}
	if category == "" {
		category = doc.Category
	}
	return fmt.Sprintf("presupuesto-%s-%s.%s", category, client, ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r+'a'-'A')
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
