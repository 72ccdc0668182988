// Package engine runs the user's operations against one session: picking
// recipes into a meal plan, generating a shopping list from it, and editing
// that list afterwards.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hammamikhairi/shopmania/internal/domain"
	"github.com/hammamikhairi/shopmania/internal/logger"
	"github.com/hammamikhairi/shopmania/internal/recipe"
	"github.com/hammamikhairi/shopmania/internal/shopping"
)

// Option configures the engine.
type Option func(*Engine)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine owns the recipe catalog and drives sessions held in the store.
// Every operation runs under one mutex: the merge-by-name edits are
// read-modify-write and must not interleave.
type Engine struct {
	mu      sync.Mutex
	catalog *recipe.Collection
	store   domain.SessionStore
	log     *logger.Logger
	now     func() time.Time
}

// New creates an engine with the given dependencies and options.
func New(catalog *recipe.Collection, store domain.SessionStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		store:   store,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ── Catalog ──────────────────────────────────────────────────────

// CatalogNames returns the names of every catalog recipe, in order.
func (e *Engine) CatalogNames(ctx context.Context) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Names()
}

// CatalogRecipe returns the catalog recipe whose name matches, ignoring case.
func (e *Engine) CatalogRecipe(ctx context.Context, name string) (domain.Recipe, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.findCatalog(name)
}

// CreateRecipe builds a recipe from interactively collected lines and adds
// it to the end of the catalog.
func (e *Engine) CreateRecipe(ctx context.Context, name string, lines []string) (domain.Recipe, error) {
	r, err := recipe.Build(name, lines)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("building recipe: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.catalog.Add(r)
	e.log.Info("added recipe %q to catalog (%d ingredients)", r.Name, len(r.Ingredients))
	return r, nil
}

// IngredientAmount looks up how much of an ingredient a catalog recipe
// needs. Both the recipe name and the ingredient query ignore case; the
// ingredient matches on substring.
func (e *Engine) IngredientAmount(ctx context.Context, recipeName, query string) (domain.Ingredient, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.findCatalog(recipeName)
	if err != nil {
		return domain.Ingredient{}, err
	}
	ing, ok := recipe.IngredientAmount(query, r)
	if !ok {
		return domain.Ingredient{}, fmt.Errorf("ingredient %q in %q: %w", query, r.Name, domain.ErrNotFound)
	}
	return ing, nil
}

func (e *Engine) findCatalog(name string) (domain.Recipe, error) {
	r, ok := e.catalog.FindFunc(func(n string) bool { return recipe.EqualFold(n, name) })
	if !ok {
		e.log.Debug("recipe not in catalog: %q", name)
		return domain.Recipe{}, fmt.Errorf("recipe %q: %w", name, domain.ErrNotFound)
	}
	return r, nil
}

// ── Sessions ─────────────────────────────────────────────────────

// StartSession creates an empty session: no planned recipes, no list.
func (e *Engine) StartSession(ctx context.Context) (*domain.Session, error) {
	now := e.now()
	session := &domain.Session{
		ID:        generateID(),
		Status:    domain.SessionActive,
		StartedAt: now,
		UpdatedAt: now,
	}

	if err := e.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	e.log.Info("started session %s", session.ID)
	return session, nil
}

// Status returns the full session state.
func (e *Engine) Status(ctx context.Context, sessionID string) (*domain.Session, error) {
	return e.store.Load(ctx, sessionID)
}

// Close marks a session as closed.
func (e *Engine) Close(ctx context.Context, sessionID string) error {
	return e.update(ctx, sessionID, func(s *domain.Session) error {
		s.Status = domain.SessionClosed
		e.log.Info("session %s closed", sessionID)
		return nil
	})
}

// ── Meal plan ────────────────────────────────────────────────────

// AddToPlan finds a catalog recipe by name, ignoring case, and appends it to
// the session's meal plan. The same recipe may be planned more than once.
func (e *Engine) AddToPlan(ctx context.Context, sessionID, name string) (domain.Recipe, error) {
	var added domain.Recipe
	err := e.update(ctx, sessionID, func(s *domain.Session) error {
		r, err := e.findCatalog(name)
		if err != nil {
			return err
		}
		s.Plan = append(s.Plan, r)
		added = r
		e.log.Debug("session %s planned %q (%d recipes)", sessionID, r.Name, len(s.Plan))
		return nil
	})
	return added, err
}

// RemoveFromPlan drops the first planned recipe whose name matches exactly.
// It reports whether one was removed; an absent name is not an error.
func (e *Engine) RemoveFromPlan(ctx context.Context, sessionID, name string) (bool, error) {
	var removed bool
	err := e.update(ctx, sessionID, func(s *domain.Session) error {
		plan := recipe.NewCollection(s.Plan...)
		removed = plan.Remove(name)
		s.Plan = plan.All()
		e.log.Debug("session %s remove %q from plan: removed=%v", sessionID, name, removed)
		return nil
	})
	return removed, err
}

// Plan returns the session's planned recipes in order.
func (e *Engine) Plan(ctx context.Context, sessionID string) ([]domain.Recipe, error) {
	s, err := e.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Plan, nil
}

// ── Shopping list ────────────────────────────────────────────────

// Generate rebuilds the session's shopping list from its meal plan,
// discarding any edits made to the previous list, and returns it.
func (e *Engine) Generate(ctx context.Context, sessionID string) (shopping.List, error) {
	var list shopping.List
	err := e.update(ctx, sessionID, func(s *domain.Session) error {
		list = shopping.Aggregate(s.Plan)
		s.List = list.Clone()
		s.Generated = true
		e.log.Info("session %s generated list: %d items from %d recipes", sessionID, len(list), len(s.Plan))
		return nil
	})
	return list, err
}

// ShoppingList returns the session's held shopping list without
// regenerating it.
func (e *Engine) ShoppingList(ctx context.Context, sessionID string) (shopping.List, error) {
	s, err := e.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return shopping.List(s.List), nil
}

// AddIngredient merges one extra item into the held shopping list.
func (e *Engine) AddIngredient(ctx context.Context, sessionID string, ing domain.Ingredient) error {
	return e.update(ctx, sessionID, func(s *domain.Session) error {
		list := shopping.List(s.List)
		list.Add(ing)
		s.List = list
		e.log.Debug("session %s added %v %s %q to list", sessionID, ing.Amount, ing.Unit, ing.Name)
		return nil
	})
}

// RemoveIngredient takes amount of the named item off the held shopping
// list. The name must match exactly.
func (e *Engine) RemoveIngredient(ctx context.Context, sessionID, name string, amount float64) (shopping.Removal, error) {
	var res shopping.Removal
	err := e.update(ctx, sessionID, func(s *domain.Session) error {
		list := shopping.List(s.List)
		res = list.RemoveAmount(name, amount)
		s.List = list
		e.log.Debug("session %s remove %v of %q from list: %s", sessionID, amount, name, res)
		return nil
	})
	return res, err
}

// ── Helpers ──────────────────────────────────────────────────────

func (e *Engine) load(ctx context.Context, sessionID string) (*domain.Session, error) {
	s, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return s, nil
}

// update loads an active session, applies fn and saves it, all under the
// engine lock. Nothing is saved if fn fails.
func (e *Engine) update(ctx context.Context, sessionID string, fn func(*domain.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if s.Status != domain.SessionActive {
		return domain.ErrSessionNotActive
	}

	if err := fn(s); err != nil {
		return err
	}

	s.UpdatedAt = e.now()
	if err := e.store.Save(ctx, s); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
