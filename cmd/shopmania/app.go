package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/shopmania/internal/display"
	"github.com/hammamikhairi/shopmania/internal/domain"
	"github.com/hammamikhairi/shopmania/internal/engine"
	"github.com/hammamikhairi/shopmania/internal/ingredient"
	"github.com/hammamikhairi/shopmania/internal/logger"
	"github.com/hammamikhairi/shopmania/internal/shopping"
)

// screen is the output side of a front end. Both display.UI and
// display.Plain satisfy it.
type screen interface {
	Println(a ...any)
	PrintChat(text string)
	PrintHeading(text string)
	PrintEntry(text string)
	PrintHint(text string)
	PrintUrgent(text string)
	PrintTable(rendered string)
}

var (
	_ screen = (*display.UI)(nil)
	_ screen = (*display.Plain)(nil)
)

type cliApp struct {
	engine    *engine.Engine
	parser    domain.CommandParser
	log       *logger.Logger
	ui        screen
	sessionID string
	draft     *recipeDraft // non-nil while mkrec is collecting lines
}

// recipeDraft collects a new recipe one prompt line at a time.
type recipeDraft struct {
	name  string
	lines []string
}

func (a *cliApp) run(ctx context.Context, input <-chan string) {
	session, err := a.engine.StartSession(ctx)
	if err != nil {
		a.log.Error("starting session: %v", err)
		a.ui.PrintUrgent("Could not start a session.")
		return
	}
	a.sessionID = session.ID

	for {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case line, ok = <-input:
			if !ok {
				a.closeSession(ctx)
				return
			}
		}

		if a.draft != nil {
			a.continueDraft(ctx, line)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cmd, err := a.parser.Parse(ctx, line)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("command: %s (args=%q)", cmd.Type, cmd.Args)
		if quit := a.handleCommand(ctx, cmd); quit {
			return
		}
	}
}

// handleCommand dispatches one command. It reports whether the session
// should end.
func (a *cliApp) handleCommand(ctx context.Context, cmd *domain.Command) bool {
	switch cmd.Type {
	case domain.CommandHelp:
		a.showHelp()
	case domain.CommandMakeRecipe:
		a.startDraft()
	case domain.CommandAddRecipe:
		a.addRecipe(ctx, cmd.Arg(0))
	case domain.CommandAddItem:
		a.addItem(ctx, cmd.Arg(0))
	case domain.CommandRemoveRecipe:
		a.removeRecipe(ctx, cmd.Arg(0))
	case domain.CommandRemoveAmount:
		a.removeAmount(ctx, cmd)
	case domain.CommandListPlan:
		a.showPlan(ctx)
	case domain.CommandListCatalog:
		a.showCatalog(ctx)
	case domain.CommandShowList:
		a.showList(ctx)
	case domain.CommandGenerate:
		a.generate(ctx)
	case domain.CommandFindIngredient:
		a.findIngredient(ctx, cmd.Arg(0), cmd.Arg(1))
	case domain.CommandQuit:
		a.closeSession(ctx)
		a.ui.PrintChat("Bye.")
		return true
	default:
		a.ui.Println("Incorrect input, please try again")
	}
	return false
}

// ── mkrec ────────────────────────────────────────────────────────

func (a *cliApp) startDraft() {
	a.draft = &recipeDraft{}
	a.ui.PrintChat("Please enter the recipe name:")
}

// continueDraft feeds one line to the recipe being written. The first
// non-empty line is the name; after that every line is an ingredient until
// an empty line finishes the recipe.
func (a *cliApp) continueDraft(ctx context.Context, line string) {
	d := a.draft
	line = strings.TrimSpace(line)

	if d.name == "" {
		if line == "" {
			a.ui.PrintUrgent("A recipe needs a name.")
			a.ui.PrintChat("Please enter the recipe name:")
			return
		}
		d.name = line
		a.ui.PrintChat("Please enter an ingredient (empty line to finish):")
		return
	}

	if line != "" {
		if _, err := ingredient.Parse(line); err != nil {
			a.ui.PrintUrgent(fmt.Sprintf("Malformed ingredient %q: use \"amount unit name\".", line))
		} else {
			d.lines = append(d.lines, line)
		}
		a.ui.PrintChat("Please enter an ingredient:")
		return
	}

	a.draft = nil
	r, err := a.engine.CreateRecipe(ctx, d.name, d.lines)
	if err != nil {
		a.fail("creating recipe", err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Added %s to the cook book.", r.Name))
}

// ── Meal plan ────────────────────────────────────────────────────

func (a *cliApp) addRecipe(ctx context.Context, name string) {
	r, err := a.engine.AddToPlan(ctx, a.sessionID, name)
	if errors.Is(err, domain.ErrNotFound) {
		a.ui.Println("")
		a.ui.PrintUrgent("Recipe does not exist in the cook book.")
		a.ui.PrintHint("Use the mkrec command to create a new recipe.")
		a.ui.Println("")
		return
	}
	if err != nil {
		a.fail("adding recipe", err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Added %s to the meal plan.", r.Name))
}

func (a *cliApp) removeRecipe(ctx context.Context, name string) {
	removed, err := a.engine.RemoveFromPlan(ctx, a.sessionID, name)
	if err != nil {
		a.fail("removing recipe", err)
		return
	}
	if removed {
		a.ui.PrintChat(fmt.Sprintf("Removed %s from the meal plan.", name))
	}
}

func (a *cliApp) showPlan(ctx context.Context) {
	plan, err := a.engine.Plan(ctx, a.sessionID)
	if err != nil {
		a.fail("listing meal plan", err)
		return
	}
	if len(plan) == 0 {
		a.ui.Println("No recipe in meal plan yet.")
		return
	}
	a.ui.PrintHeading("Meal plan")
	for _, r := range plan {
		a.ui.PrintEntry(r.Name)
		a.ui.PrintHint("    " + ingredient.Encode(r.Ingredients))
	}
}

func (a *cliApp) showCatalog(ctx context.Context) {
	a.ui.PrintHeading("Cook book")
	for _, name := range a.engine.CatalogNames(ctx) {
		a.ui.PrintEntry(name)
	}
}

// ── Shopping list ────────────────────────────────────────────────

func (a *cliApp) generate(ctx context.Context) {
	list, err := a.engine.Generate(ctx, a.sessionID)
	if err != nil {
		a.fail("generating shopping list", err)
		return
	}
	a.printList(list)
}

func (a *cliApp) showList(ctx context.Context) {
	s, err := a.engine.Status(ctx, a.sessionID)
	if err != nil {
		a.fail("loading shopping list", err)
		return
	}
	if !s.Generated && len(s.List) == 0 {
		a.ui.PrintHint("No shopping list yet. Use g to generate one.")
		return
	}
	a.printList(shopping.List(s.List))
}

func (a *cliApp) printList(list shopping.List) {
	if list.Len() == 0 {
		a.ui.PrintHint("The shopping list is empty.")
		return
	}
	a.ui.PrintTable(display.Table(list))
}

func (a *cliApp) addItem(ctx context.Context, line string) {
	ing, err := ingredient.Parse(line)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Malformed ingredient %q: use \"add -i amount unit name\".", line))
		return
	}
	if err := a.engine.AddIngredient(ctx, a.sessionID, ing); err != nil {
		a.fail("adding item", err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("Added %s %s %s to the shopping list.", ingredient.FormatAmount(ing.Amount), ing.Unit, ing.Name))
}

func (a *cliApp) removeAmount(ctx context.Context, cmd *domain.Command) {
	name, raw := cmd.Arg(0), cmd.Arg(1)
	if name == "" || raw == "" {
		a.ui.PrintUrgent("Usage: rm -i {ingredient} {amount}")
		return
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Invalid amount %q.", raw))
		return
	}

	res, err := a.engine.RemoveIngredient(ctx, a.sessionID, name, amount)
	if err != nil {
		a.fail("removing item", err)
		return
	}

	switch res {
	case shopping.RemovalNone:
		a.ui.PrintHint(fmt.Sprintf("%s is not on the shopping list.", name))
	case shopping.RemovalDeleted:
		a.ui.PrintChat(fmt.Sprintf("Removed %s from the shopping list.", name))
	case shopping.RemovalPartial:
		list, err := a.engine.ShoppingList(ctx, a.sessionID)
		if err != nil {
			a.fail("loading shopping list", err)
			return
		}
		if left, ok := list.Get(name); ok {
			a.ui.PrintChat(fmt.Sprintf("%s left: %s %s.", name, ingredient.FormatAmount(left.Amount), left.Unit))
		}
	}
}

func (a *cliApp) findIngredient(ctx context.Context, query, recipeName string) {
	ing, err := a.engine.IngredientAmount(ctx, recipeName, query)
	if errors.Is(err, domain.ErrNotFound) {
		a.ui.PrintHint(fmt.Sprintf("No %s in %s.", query, recipeName))
		return
	}
	if err != nil {
		a.fail("finding ingredient", err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("%s needs %s %s %s.", recipeName, ingredient.FormatAmount(ing.Amount), ing.Unit, ing.Name))
}

// ── Misc ─────────────────────────────────────────────────────────

func (a *cliApp) closeSession(ctx context.Context) {
	if err := a.engine.Close(ctx, a.sessionID); err != nil {
		a.log.Warn("closing session %s: %v", a.sessionID, err)
	}
}

func (a *cliApp) fail(what string, err error) {
	a.log.Error("%s: %v", what, err)
	a.ui.PrintUrgent(fmt.Sprintf("Something went wrong %s: %v", what, err))
}

func (a *cliApp) showHelp() {
	help := [][2]string{
		{"h / help", "show this help"},
		{"mkrec", "create a recipe and add it to the cook book"},
		{"add {recipe}", "add a cook book recipe to the meal plan"},
		{"add -i {amount} {unit} {name}", "add an item to the shopping list"},
		{"rm {recipe}", "remove a recipe from the meal plan"},
		{"rm -i {ingredient} {amount}", "remove an amount from the shopping list"},
		{"ls", "list the recipes in the meal plan"},
		{"ls -a", "list every recipe in the cook book"},
		{"ls -s", "display the shopping list"},
		{"g", "generate the shopping list from the meal plan"},
		{"find {ingredient} in {recipe}", "show how much of an ingredient a recipe needs"},
		{"q / quit", "quit"},
	}
	a.ui.PrintHeading("Commands")
	for _, h := range help {
		a.ui.PrintHint(fmt.Sprintf("  %-31s %s", h[0], h[1]))
	}
}
