// Package conversation turns prompt lines into commands.
package conversation

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/hammamikhairi/shopmania/internal/domain"
	"github.com/hammamikhairi/shopmania/internal/logger"
)

// Compile-time interface check.
var _ domain.CommandParser = (*KeywordParser)(nil)

// KeywordParser matches prompt lines against the command grammar using
// keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex   *regexp.Regexp
	command domain.CommandType
	// args extracts operands from the submatches; nil means no operands.
	args func(m []string) []string
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(h|help|\?)$`), domain.CommandHelp, nil},
		{regexp.MustCompile(`(?i)^mkrec$`), domain.CommandMakeRecipe, nil},
		{regexp.MustCompile(`(?i)^add\s+-i\s+(.+)$`), domain.CommandAddItem, group(1)},
		{regexp.MustCompile(`(?i)^add(\s.*)?$`), domain.CommandAddRecipe, sanitised},
		// "rm -i {ingredient} {amount}": the last token is the amount and
		// everything between is the ingredient name.
		{regexp.MustCompile(`(?i)^rm\s+-i\s+(.+?)\s+(\S+)$`), domain.CommandRemoveAmount, group(1, 2)},
		{regexp.MustCompile(`(?i)^rm\s+-i\b.*$`), domain.CommandRemoveAmount, nil},
		{regexp.MustCompile(`(?i)^rm\s+(.+)$`), domain.CommandRemoveRecipe, group(1)},
		{regexp.MustCompile(`(?i)^ls$`), domain.CommandListPlan, nil},
		{regexp.MustCompile(`(?i)^ls\s+-a$`), domain.CommandListCatalog, nil},
		{regexp.MustCompile(`(?i)^ls\s+-s$`), domain.CommandShowList, nil},
		{regexp.MustCompile(`(?i)^(g|gen|generate)$`), domain.CommandGenerate, nil},
		{regexp.MustCompile(`(?i)^find\s+(.+?)\s+in\s+(.+)$`), domain.CommandFindIngredient, group(1, 2)},
		{regexp.MustCompile(`(?i)^(q|quit|exit)$`), domain.CommandQuit, nil},
	}
	return p
}

// Parse converts a prompt line into a command. Unrecognised input yields
// CommandUnknown carrying the trimmed line.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Command{Type: domain.CommandUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		cmd := &domain.Command{Type: rule.command}
		if rule.args != nil {
			cmd.Args = rule.args(m)
		}
		p.log.Debug("matched command: %s %q", cmd.Type, cmd.Args)
		return cmd, nil
	}

	p.log.Debug("no match, returning unknown command")
	return &domain.Command{Type: domain.CommandUnknown, Args: []string{trimmed}}, nil
}

// group returns an extractor for the given submatch indexes, trimmed.
func group(idx ...int) func(m []string) []string {
	return func(m []string) []string {
		out := make([]string, len(idx))
		for i, n := range idx {
			out[i] = strings.TrimSpace(m[n])
		}
		return out
	}
}

// sanitised extracts the recipe name of an "add" command after running it
// through Sanitise.
func sanitised(m []string) []string {
	return []string{Sanitise(m[1])}
}

// Sanitise normalises a typed recipe name: lower case, no digits, no
// leading or trailing space, single spaces between words. "add c4hocolate
// Brownies 5" therefore selects "chocolate brownies".
func Sanitise(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
