package domain

// CommandType classifies what the user typed at the prompt.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandHelp
	CommandMakeRecipe     // mkrec
	CommandAddRecipe      // add {recipe}
	CommandAddItem        // add -i {amount} {unit} {name}
	CommandRemoveRecipe   // rm {recipe}
	CommandRemoveAmount   // rm -i {ingredient} {amount}
	CommandListPlan       // ls
	CommandListCatalog    // ls -a
	CommandShowList       // ls -s
	CommandGenerate       // g
	CommandFindIngredient // find {ingredient} in {recipe}
	CommandQuit
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandMakeRecipe:
		return "make_recipe"
	case CommandAddRecipe:
		return "add_recipe"
	case CommandAddItem:
		return "add_item"
	case CommandRemoveRecipe:
		return "remove_recipe"
	case CommandRemoveAmount:
		return "remove_amount"
	case CommandListPlan:
		return "list_plan"
	case CommandListCatalog:
		return "list_catalog"
	case CommandShowList:
		return "show_list"
	case CommandGenerate:
		return "generate"
	case CommandFindIngredient:
		return "find_ingredient"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed user command.
type Command struct {
	Type CommandType
	// Args holds command-specific operands:
	//   add/rm:   [recipe]
	//   add -i:   [ingredient line]
	//   rm -i:    [ingredient, amount]
	//   find:     [ingredient, recipe]
	//   unknown:  [raw input]
	Args []string
}

// Arg returns the i-th operand, or "" if absent.
func (c *Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}
