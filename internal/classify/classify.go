// Package classify maps menu item names to their menu category.
//
// Classification is a fixed chain of case-insensitive substring rules
// evaluated in order, first match wins. The order is load-bearing:
// appetizer keywords are checked before drink keywords so that "steam"
// (as in "Steamed Dumplings") wins over the "tea" substring it contains.
package classify

import "strings"

// Category identifies a menu category. The set is closed: every item
// resolves to exactly one of the six values below.
type Category string

// Menu category constants.
const (
	Appetizers     Category = "Appetizers"
	NoodleDishes   Category = "Noodle Dishes"
	RiceDishes     Category = "Rice Dishes"
	CombosSpecials Category = "Combos/Specials"
	Drinks         Category = "Drinks"
	OtherEntrees   Category = "Other Entrees"
)

// rule pairs a category with the substrings that select it.
type rule struct {
	category Category
	keywords []string
}

// Rules are matched top to bottom. Appetizers stay first so "steam"
// shadows "tea"; drinks stay last for the same reason.
var rules = []rule{
	{Appetizers, []string{"dumpling", "wings", "tenders", "roll", "crab", "rangoon", "bun", "steam"}},
	{NoodleDishes, []string{"ramen", "noodle"}},
	{RiceDishes, []string{"rice"}},
	{CombosSpecials, []string{"combo", "special"}},
	{Drinks, []string{"tea", "lemonade", "soda", "coke", "pepsi", "starry", "crush"}},
}

// Item returns the category for an item display name. It is total and
// deterministic: names matching no rule fall back to OtherEntrees.
func Item(name string) Category {
	lower := strings.ToLower(name)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return OtherEntrees
}

// Categories returns the closed category set in rule order, with the
// default category last.
func Categories() []Category {
	return []Category{Appetizers, NoodleDishes, RiceDishes, CombosSpecials, Drinks, OtherEntrees}
}
