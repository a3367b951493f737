package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		expected Category
	}{
		{
			// "steam" must win over the "tea" substring it contains.
			name:     "steamed_dumplings_is_appetizer_not_drink",
			item:     "Steamed Dumplings",
			expected: Appetizers,
		},
		{
			name:     "steamed_bun_is_appetizer",
			item:     "Steamed Pork Bun",
			expected: Appetizers,
		},
		{
			name:     "crab_rangoon_is_appetizer",
			item:     "Crab Rangoon (6 pc)",
			expected: Appetizers,
		},
		{
			name:     "spring_roll_is_appetizer",
			item:     "Vegetable Spring Roll",
			expected: Appetizers,
		},
		{
			name:     "beef_ramen_is_noodle_dish",
			item:     "Beef Ramen",
			expected: NoodleDishes,
		},
		{
			name:     "garlic_noodles_is_noodle_dish",
			item:     "Garlic Noodles",
			expected: NoodleDishes,
		},
		{
			name:     "fried_rice_is_rice_dish",
			item:     "House Fried Rice",
			expected: RiceDishes,
		},
		{
			name:     "lunch_combo_is_combo",
			item:     "Lunch Combo A",
			expected: CombosSpecials,
		},
		{
			name:     "chef_special_is_combo",
			item:     "Chef's Special",
			expected: CombosSpecials,
		},
		{
			name:     "iced_tea_is_drink",
			item:     "Thai Iced Tea",
			expected: Drinks,
		},
		{
			name:     "lemonade_is_drink",
			item:     "Fresh Lemonade",
			expected: Drinks,
		},
		{
			name:     "starry_is_drink",
			item:     "Starry",
			expected: Drinks,
		},
		{
			name:     "unmatched_name_falls_back_to_other_entrees",
			item:     "Kung Pao Chicken",
			expected: OtherEntrees,
		},
		{
			name:     "matching_is_case_insensitive",
			item:     "BEEF RAMEN",
			expected: NoodleDishes,
		},
		{
			name:     "empty_name_is_other_entrees",
			item:     "",
			expected: OtherEntrees,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Item(tt.item))
		})
	}
}

func TestItemDeterministic(t *testing.T) {
	// Same input, same category, every time.
	for i := 0; i < 10; i++ {
		assert.Equal(t, Appetizers, Item("Steamed Dumplings"))
	}
}

func TestRuleOrderShadowsDrinkKeywords(t *testing.T) {
	// A name containing both an appetizer keyword and a drink keyword
	// resolves by precedence, not by keyword position in the name.
	assert.Equal(t, Appetizers, Item("Green Tea Steamed Buns"))
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 6)
	assert.Equal(t, OtherEntrees, cats[len(cats)-1])
}
