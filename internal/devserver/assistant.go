// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package devserver

import (
	"context"
	"strings"

	"github.com/jeranaias/cookbot-tui/internal/model"
)

// Reply is what the assistant answers with. Recipe is non-nil for recipe
// answers, in which case Text is ignored.
type Reply struct {
	Text   string
	Recipe *model.Recipe
}

// Assistant produces replies to chat messages.
type Assistant interface {
	Reply(ctx context.Context, history []model.Message, message string) (Reply, error)
}

// FallbackReply is used when no canned answer matches.
const FallbackReply = "I'm CookBot, your digital sous chef! Ask me for a recipe, " +
	"ingredient substitutions, or quick meal ideas and I'll help you get cooking."

// cannedRule answers messages containing any of its keywords.
type cannedRule struct {
	keywords []string
	reply    Reply
}

// CannedAssistant answers from a fixed table of cooking replies. The first
// rule with a keyword contained in the message wins.
type CannedAssistant struct {
	rules []cannedRule
}

// NewCannedAssistant returns the built-in assistant.
func NewCannedAssistant() *CannedAssistant {
	return &CannedAssistant{rules: cannedRules()}
}

// Reply implements Assistant.
func (a *CannedAssistant) Reply(ctx context.Context, history []model.Message, message string) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}

	text := strings.ToLower(message)
	for _, rule := range a.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return Reply{Text: rule.reply.Text, Recipe: rule.reply.Recipe.Clone()}, nil
			}
		}
	}

	if len(history) > 0 {
		return Reply{Text: "Tell me what ingredients you have on hand and I'll suggest something to make."}, nil
	}
	return Reply{Text: FallbackReply}, nil
}

func cannedRules() []cannedRule {
	return []cannedRule{
		{
			keywords: []string{"substitute", "instead of", "replace"},
			reply: Reply{Text: "For each egg in baking, try 1 tablespoon ground flaxseed mixed " +
				"with 3 tablespoons water, 1/4 cup unsweetened applesauce, or half a mashed banana. " +
				"Flax works best in breads and muffins; applesauce and banana suit cakes and brownies."},
		},
		{
			keywords: []string{"dinner ideas", "ideas"},
			reply: Reply{Text: "Quick dinners for two: garlic butter shrimp with rice, " +
				"sheet-pan sausage and vegetables, chicken quesadillas, or a big pasta primavera. " +
				"Ask me for any of these and I'll give you the full recipe."},
		},
		{
			keywords: []string{"chicken", "rice"},
			reply: Reply{Recipe: &model.Recipe{
				Title:       "Chicken Fried Rice",
				Description: "A one-pan dinner that turns leftover rice into something special.",
				PrepTime:    "10 minutes",
				CookTime:    "15 minutes",
				Servings:    "2",
				Ingredients: []string{
					"2 cups cooked rice, chilled",
					"1 chicken breast, diced",
					"2 eggs, beaten",
					"1 cup frozen peas and carrots",
					"3 green onions, sliced",
					"2 tbsp soy sauce",
					"1 tbsp vegetable oil",
				},
				Instructions: []string{
					"Heat the oil in a large pan over medium-high heat.",
					"Cook the chicken until golden, about 6 minutes, then push it to one side.",
					"Scramble the eggs in the empty side of the pan.",
					"Add the rice and vegetables and stir-fry for 5 minutes.",
					"Season with soy sauce, toss with green onions, and serve.",
				},
			}},
		},
		{
			keywords: []string{"chocolate", "cake"},
			reply: Reply{Recipe: &model.Recipe{
				Title:       "One-Bowl Chocolate Cake",
				Description: "Moist, rich and made in a single bowl.",
				PrepTime:    "15 minutes",
				CookTime:    "35 minutes",
				Servings:    "8",
				Ingredients: []string{
					"1 3/4 cups all-purpose flour",
					"2 cups sugar",
					"3/4 cup cocoa powder",
					"2 tsp baking soda",
					"1 tsp salt",
					"2 eggs",
					"1 cup buttermilk",
					"1/2 cup vegetable oil",
					"1 cup hot coffee",
				},
				Instructions: []string{
					"Heat the oven to 350F and grease two 9-inch pans.",
					"Whisk the dry ingredients together in a large bowl.",
					"Beat in the eggs, buttermilk and oil until smooth.",
					"Stir in the hot coffee; the batter will be thin.",
					"Bake for 30 to 35 minutes and cool before frosting.",
				},
			}},
		},
		{
			keywords: []string{"pasta", "noodle"},
			reply: Reply{Recipe: &model.Recipe{
				Title:       "Fresh Egg Pasta",
				Description: "Silky homemade pasta with just flour and eggs.",
				PrepTime:    "45 minutes",
				CookTime:    "3 minutes",
				Servings:    "4",
				Ingredients: []string{
					"2 cups 00 or all-purpose flour",
					"3 large eggs",
					"1 pinch salt",
					"1 tsp olive oil",
				},
				Instructions: []string{
					"Mound the flour on a board and make a well in the center.",
					"Add the eggs, salt and oil to the well and whisk with a fork.",
					"Gradually draw in the flour, then knead for 8 to 10 minutes.",
					"Wrap and rest the dough for 30 minutes.",
					"Roll thin, cut into ribbons and boil for 2 to 3 minutes.",
				},
			}},
		},
		{
			keywords: []string{"vegetarian", "vegan", "veggie"},
			reply: Reply{Recipe: &model.Recipe{
				Title:       "20-Minute Chickpea Curry",
				Description: "A warming vegetarian curry from pantry staples.",
				PrepTime:    "5 minutes",
				CookTime:    "15 minutes",
				Servings:    "4",
				Ingredients: []string{
					"1 onion, chopped",
					"2 cloves garlic, minced",
					"2 tbsp curry paste",
					"2 cans chickpeas, drained",
					"1 can coconut milk",
					"2 handfuls spinach",
				},
				Instructions: []string{
					"Soften the onion and garlic in a little oil.",
					"Stir in the curry paste and cook for 1 minute.",
					"Add the chickpeas and coconut milk and simmer for 10 minutes.",
					"Wilt in the spinach and serve with rice or naan.",
				},
			}},
		},
		{
			keywords: []string{"pancake", "breakfast"},
			reply: Reply{Recipe: &model.Recipe{
				Title:       "Fluffy Pancakes",
				PrepTime:    "5 minutes",
				CookTime:    "15 minutes",
				Servings:    "4",
				Ingredients: []string{
					"1 1/2 cups flour",
					"3 1/2 tsp baking powder",
					"1 tbsp sugar",
					"1 1/4 cups milk",
					"1 egg",
					"3 tbsp melted butter",
				},
				Instructions: []string{
					"Whisk the dry ingredients in a bowl.",
					"Add the milk, egg and butter and mix until just combined.",
					"Cook 1/4 cup portions on a hot griddle until bubbles form, then flip.",
				},
			}},
		},
		{
			keywords: []string{"hello", "hi ", "hey"},
			reply:    Reply{Text: "Hello! What are we cooking today?"},
		},
	}
}
