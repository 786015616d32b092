// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/export"
)

func newRecipesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List or export saved recipes",
		Long: `Saved recipes belong to a session. Pass the session ID printed by
"cookbot ask" or shown in the TUI.`,
	}
	cmd.AddCommand(newRecipesListCmd(e), newRecipesExportCmd(e))
	return cmd
}

func newRecipesListCmd(e *env) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved recipes",
		Example: `  cookbot recipes list --session session_1712345678901_abc123xyz`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				return usageErrorf("--session is required")
			}
			list, err := e.client.ListSavedRecipes(cmd.Context(), sessionID)
			if err != nil {
				return err
			}
			printRecipeList(newPrinter(cmd.OutOrStdout()), list.Recipes)
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionID, "session", "", "session whose recipes to list")
	return cmd
}

func newRecipesExportCmd(e *env) *cobra.Command {
	var (
		sessionID string
		format    string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved recipes as Markdown or JSON",
		Example: `  cookbot recipes export --session session_1712345678901_abc123xyz
  cookbot recipes export --session session_1712345678901_abc123xyz --format json --out recipes.json
  cookbot recipes export --session session_1712345678901_abc123xyz --out -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				return usageErrorf("--session is required")
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return &UsageError{Message: err.Error()}
			}

			list, err := e.client.ListSavedRecipes(cmd.Context(), sessionID)
			if err != nil {
				return err
			}

			opts := export.DefaultOptions()
			opts.SessionID = sessionID
			exporter, err := export.New(f, opts)
			if err != nil {
				return err
			}

			switch outPath {
			case "-":
				return export.Write(cmd.OutOrStdout(), list.Recipes, exporter)
			case "":
				path, err := export.ExportToFile(list.Recipes, exporter, opts)
				if err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout()).Success(fmt.Sprintf("Exported %d recipe(s) to %s", len(list.Recipes), path))
			default:
				if err := export.ExportToPath(list.Recipes, exporter, outPath); err != nil {
					return err
				}
				newPrinter(cmd.OutOrStdout()).Success(fmt.Sprintf("Exported %d recipe(s) to %s", len(list.Recipes), outPath))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&sessionID, "session", "", "session whose recipes to export")
	f.StringVar(&format, "format", "md", "output format: md or json")
	f.StringVarP(&outPath, "out", "o", "", `output file ("-" for stdout; default generated name)`)
	return cmd
}

// printRecipeList prints one line per saved recipe.
func printRecipeList(p *printer, recipes []api.SavedRecipe) {
	if len(recipes) == 0 {
		p.Muted("No saved recipes yet.")
		return
	}

	p.Title(fmt.Sprintf("Saved recipes (%d)", len(recipes)))
	for _, r := range recipes {
		var meta []string
		if at, ok := r.SavedTime(); ok {
			meta = append(meta, at.Local().Format("2006-01-02 15:04"))
		}
		if r.Recipe.Servings != "" {
			meta = append(meta, "serves "+string(r.Recipe.Servings))
		}
		line := "  " + r.Recipe.Title
		if len(meta) > 0 {
			line += "  " + p.muted.Render("("+strings.Join(meta, ", ")+")")
		}
		p.Line(line)
		p.Muted("    id: " + r.RecipeID)
	}
}
