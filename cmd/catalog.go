package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotui/internal/catalog"
	"github.com/desertthunder/spotui/internal/formatter"
	"github.com/desertthunder/spotui/internal/models"
	"github.com/desertthunder/spotui/internal/shared"
)

// CatalogHome prints the home feed for the stored user.
func (r *Runner) CatalogHome(ctx context.Context, cmd *cli.Command) error {
	app, err := r.state(ctx)
	if err != nil {
		return err
	}

	feed, err := app.Catalog.Home(ctx, app.DisplayName())
	if err != nil {
		return fmt.Errorf("failed to load home: %w", err)
	}
	if cmd.Bool("json") {
		return r.writeJSON(feed, true)
	}

	r.writePlainHeader("Home")
	for _, s := range feed.Shortcuts {
		r.writePlain("  %s\n", s.Title)
	}
	for _, section := range feed.Sections {
		r.writePlainln("%s", section.Title)
		for _, p := range section.Items {
			if p.Description != "" {
				r.writePlain("  %s - %s\n", p.Title, p.Description)
				continue
			}
			r.writePlain("  %s\n", p.Title)
		}
	}
	return nil
}

// CatalogBrowse prints the browse categories.
func (r *Runner) CatalogBrowse(ctx context.Context, cmd *cli.Command) error {
	browse, err := r.catalog.BrowseCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	if cmd.Bool("json") {
		return r.writeJSON(browse, true)
	}

	categories := func(title string, cats []models.Category) {
		r.writePlainln("%s", title)
		for _, c := range cats {
			r.writePlain("  %-24s %s\n", c.Title, c.Color)
		}
	}

	r.writePlainHeader("Browse")
	categories("Start browsing", browse.Start)
	r.writePlainln("Discover something new")
	for _, p := range browse.Discover {
		r.writePlain("  %s\n", p.Title)
	}
	categories("Browse all", browse.BrowseAll)
	return nil
}

// CatalogLibrary prints the library, optionally filtered by kind.
func (r *Runner) CatalogLibrary(ctx context.Context, cmd *cli.Command) error {
	var kind models.LibraryKind
	if filter := strings.TrimSpace(cmd.String("filter")); filter != "" {
		for _, k := range models.LibraryKinds {
			if strings.EqualFold(string(k), filter) || strings.EqualFold(strings.TrimSuffix(string(k), "s"), filter) {
				kind = k
			}
		}
		if kind == "" {
			return fmt.Errorf("%w: library filter %q", shared.ErrInvalidFlag, filter)
		}
	}

	items, err := r.catalog.Library(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}
	if cmd.Bool("json") {
		return r.writeJSON(items, true)
	}

	title := "Your Library"
	if kind != "" {
		title += " • " + string(kind)
	}
	r.writePlainHeader(title)
	if len(items) == 0 {
		return r.writePlain("Nothing here yet\n")
	}
	for _, item := range items {
		pin := " "
		if item.Pinned {
			pin = "*"
		}
		r.writePlain("%s %-20s %s\n", pin, item.Title, catalog.Describe(item, ""))
	}
	return nil
}

// CatalogPlaylists lists the playlists.
func (r *Runner) CatalogPlaylists(ctx context.Context, cmd *cli.Command) error {
	playlists, err := r.catalog.Playlists(ctx)
	if err != nil {
		return fmt.Errorf("failed to load playlists: %w", err)
	}
	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	r.writePlainHeader("Your Playlists")
	for _, p := range playlists {
		r.writePlain("%-4s %-18s %s songs • %s\n", p.ID, p.Title, humanize.Comma(int64(p.SongCount)), p.Owner)
	}
	return nil
}

// CatalogSearch prints entries matching the query, best first.
func (r *Runner) CatalogSearch(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(cmd.StringArg("query"))
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	results, err := r.catalog.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if cmd.Bool("json") {
		if results == nil {
			results = []catalog.Result{}
		}
		return r.writeJSON(results, true)
	}

	if len(results) == 0 {
		return r.writePlain("No results for %q\n", query)
	}
	for _, res := range results {
		line := fmt.Sprintf("%-9s %s", res.Kind, res.Title)
		if res.Subtitle != "" {
			line += " • " + res.Subtitle
		}
		r.writePlain("%s\n", line)
	}
	return nil
}

// CatalogExport prints a playlist in the requested format, or writes it to --output.
func (r *Runner) CatalogExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	id := cmd.String("id")
	r.logger.Info("exporting playlist", "id", id, "format", format)

	export, err := r.catalog.Playlist(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to export playlist: %w", err)
	}

	output := cmd.String("output")
	if output == "" {
		data, err := formatter.Export(export, format)
		if err != nil {
			return err
		}
		if _, err := r.output.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	switch format {
	case formatter.CSV:
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Tracks written to %s\n", result.TracksFile)
		r.writePlain("✓ Metadata written to %s\n", result.MetadataFile)
	case formatter.Markdown:
		path, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Markdown written to %s\n", path)
	case formatter.Text:
		path, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Text written to %s\n", path)
	case formatter.JSON:
		data, err := formatter.Export(export, format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write JSON file: %w", err)
		}
		r.writePlain("✓ JSON written to %s\n", output)
	}
	return nil
}
