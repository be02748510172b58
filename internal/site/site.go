// internal/site/site.go
package site

import (
	_ "embed"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppr-ocean-ia/dcboard/internal/colormap"
	"github.com/ppr-ocean-ia/dcboard/internal/leaderboard"
	"github.com/ppr-ocean-ia/dcboard/internal/logging"
	"github.com/ppr-ocean-ia/dcboard/internal/results"
	"github.com/ppr-ocean-ia/dcboard/internal/util"
)

const (
	DefaultTitle     = "Data Challenge 2 Leaderboard (Probabilistic short-term forecasting of global ocean dynamics)"
	DefaultPageTitle = "Data Challenge 2 Leaderboard"
	DefaultBrand     = "Ocean & Climate Data Challenge"

	LeaderboardFile = "leaderboard.html"
	AboutFile       = "about.html"
	StylesFile      = "styles.css"
)

const aboutContent = `<h1 class="title">About</h1>
<p>Leaderboard des Data Challenges du PPR Océan et Climat</p>`

//go:embed styles.css
var defaultStyles []byte

// BuildError reports a problem with the inputs of a site build, such as a
// missing results file.
type BuildError struct {
	Msg string
}

func (e *BuildError) Error() string { return e.Msg }

func buildErrorf(format string, args ...any) error {
	return &BuildError{Msg: fmt.Sprintf(format, args...)}
}

// IsBuildError reports whether err is or wraps a *BuildError.
func IsBuildError(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}

// Options controls a site build. Zero values select the defaults.
type Options struct {
	OutputDir  string
	StylesPath string
	Title      string
	PageTitle  string
	Brand      string
	Report     leaderboard.Options
}

// RenderedSite lists the files produced by a build.
type RenderedSite struct {
	SiteDir         string
	LeaderboardHTML string
	AboutHTML       string
}

// RenderOptions extends Options with the inputs resolved by
// RenderSiteFromResults.
type RenderOptions struct {
	Options
	TemplateDir       string
	IncludeBenchmarks bool
	BenchmarksDir     string
}

// BuildSite renders the leaderboard and about pages for table into
// opts.OutputDir along with the stylesheet.
func BuildSite(table *results.Table, opts Options) (RenderedSite, error) {
	if opts.OutputDir == "" {
		return RenderedSite{}, buildErrorf("no output directory provided")
	}
	siteDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return RenderedSite{}, fmt.Errorf("unable to resolve output dir %s: %w", opts.OutputDir, err)
	}
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return RenderedSite{}, fmt.Errorf("unable to create output dir %s: %w", siteDir, err)
	}
	logging.LogEvent("[SITE] building site in %s", siteDir)

	if err := writeStyles(siteDir, opts.StylesPath); err != nil {
		return RenderedSite{}, err
	}

	content, err := LeaderboardContent(table, opts)
	if err != nil {
		return RenderedSite{}, err
	}
	leaderboardPage, err := renderPage(orDefault(opts.PageTitle, DefaultPageTitle), orDefault(opts.Brand, DefaultBrand), PageLeaderboard, content)
	if err != nil {
		return RenderedSite{}, fmt.Errorf("unable to render leaderboard page: %w", err)
	}
	aboutPage, err := renderPage("About", orDefault(opts.Brand, DefaultBrand), PageAbout, template.HTML(aboutContent))
	if err != nil {
		return RenderedSite{}, fmt.Errorf("unable to render about page: %w", err)
	}

	out := RenderedSite{
		SiteDir:         siteDir,
		LeaderboardHTML: filepath.Join(siteDir, LeaderboardFile),
		AboutHTML:       filepath.Join(siteDir, AboutFile),
	}
	if err := util.WriteFile(out.LeaderboardHTML, []byte(leaderboardPage)); err != nil {
		return RenderedSite{}, fmt.Errorf("unable to write %s: %w", out.LeaderboardHTML, err)
	}
	if err := util.WriteFile(out.AboutHTML, []byte(aboutPage)); err != nil {
		return RenderedSite{}, fmt.Errorf("unable to write %s: %w", out.AboutHTML, err)
	}
	logging.LogStage("site", "dir", siteDir, "records", table.Len())
	return out, nil
}

// LeaderboardContent renders the report items as leaderboard cards followed
// by the colour legend.
func LeaderboardContent(table *results.Table, opts Options) (template.HTML, error) {
	items, err := leaderboard.GenerateReportItems(table, opts.Report)
	if err != nil {
		return "", err
	}

	parts := []string{`<h1 class="title">` + template.HTMLEscapeString(orDefault(opts.Title, DefaultTitle)) + `</h1>`}
	var card []string
	flush := func() {
		if len(card) == 0 {
			return
		}
		parts = append(parts, `<div class="leaderboard-card">`)
		parts = append(parts, card...)
		parts = append(parts, `</div>`)
		card = nil
	}

	for _, item := range items {
		switch item.Kind {
		case leaderboard.ItemMarkdown:
			if strings.Contains(item.Markdown, leaderboard.SectionSpacer) {
				flush()
				continue
			}
			card = append(card, string(markdownToHTML(item.Markdown)))
		case leaderboard.ItemTable:
			html, err := renderTable(item.Table)
			if err != nil {
				return "", fmt.Errorf("unable to render table %s: %w", item.Section.Title(), err)
			}
			card = append(card, `<div class="table-responsive">`, string(html), `</div>`)
		}
	}
	flush()

	legend, err := colormap.LegendPNG(opts.Report.ColorMap)
	if err != nil {
		return "", fmt.Errorf("unable to render legend: %w", err)
	}
	parts = append(parts, legendHTML(legend))
	return template.HTML(strings.Join(parts, "\n")), nil
}

func legendHTML(png []byte) string {
	return `<div style="display: flex; justify-content: center; margin-bottom: 50px;">` + "\n" +
		`<div class="legend-container">` + "\n" +
		`<img src="data:image/png;base64,` + base64.StdEncoding.EncodeToString(png) + `" style="max-width: 100%; height: auto;" />` + "\n" +
		`</div></div>`
}

func writeStyles(siteDir, stylesPath string) error {
	data := defaultStyles
	if stylesPath != "" {
		custom, err := os.ReadFile(stylesPath)
		switch {
		case err == nil:
			data = custom
		case errors.Is(err, os.ErrNotExist):
			logging.LogEvent("[SITE] warning: %s not found, using built-in stylesheet", stylesPath)
		default:
			return fmt.Errorf("unable to read stylesheet %s: %w", stylesPath, err)
		}
	}
	dst := filepath.Join(siteDir, StylesFile)
	if err := util.WriteFile(dst, data); err != nil {
		return fmt.Errorf("unable to write %s: %w", dst, err)
	}
	return nil
}

// RenderSiteFromResults builds the site from an explicit list of result
// files, optionally adding the bundled benchmark results.
func RenderSiteFromResults(files []string, opts RenderOptions) (RenderedSite, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return RenderedSite{}, fmt.Errorf("unable to resolve %s: %w", f, err)
		}
		paths = append(paths, abs)
	}

	if opts.IncludeBenchmarks {
		extra, err := benchmarkFiles(opts.BenchmarksDir, paths)
		if err != nil {
			return RenderedSite{}, err
		}
		paths = append(paths, extra...)
	}

	if len(paths) == 0 {
		return RenderedSite{}, buildErrorf("no results files provided")
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return RenderedSite{}, buildErrorf("results file not found: %s", p)
		}
	}

	table, err := results.LoadFiles(paths)
	if err != nil {
		return RenderedSite{}, err
	}

	build := opts.Options
	if build.StylesPath == "" && opts.TemplateDir != "" {
		build.StylesPath = filepath.Join(opts.TemplateDir, StylesFile)
	}
	return BuildSite(table, build)
}

// RenderSiteFromResultsDir builds the site from the result files of dir.
func RenderSiteFromResultsDir(dir string, opts RenderOptions) (RenderedSite, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return RenderedSite{}, buildErrorf("results directory not found: %s", dir)
	}
	files, err := results.SelectResultFiles(dir)
	if err != nil {
		return RenderedSite{}, fmt.Errorf("unable to list results in %s: %w", dir, err)
	}
	return RenderSiteFromResults(files, opts)
}

// benchmarkFiles returns the results_*.json files of dir whose base name is
// not already among existing.
func benchmarkFiles(dir string, existing []string) ([]string, error) {
	if dir == "" {
		logging.LogEvent("[SITE] warning: benchmarks requested but no benchmarks directory configured")
		return nil, nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logging.LogEvent("[SITE] warning: benchmarks directory %s not found", dir)
		return nil, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "results_*.json"))
	if err != nil {
		return nil, fmt.Errorf("unable to list benchmarks in %s: %w", dir, err)
	}
	names := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		names[filepath.Base(p)] = struct{}{}
	}
	var out []string
	for _, m := range matches {
		if _, dup := names[filepath.Base(m)]; dup {
			continue
		}
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve %s: %w", m, err)
		}
		out = append(out, abs)
	}
	return out, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
