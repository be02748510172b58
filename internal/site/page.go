package site

import (
	"bytes"
	"html/template"
)

const (
	bootstrapCSS   = "https://cdn.jsdelivr.net/npm/bootswatch@5/dist/flatly/bootstrap.min.css"
	bootstrapJS    = "https://cdn.jsdelivr.net/npm/bootstrap@5/dist/js/bootstrap.bundle.min.js"
	bootstrapIcons = "https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css"
	repositoryURL  = "https://github.com/ppr-ocean-ia/dc-tools"
)

// Page identifies the navbar entry highlighted on a page.
type Page string

const (
	PageLeaderboard Page = "leaderboard"
	PageAbout       Page = "about"
)

type pageData struct {
	Title          string
	Brand          string
	Active         Page
	Content        template.HTML
	BootstrapCSS   string
	BootstrapJS    string
	BootstrapIcons string
	RepositoryURL  string
}

// renderPage wraps content in the shared page shell.
func renderPage(title, brand string, active Page, content template.HTML) (string, error) {
	data := pageData{
		Title:          title,
		Brand:          brand,
		Active:         active,
		Content:        content,
		BootstrapCSS:   bootstrapCSS,
		BootstrapJS:    bootstrapJS,
		BootstrapIcons: bootstrapIcons,
		RepositoryURL:  repositoryURL,
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="{{ .BootstrapCSS }}">
  <link rel="stylesheet" href="{{ .BootstrapIcons }}">
  <link rel="stylesheet" href="styles.css">
  <style>
    body { padding-top: 0; }
    .dataframe {
      width: 100% !important;
      margin-bottom: 2rem;
    }
  </style>
</head>
<body>
<nav class="navbar navbar-expand-lg navbar-dark bg-primary">
  <div class="container-fluid">
    <span class="navbar-brand mb-0 h1">{{ .Brand }}</span>
    <button class="navbar-toggler" type="button" data-bs-toggle="collapse" data-bs-target="#navbarColor01" aria-controls="navbarColor01" aria-expanded="false" aria-label="Toggle navigation">
      <span class="navbar-toggler-icon"></span>
    </button>
    <div class="collapse navbar-collapse" id="navbarColor01">
      <ul class="navbar-nav me-auto">
        <li class="nav-item">
          <a class="nav-link{{ if eq .Active "leaderboard" }} active{{ end }}" href="leaderboard.html">Home</a>
        </li>
        <li class="nav-item">
          <a class="nav-link{{ if eq .Active "about" }} active{{ end }}" href="about.html">About</a>
        </li>
      </ul>
      <ul class="navbar-nav ms-auto">
        <li class="nav-item compact">
          <a class="nav-link" href="{{ .RepositoryURL }}"><i class="bi bi-github" role="img"></i></a>
        </li>
      </ul>
    </div>
  </div>
</nav>
<div class="container" style="padding-top: 40px; padding-bottom: 60px;">
{{ .Content }}
</div>
<script src="{{ .BootstrapJS }}"></script>
</body>
</html>
`
