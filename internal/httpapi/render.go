package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"recommender/internal/catalog"
	"recommender/internal/manager"
	"recommender/internal/wizard"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("page.html").ParseFS(templateFS, "templates/page.html"))

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	listingPolicyOnce sync.Once
	listingPolicy     *bluemonday.Policy
)

func listingSanitizer() *bluemonday.Policy {
	listingPolicyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.RequireNoFollowOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		listingPolicy = p
	})
	return listingPolicy
}

// renderListing converts model output to sanitized HTML. Model text is
// untrusted; anything the policy does not allow is stripped.
func renderListing(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(listingSanitizer().SanitizeBytes(buf.Bytes()))
}

// stepTitles are the headings shown for steps 1 through 4.
var stepTitles = map[wizard.Field]string{
	wizard.FieldType:     "What would you like to explore?",
	wizard.FieldFavorite: "Tell us some of your favorites",
	wizard.FieldGenre:    "Pick a genre",
	wizard.FieldMood:     "How are you feeling?",
}

// pageData is the view model for page.html.
type pageData struct {
	State    wizard.State
	Field    wizard.Field
	Title    string
	Options  []string
	Value    string
	Listing  template.HTML
	Error    string
	LastStep int
}

func newPageData(snap manager.Snapshot, opts catalog.Catalog, msg string) pageData {
	f := snap.State.Current()
	d := pageData{
		State:    snap.State,
		Field:    f,
		Title:    stepTitles[f],
		Options:  opts.Options(f),
		Value:    snap.State.Value(f),
		Error:    msg,
		LastStep: wizard.LastStep,
	}
	if snap.State.FormSubmitted {
		d.Listing = renderListing(snap.State.Listing)
	}
	return d
}

// renderPage writes the wizard or results page with status.
func renderPage(w http.ResponseWriter, status int, d pageData) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, d); err != nil {
		zlog.Error().Err(err).Msg("render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
