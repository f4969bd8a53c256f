// Package dash serves interactive dashboards over a loaded metric table:
// an HTTP dashboard with metric multi-select and a bubbletea terminal
// equivalent. Both recompute the chart from the in-memory table on every
// selection change; the file is never re-read.
package dash

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/eqgft/fieldviz/internal/metrics"
	"github.com/eqgft/fieldviz/internal/render"
)

var pageTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head>
<title>fieldviz dashboard</title>
<style>
body { background: {{.Background}}; color: #e0e0e0; font-family: monospace; margin: 2em; }
fieldset { border: 1px solid #444; display: inline-block; margin-bottom: 1em; }
label { margin-right: 1.2em; }
</style>
</head>
<body>
<h3>metrics dashboard</h3>
<form method="get">
<fieldset>
<legend>metrics</legend>
{{range .Kinds}}<label><input type="checkbox" name="kind" value="{{.Name}}"{{if .Selected}} checked{{end}} onchange="this.form.submit()"> {{.Name}}</label>
{{end}}</fieldset>
</form>
{{.Chart}}
{{if .TimeRange}}<p style="color: #888">{{.TimeRange}}</p>{{end}}
</body>
</html>
`))

type kindOption struct {
	Name     string
	Selected bool
}

type pageData struct {
	Kinds      []kindOption
	Chart      template.HTML
	Background string
	TimeRange  string
}

// Server renders the dashboard page for one loaded table.
type Server struct {
	table *metrics.Table
	theme render.Theme
}

func NewServer(table *metrics.Table, theme render.Theme) *Server {
	return &Server{table: table, theme: theme}
}

// DefaultSelection is the initial metric subset: the first two kinds in
// first-seen order (or all of them when fewer exist).
func DefaultSelection(kinds []string) []string {
	if len(kinds) > 2 {
		kinds = kinds[:2]
	}
	return kinds
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	kinds := s.table.Kinds()

	selected := r.URL.Query()["kind"]
	if r.URL.RawQuery == "" {
		selected = DefaultSelection(kinds)
	}
	selectedSet := map[string]bool{}
	for _, k := range selected {
		selectedSet[k] = true
	}

	var series []render.SVGSeries
	minT, maxT := 0.0, 0.0
	havePoints := false
	for _, kind := range kinds {
		if !selectedSet[kind] {
			continue
		}
		points, err := s.table.Series(kind)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		sv := render.SVGSeries{Label: kind}
		for _, pt := range points {
			sv.X = append(sv.X, pt.T)
			sv.Y = append(sv.Y, pt.V)
			if !havePoints || pt.T < minT {
				minT = pt.T
			}
			if !havePoints || pt.T > maxT {
				maxT = pt.T
			}
			havePoints = true
		}
		series = append(series, sv)
	}

	svg := render.SeriesSVG(series, 900, 360, s.theme)
	// drop the XML prolog; the SVG is inlined into the HTML page
	if i := strings.Index(svg, "<svg"); i > 0 {
		svg = svg[i:]
	}

	data := pageData{
		Chart:      template.HTML(svg),
		Background: s.theme.Background,
	}
	if havePoints {
		data.TimeRange = fmt.Sprintf("%s .. %s",
			time.Unix(int64(minT), 0).UTC().Format("2006-01-02 15:04:05"),
			time.Unix(int64(maxT), 0).UTC().Format("2006-01-02 15:04:05"))
	}
	for _, kind := range kinds {
		data.Kinds = append(data.Kinds, kindOption{Name: kind, Selected: selectedSet[kind]})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Serve binds the address and blocks until the server is externally
// terminated.
func Serve(addr string, table *metrics.Table, theme render.Theme) error {
	srv := NewServer(table, theme)
	fmt.Printf("dashboard listening on http://%s\n", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
