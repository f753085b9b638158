package transport

import (
	"bytes"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SitemapEntry struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

var sitemapTmpl = template.Must(template.New("sitemap").Funcs(template.FuncMap{"hasParam": hasParam}).Parse(`<!DOCTYPE html>
<html>
<head><title>API sitemap</title></head>
<body style="font-family: sans-serif; text-align: center;">
<h1>Star Wars API</h1>
<p>API HOST: {{.Host}}</p>
<p>Available endpoints:</p>
<ul style="display: inline-block; text-align: left;">
{{- range .Entries}}
<li>{{.Method}} {{if and (eq .Method "GET") (not (hasParam .Path))}}<a href="{{.Path}}">{{.Path}}</a>{{else}}{{.Path}}{{end}}</li>
{{- end}}
</ul>
</body>
</html>
`))

func hasParam(path string) bool {
	return strings.Contains(path, ":")
}

func (s *HTTPServer) sitemapEntries() []SitemapEntry {
	routes := s.e.Routes()
	entries := make([]SitemapEntry, 0, len(routes))
	for _, r := range routes {
		if r.Path == "/" {
			continue
		}
		entries = append(entries, SitemapEntry{Method: r.Method, Path: r.Path})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Method < entries[j].Method
	})
	return entries
}

// Sitemap lists every registered route, as JSON when the client asks for it.
func (s *HTTPServer) Sitemap(c echo.Context) error {
	entries := s.sitemapEntries()

	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, entries)
	}

	buf := bytes.Buffer{}
	err := sitemapTmpl.Execute(&buf, struct {
		Host    string
		Entries []SitemapEntry
	}{
		Host:    c.Request().Host,
		Entries: entries,
	})
	if err != nil {
		return errors.Wrap(err, "render sitemap")
	}
	return c.HTML(http.StatusOK, buf.String())
}
