package server

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>NeonQuotes</title>
<style>
body { background: #0b0c10; color: #e0e0e0; font-family: monospace; margin: 0 auto; max-width: 960px; padding: 1rem; }
h1 { color: #00eaff; text-align: center; letter-spacing: 2px; }
h2 { color: #00eaff; margin-bottom: 0; }
.section { border-bottom: 1px solid rgba(0,234,255,0.3); padding: 1rem 0; }
.meta { color: #9aa0a6; font-size: 0.9em; }
.metrics { display: flex; gap: 2rem; margin: 1rem 0; }
.metric .label { color: #9aa0a6; font-size: 0.8em; }
.metric .value { font-size: 1.2em; }
.metric .delta { color: #00eaff; font-size: 0.9em; }
.notice { background: rgba(0,234,255,0.08); border-radius: 6px; padding: 0.5rem; margin: 0.5rem 0; }
.error { background: rgba(255,0,80,0.15); border-radius: 6px; padding: 0.5rem; margin: 0.5rem 0; }
.news-card { background: rgba(0,0,0,0.35); border-radius: 8px; padding: 8px; margin-bottom: 8px; }
.news-card a { color: #e0e0e0; }
.logo { width: 100px; vertical-align: middle; margin-right: 1rem; }
.description { color: #c0c6cc; }
img.chart { width: 100%; }
</style>
</head>
<body>
<h1>NEONQUOTES</h1>
{{range .Sections}}
<div class="section">
  {{if .Err}}<div class="error">{{.Err}}</div>{{end}}
  {{if .Header}}
  <h2>{{if .Header.Logo}}<img class="logo" src="{{logoURI .Header.Logo}}">{{end}}{{.Header.Name}}</h2>
  <div class="meta">{{.Header.Sector}} | {{.Header.Industry}}</div>
  {{end}}
  {{if .Chart}}
    {{if eq .Chart.Format "png"}}<img class="chart" src="/charts/{{.Ticker}}.png">{{else}}{{rawdoc .Chart.Data}}{{end}}
  {{end}}
  {{if .Metrics}}
  <div class="metrics">
    {{range .Metrics}}
    <div class="metric">
      <div class="label">{{.Label}}</div>
      <div class="value">{{.Value}}</div>
      {{if .Delta}}<div class="delta">{{.Delta}}</div>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Description}}<details><summary>Company Info</summary><p class="description">{{.Description}}</p></details>{{end}}
  {{range .Notices}}<div class="notice">{{.}}</div>{{end}}
  {{if .News}}
  <h3>{{.Ticker}} Recent News</h3>
  {{range .News}}
  <div class="news-card"><a href="{{.URL}}" target="_blank"><b>{{.Headline}}</b></a><br><small>{{.Source}} | {{.Date}}</small></div>
  {{end}}
  {{end}}
</div>
{{end}}
<div class="meta">Last refreshed {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</div>
</body>
</html>
`
