package web

import (
	"html/template"
	"io"
	"time"
)

// BlockInfo is what the block page shows.
type BlockInfo struct {
	Host      string
	Service   string
	Category  string
	Rule      string
	Reason    string
	Timestamp time.Time
}

var blockTmpl = template.Must(template.New("block").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Blocked by chatwarden</title>
<style>
body { font-family: system-ui, sans-serif; background: #f5f5f7; color: #1d1d1f; margin: 0; }
main { max-width: 36rem; margin: 12vh auto; background: #fff; padding: 2rem 2.5rem; border-radius: 12px; box-shadow: 0 2px 12px rgba(0,0,0,.08); }
h1 { font-size: 1.4rem; margin-top: 0; }
dl { display: grid; grid-template-columns: max-content 1fr; gap: .4rem 1rem; }
dt { color: #6e6e73; }
footer { margin-top: 1.5rem; font-size: .85rem; color: #6e6e73; }
</style>
</head>
<body>
<main>
<h1>This message was not sent</h1>
<p>{{.Reason}}</p>
<dl>
<dt>Service</dt><dd>{{.Service}}</dd>
{{if .Category}}<dt>Category</dt><dd>{{.Category}}</dd>{{end}}
<dt>Time</dt><dd>{{.Timestamp.Format "Mon 15:04"}}</dd>
</dl>
<footer>If you think this is a mistake, ask the person who manages this device. Reference: {{.Rule}}</footer>
</main>
</body>
</html>
`))

// RenderBlockPage writes the HTML block page.
func RenderBlockPage(w io.Writer, info BlockInfo) error {
	if info.Timestamp.IsZero() {
		info.Timestamp = time.Now()
	}
	if info.Reason == "" {
		info.Reason = "Your household's safety settings stopped this request."
	}
	if info.Service == "" {
		info.Service = info.Host
	}
	return blockTmpl.Execute(w, info)
}
