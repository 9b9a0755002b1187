package preview

import (
	"fmt"
	"html"
	"strings"

	"github.com/TOMfoolery2025/PlanarityTesting/internal/present"
)

const pageHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Planarity Result</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 2rem auto; max-width: 900px; color: #1f2937; }
  h1 { font-size: 1.4rem; }
  .status { font-size: 1.1rem; font-weight: bold; }
  .region { margin: 1.5rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 8px; }
  .region h2 { font-size: 1rem; margin-top: 0; }
  .region img { max-width: 100%; }
  .empty { color: #94a3b8; }
</style>
</head>
<body>
<h1>Planarity Testing</h1>
`

const pageFooter = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onopen = function () { ws.send(JSON.stringify({type: "HELLO"})); };
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "RELOAD") { location.reload(); }
  };
})();
</script>
</body>
</html>
`

// toneColor maps a status tone to its display color.
func toneColor(t present.Tone) string {
	switch t {
	case present.TonePositive:
		return "#10b981"
	case present.ToneNegative:
		return "#ef4444"
	default:
		return "#64748b"
	}
}

// renderPage builds the whole result page from one snapshot. Hidden
// regions are omitted entirely; images are inlined as data URIs so the
// page needs no asset routes.
func renderPage(snap present.Snapshot) string {
	var b strings.Builder
	b.WriteString(pageHeader)

	status := snap.Status
	if status == "" {
		status = "Waiting for the first analysis…"
	}
	fmt.Fprintf(&b, "<p class=\"status\" style=\"color:%s\">%s</p>\n", toneColor(snap.Tone), html.EscapeString(status))

	b.WriteString(renderRegion("Original Graph", snap.Original))
	b.WriteString(renderRegion("Kuratowski Subdivision", snap.Subdivision))
	b.WriteString(renderRegion("Kuratowski Minor", snap.Minor))

	b.WriteString(pageFooter)
	return b.String()
}

// renderRegion renders one visible region as a section; the region label
// becomes the heading when it has one.
func renderRegion(name string, region present.Region) string {
	if !region.Visible {
		return ""
	}

	heading := region.Label
	if heading == "" {
		heading = name
	}

	var b strings.Builder
	b.WriteString("<section class=\"region\">\n")
	fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(heading))
	if region.Image.Empty() {
		b.WriteString("<p class=\"empty\">No image returned.</p>\n")
	} else {
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"%s\">\n", region.Image.DataURI(), html.EscapeString(name))
	}
	b.WriteString("</section>\n")
	return b.String()
}
