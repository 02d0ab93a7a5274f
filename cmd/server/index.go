package main

import "github.com/valyala/fasthttp"

// indexPage is the minimal comparison form served at the root path.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Compare Two Lists</title>
<style>
body { font-family: sans-serif; margin: 2em; max-width: 960px; }
textarea { width: 45%; height: 12em; }
label { margin-right: 1em; }
pre { background: #f4f4f4; padding: 1em; overflow-x: auto; }
</style>
</head>
<body>
<h1>Compare Two Lists</h1>
<div>
  <textarea id="list_a" placeholder="Paste list A items..."></textarea>
  <textarea id="list_b" placeholder="Paste list B items..."></textarea>
</div>
<p>
  <label>Delimiter
    <select id="delimiter">
      <option value="auto">auto</option>
      <option value="newline">newline</option>
      <option value="comma">comma</option>
      <option value="semicolon">semicolon</option>
      <option value="whitespace">whitespace</option>
      <option value="custom">custom</option>
    </select>
  </label>
  <label>Custom <input id="custom_delimiter" size="4"></label>
  <label><input type="checkbox" id="case_sensitive"> Case sensitive</label>
  <label><input type="checkbox" id="trim_whitespace" checked> Trim</label>
  <label><input type="checkbox" id="sort_output"> Sort</label>
  <button onclick="compare()">Compare</button>
</p>
<div id="venn"></div>
<pre id="result"></pre>
<script>
function payload() {
  return JSON.stringify({
    list_a: document.getElementById('list_a').value,
    list_b: document.getElementById('list_b').value,
    delimiter: document.getElementById('delimiter').value,
    custom_delimiter: document.getElementById('custom_delimiter').value,
    case_sensitive: document.getElementById('case_sensitive').checked,
    trim_whitespace: document.getElementById('trim_whitespace').checked,
    sort_output: document.getElementById('sort_output').checked
  });
}
async function compare() {
  const body = payload();
  const res = await fetch('/compare', {method: 'POST', body: body});
  document.getElementById('result').textContent = JSON.stringify(await res.json(), null, 2);
  const svg = await fetch('/venn', {method: 'POST', body: body});
  document.getElementById('venn').innerHTML = await svg.text();
}
</script>
</body>
</html>
`

// handleIndex serves the comparison form page.
func handleIndex(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Content-Type", "text/html; charset=utf-8")
	ctx.SetBodyString(indexPage)
}
