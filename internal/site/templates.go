package site

// pageTemplate is the shell markdown help pages are rendered into. Its
// containers match the default navigation selectors.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title></title>
<link rel="stylesheet" href="{{.BasePath}}helpnav.css">
</head>
<body>
<div class="sidebar">
<p class="project">{{.ProjectName}}</p>
<ul class="uk-nav"></ul>
</div>
<div class="content">
<ul id="top" class="breadcrumb"></ul>
<h1 id="mainTitle"></h1>
<ul id="inpage"></ul>
<article class="page-content">
{{.Content}}
</article>
</div>
</body>
</html>
`

// cssContent styles pages generated from markdown.
const cssContent = `body {
  margin: 0;
  display: flex;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: #222;
}
.sidebar {
  width: 240px;
  min-height: 100vh;
  padding: 16px;
  background: #f5f5f5;
  border-right: 1px solid #e0e0e0;
}
.sidebar .project { font-weight: 600; margin: 0 0 12px; }
.uk-nav { list-style: none; margin: 0; padding: 0; }
.uk-nav li a { display: block; padding: 4px 8px; color: #333; text-decoration: none; }
.uk-nav li.uk-active a { background: #1e87f0; color: #fff; border-radius: 3px; }
.content { flex: 1; padding: 16px 32px; max-width: 900px; }
.breadcrumb { list-style: none; padding: 0; margin: 0; font-size: 0.85em; }
.breadcrumb li { display: inline; }
#inpage { font-size: 0.9em; border-left: 2px solid #e0e0e0; padding-left: 16px; }
pre { background: #f6f8fa; padding: 12px; overflow-x: auto; }
`
