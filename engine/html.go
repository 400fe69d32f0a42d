package engine

// Document templates used with -standalone. The fragment output is placed
// between the two unchanged.
const (
	HtmlHeader = `<!DOCTYPE html>
<html>
  <head>
    <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
    <title>{{.Title}}</title>
  </head>
<body>
`
	HtmlFooter = `<!-- {{.LineCount}} lines -->
</body>
</html>
`
)
