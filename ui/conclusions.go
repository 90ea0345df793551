package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// conclusionsMarkdown is the static narrative shown under the analyses,
// carried over from the original study notebook.
const conclusionsMarkdown = `## Conclusions

### 1. Top taxi companies and neighborhoods

- **Top taxi companies**: the ranking identifies the leading companies by
  number of trips. Companies such as Flash Cab and Taxi Affiliation Services
  hold a significant share of the market.
- **Top neighborhoods**: Loop, River North, Streeterville, West Loop and
  O'Hare lead by average number of drop-offs, consistent with business,
  entertainment and transportation hubs.

### 2. Trip duration on rainy vs non-rainy Saturdays

- **Levene test**: checks whether duration variances in the two groups are
  equal. A p-value below 0.05 means unequal variances; at or above 0.05
  variances are treated as equal.
- **t-test**: the null hypothesis is that average trip duration on rainy
  Saturdays equals that on non-rainy Saturdays. Student's pooled form is
  used when variances are equal, Welch's form otherwise. A p-value below
  0.05 rejects the null hypothesis.
- **Original finding**: the average duration of rides from the Loop to
  O'Hare changes on rainy Saturdays. The decision summary above re-evaluates
  this for the loaded dataset.
`

// renderConclusions converts the narrative markdown into safe-to-embed HTML.
func renderConclusions() template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	out := markdown.ToHTML([]byte(conclusionsMarkdown), p, renderer)
	return template.HTML(out)
}
