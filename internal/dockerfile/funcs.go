package dockerfile

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/alessio/shellescape"
)

// sprig functions available in artifact templates.
var allowedFuncNames = map[string]struct{}{
	"join":   {},
	"list":   {},
	"toJson": {},
}

func templateFuncs() template.FuncMap {
	funcs := template.FuncMap{}
	for key, value := range sprig.TxtFuncMap() {
		if _, ok := allowedFuncNames[key]; ok {
			funcs[key] = value
		}
	}

	funcs["labelValue"] = labelValue
	funcs["shellQuote"] = shellescape.Quote

	return funcs
}

var labelEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// Double quotes a Dockerfile LABEL value. Backslashes, quotes and variable
// references are escaped and line breaks become spaces, so plain values
// come out unchanged between the quotes.
func labelValue(s string) string {
	return `"` + labelEscaper.Replace(s) + `"`
}
