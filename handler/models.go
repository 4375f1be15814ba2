package handler

import "html/template"

// FieldName is the form field the page submits and the handler reflects.
const FieldName = "user_input"

// pageData is what the page template is executed with. Output is
// template.HTML, so the reflected value lands in the document verbatim with
// escaping disabled. That is the insecure behavior this demo exists to show.
type pageData struct {
	Title  string
	Output template.HTML
}
