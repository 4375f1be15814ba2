package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// PageHandler serves the demo page and reflects form input into it.
type PageHandler struct {
	title string
	tmpl  *template.Template
}

// NewPageHandler creates a new instance of PageHandler.
func NewPageHandler(title string) *PageHandler {
	return &PageHandler{
		title: title,
		tmpl:  template.Must(template.New("page").Parse(pageHTML)),
	}
}

// Index handles GET /: the form with an empty output region.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.render(w, r, "")
}

// Submit handles POST /: it reads the submitted prompt and echoes it back
// into the page. Insecure handling: the value goes into the output string and
// the document without any sanitization, exactly like feeding untrusted model
// output back to a viewer.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		logAndReturnError(w, "Internal Server Error", http.StatusInternalServerError,
			fmt.Sprintf("failed to parse form from %s: %s", r.RemoteAddr, err))
		return
	}

	// The original treats a missing field as a fault, not as an empty value.
	values, ok := r.PostForm[FieldName]
	if !ok || len(values) == 0 {
		logAndReturnError(w, "Internal Server Error", http.StatusInternalServerError,
			fmt.Sprintf("missing %s field in POST from %s", FieldName, r.RemoteAddr))
		return
	}
	userInput := values[0]

	output := "You asked: " + userInput + ". Here is some output: " + userInput
	h.render(w, r, output)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, output string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{
		Title:  h.title,
		Output: template.HTML(output),
	}
	if err := h.tmpl.Execute(w, data); err != nil {
		log.Errorf("failed to execute page template: %s", err)
		return
	}
	logRequest(r)
}
