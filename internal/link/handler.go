package link

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var page = template.Must(template.New("link").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>onm: link account</title>
<script src="https://cdn.plaid.com/link/v2/stable/link-initialize.js"></script>
</head>
<body>
<p id="status">{{if .Update}}Re-authenticating your institution...{{else}}Connecting your institution...{{end}}</p>
<script>
function finish(body) {
  fetch("/callback", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify(body)
  }).then(function () {
    document.getElementById("status").textContent = "Done. You can close this tab.";
  });
}

Plaid.create({
  token: {{.Token}},
  onSuccess: function (publicToken) { finish({public_token: publicToken}); },
  onExit: function (err) { finish({error: err ? err.error_message : "exited"}); }
}).open();
</script>
</body>
</html>
`))

type result struct {
	accessToken string
	err         error
}

// Handler serves one link session: the page that opens the link widget and
// the callback it reports back to. Only the first callback counts.
type Handler struct {
	linkToken string
	update    bool
	exchange  func(ctx context.Context, publicToken string) (string, error)

	once sync.Once
	done chan result
}

func newHandler(linkToken string, update bool, exchange func(context.Context, string) (string, error)) *Handler {
	return &Handler{
		linkToken: linkToken,
		update:    update,
		exchange:  exchange,
		done:      make(chan result, 1),
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.index)
	r.With(middleware.AllowContentType("application/json")).Post("/callback", h.callback)
}

func (h *Handler) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	h.Routes(r)

	return r
}

func (h *Handler) index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := struct {
		Token  string
		Update bool
	}{h.linkToken, h.update}

	if err := page.Execute(w, data); err != nil {
		slog.Error("failed to render link page", "error", err)
	}
}

type callbackRequest struct {
	PublicToken string `json:"public_token"`
	Error       string `json:"error"`
}

func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	var req callbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var (
		res   result
		first bool
	)

	h.once.Do(func() {
		res = h.resolve(r.Context(), req)
		h.done <- res
		first = true
	})

	w.Header().Set("Content-Type", "application/json")

	if !first {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "link session already completed"})

		return
	}

	if res.err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": res.err.Error()})

		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"status": "linked"})
}

func (h *Handler) resolve(ctx context.Context, req callbackRequest) result {
	switch {
	case req.Error != "":
		return result{err: errors.Join(ErrAborted, errors.New(req.Error))}
	case h.update:
		// Update mode re-authorizes the existing item; the token stays the same.
		return result{}
	case req.PublicToken == "":
		return result{err: errors.New("callback without public token")}
	}

	token, err := h.exchange(ctx, req.PublicToken)
	if err != nil {
		return result{err: err}
	}

	return result{accessToken: token}
}
