package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/forestshield/forestshield-be/internal/predict"
)

// Predictor is the inference collaborator the dashboard submits readings to.
type Predictor interface {
	Predict(ctx context.Context, features predict.Features) (predict.Prediction, error)
}

// Server renders the sensor form and forwards submissions to the model service.
type Server struct {
	predictor Predictor
	tmpl      *template.Template
}

// NewServer creates a dashboard server around the given predictor.
func NewServer(predictor Predictor) *Server {
	return &Server{
		predictor: predictor,
		tmpl:      template.Must(template.New("dashboard").Parse(pageTemplate)),
	}
}

// Routes builds the dashboard's router.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleForm)
	r.Post("/", s.handleSubmit)
	return r
}

// result is the rendered outcome of a prediction.
type result struct {
	High        bool
	Label       string
	Probability float64
}

// pageData feeds the dashboard template. Values holds the raw field inputs so
// the form keeps what the user typed across submissions.
type pageData struct {
	Fields []string
	Values map[string]string
	Result *result
	Error  string
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageData{Fields: predict.FieldNames(), Values: map[string]string{}})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	data := pageData{Fields: predict.FieldNames(), Values: map[string]string{}}

	// Every field is coerced to a number before transmission; the model
	// service rejects anything else.
	values := make(map[string]float64, len(data.Fields))
	for _, name := range data.Fields {
		raw := strings.TrimSpace(r.FormValue(name))
		data.Values[name] = raw
		if raw == "" {
			data.Error = fmt.Sprintf("missing value for %s", name)
			s.render(w, data)
			return
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			data.Error = fmt.Sprintf("invalid number for %s", name)
			s.render(w, data)
			return
		}
		values[name] = value
	}

	features, err := predict.FromValues(values)
	if err != nil {
		data.Error = err.Error()
		s.render(w, data)
		return
	}

	prediction, err := s.predictor.Predict(r.Context(), features)
	if err != nil {
		log.Error().Err(err).Msg("Inference request failed")
		data.Error = "could not reach the prediction service"
		s.render(w, data)
		return
	}

	label := "Bajo"
	if prediction.High() {
		label = "Alto"
	}
	data.Result = &result{
		High:        prediction.High(),
		Label:       label,
		Probability: prediction.Probabilidad,
	}
	s.render(w, data)
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("Failed to render dashboard")
	}
}

const pageTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>ForestShield Dashboard</title>
</head>
<body>
<h1>ForestShield Dashboard</h1>
<h2>Ingresar datos del sensor</h2>
<form method="post" action="/">
{{range .Fields}}
  <label for="{{.}}">{{.}}</label>
  <input type="number" step="any" id="{{.}}" name="{{.}}" value="{{index $.Values .}}" required>
  <br>
{{end}}
  <button type="submit">Evaluar riesgo</button>
</form>
{{if .Error}}
<p class="error">{{.Error}}</p>
{{end}}
{{with .Result}}
<div class="{{if .High}}risk-high{{else}}risk-low{{end}}">
  <h2>Resultado de riesgo</h2>
  <p>Riesgo de incendio: <strong>{{.Label}}</strong></p>
  <p>Probabilidad: <strong>{{.Probability}}</strong></p>
</div>
{{end}}
</body>
</html>
`
