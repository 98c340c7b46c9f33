package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandwatch/internal/domain"
	"brandwatch/internal/usecase"
)

// The dashboard is server-rendered: submitting the form re-runs the whole
// scan, the same lifecycle the JSON API has.
func (s *Server) dashboard(c *gin.Context) {
	data := dashboardData{
		Query:     s.query,
		Models:    domain.ModelLabels,
		Tones:     []string{string(domain.TonePositive), string(domain.ToneNeutral), string(domain.ToneNegative)},
		Max:       usecase.DefaultResults,
		FilterAll: usecase.FilterAll,
		Model:     usecase.FilterAll,
		Tone:      usecase.FilterAll,
	}

	if c.Query("run") == "1" {
		filters := filtersParam(c)
		data.Max = maxParam(c)
		data.Model = filters.Model
		data.Tone = filters.Tone
		data.Ran = true

		result, err := s.scanner.Scan(c.Request.Context(), s.query, data.Max, filters)
		switch {
		case errors.Is(err, domain.ErrNoArticles):
			data.Message = "Aucun article trouvé."
		case err != nil:
			s.logger.Error("scan failed", "error", err)
			data.Message = "La veille a échoué, réessayez."
		default:
			for _, article := range result.Articles {
				data.Articles = append(data.Articles, toArticleResponse(article))
			}
			data.Buzz = &BuzzResponse{Score: result.Buzz.Score, Level: string(result.Buzz.Level)}
			data.BuzzDisplay = displayLevel(result.Buzz.Level)
		}
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(c.Writer, data); err != nil {
		s.logger.Error("render dashboard", "error", err)
	}
}

func displayLevel(level domain.BuzzLevel) string {
	switch level {
	case domain.BuzzSpike:
		return "🔴 Pic"
	case domain.BuzzStable:
		return "🟡 Stable"
	default:
		return "🟢 Faible"
	}
}

type dashboardData struct {
	Query       string
	Models      []string
	Tones       []string
	Max         int
	FilterAll   string
	Model       string
	Tone        string
	Ran         bool
	Message     string
	Articles    []ArticleResponse
	Buzz        *BuzzResponse
	BuzzDisplay string
}

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
    <meta charset="UTF-8">
    <title>Veille DS Automobiles</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; max-width: 1100px; margin: 0 auto; padding: 20px; line-height: 1.6; color: #333; }
        h1 { color: #2c3e50; }
        form { display: flex; gap: 12px; align-items: end; margin-bottom: 24px; }
        label { display: block; font-size: 0.85em; color: #7f8c8d; }
        .metric { font-size: 1.4em; margin-bottom: 16px; }
        table { border-collapse: collapse; width: 100%; }
        th, td { border-bottom: 1px solid #eee; padding: 8px; text-align: left; vertical-align: top; }
        th { color: #2c3e50; }
        .message { color: #b9770e; }
    </style>
</head>
<body>
    <h1>🚗 Agent de Veille – {{ .Query }}</h1>
    <form method="get" action="/">
        <input type="hidden" name="run" value="1">
        <div>
            <label for="max">Articles par source</label>
            <input type="number" id="max" name="max" min="5" max="30" value="{{ .Max }}">
        </div>
        <div>
            <label for="model">Filtrer par modèle</label>
            <select id="model" name="model">
                <option value="{{ .FilterAll }}">Tous</option>
                {{ range .Models }}<option value="{{ . }}"{{ if eq . $.Model }} selected{{ end }}>{{ . }}</option>{{ end }}
            </select>
        </div>
        <div>
            <label for="tone">Filtrer par ton</label>
            <select id="tone" name="tone">
                <option value="{{ .FilterAll }}">Tous</option>
                {{ range .Tones }}<option value="{{ . }}"{{ if eq . $.Tone }} selected{{ end }}>{{ . }}</option>{{ end }}
            </select>
        </div>
        <button type="submit">🔍 Lancer la veille</button>
    </form>

    {{ if .Message }}<p class="message">{{ .Message }}</p>{{ end }}

    {{ if .Buzz }}
    <div class="metric">Indice de notoriété&nbsp;: <strong>{{ .Buzz.Score }}/100</strong> {{ .BuzzDisplay }}</div>
    {{ end }}

    {{ if .Articles }}
    <table>
        <tr><th>Date</th><th>Titre</th><th>Modèle</th><th>Ton</th><th>Résumé</th><th>Source</th><th>Lien</th></tr>
        {{ range .Articles }}
        <tr>
            <td>{{ .Date }}</td>
            <td>{{ .Title }}</td>
            <td>{{ .Model }}</td>
            <td>{{ .Tone }}</td>
            <td>{{ .Summary }}</td>
            <td>{{ .Source }}</td>
            <td><a href="{{ .Link }}" target="_blank">Lire</a></td>
        </tr>
        {{ end }}
    </table>
    {{ end }}
</body>
</html>`))
