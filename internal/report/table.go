package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"brandwatch/internal/domain"
)

// WriteTable renders the scan result rows for terminal output.
func WriteTable(w io.Writer, articles []domain.Article) {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
		}),
	)

	table.Header([]string{"Date", "Titre", "Modèle", "Ton", "Résumé", "Source"})

	rows := make([][]string, 0, len(articles))
	for _, article := range articles {
		date := ""
		if article.Date != nil {
			date = article.Date.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			date,
			article.Title,
			article.Model,
			string(article.Tone),
			article.Summary,
			article.Source,
		})
	}

	table.Bulk(rows)
	table.Render()
}

// FormatBuzz renders the score line printed under the table.
func FormatBuzz(buzz domain.BuzzIndex) string {
	return fmt.Sprintf("Indice de notoriété : %d/100 (%s)", buzz.Score, buzz.Level)
}
