package web

import (
	"time"

	"brandwatch/internal/domain"
)

type ArticleResponse struct {
	Date    string `json:"date,omitempty"`
	Title   string `json:"title"`
	Model   string `json:"model"`
	Tone    string `json:"tone"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	Link    string `json:"link"`
}

type BuzzResponse struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

type ScanResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Buzz     *BuzzResponse     `json:"buzz,omitempty"`
	Total    int               `json:"total"`
	Message  string            `json:"message,omitempty"`
}

func toArticleResponse(article domain.Article) ArticleResponse {
	var date string
	if article.Date != nil {
		date = article.Date.Format(time.RFC3339)
	}
	return ArticleResponse{
		Date:    date,
		Title:   article.Title,
		Model:   article.Model,
		Tone:    string(article.Tone),
		Summary: article.Summary,
		Source:  article.Source,
		Link:    article.Link,
	}
}
