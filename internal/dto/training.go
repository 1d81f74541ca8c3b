package dto

import "github.com/minumaeng82-netizen/dasuDashboard/internal/model"

type UpsertTrainingPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Summary  string `json:"summary"`
	PDFURL   string `json:"pdf_url"`
	FileType string `json:"file_type"`
}

// TrainingPostView is the board-facing shape of a post. PDFURL is blanked
// for anonymous viewers, who may read titles and summaries but not open
// the material itself.
type TrainingPostView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	AuthorEmail string `json:"author_email,omitempty"`
	Summary     string `json:"summary"`
	PDFURL      string `json:"pdf_url,omitempty"`
	FileType    string `json:"file_type,omitempty"`
}

// NewTrainingPostView projects a post for a viewer; authenticated controls
// whether the material link is included.
func NewTrainingPostView(p model.TrainingPost, authenticated bool) TrainingPostView {
	v := TrainingPostView{
		ID:          p.PostID,
		Title:       p.Title,
		Author:      p.Author,
		Date:        p.Date,
		AuthorEmail: p.AuthorEmail,
		Summary:     p.Summary,
		FileType:    p.FileType,
	}
	if authenticated {
		v.PDFURL = p.PDFURL
	}
	return v
}

type TrainingPostListResponse struct {
	Items []TrainingPostView `json:"items"`
	Total int                `json:"total"`
}
