package model

// TrainingPost is a notice/reference document on the training board,
// stored in training_posts. Author is the publishing department's display
// name; AuthorEmail identifies the account that created the post. There
// is no privacy flag: every authenticated viewer sees every post, and
// anonymous viewers see titles and summaries only.
type TrainingPost struct {
	PostID      string `gorm:"column:post_id;type:varchar(64);primaryKey"  json:"id"`
	Title       string `gorm:"type:varchar(255);not null"                  json:"title"`
	Author      string `gorm:"type:varchar(100);not null"                  json:"author"`
	Date        string `gorm:"type:varchar(10);not null;index"             json:"date"`
	AuthorEmail string `gorm:"type:varchar(255);not null;default:''"      json:"author_email,omitempty"`
	Summary     string `gorm:"type:text;not null;default:''"              json:"summary"`
	PDFURL      string `gorm:"column:pdf_url;type:text;not null;default:''" json:"pdf_url,omitempty"`
	FileType    string `gorm:"type:varchar(16);not null;default:''"       json:"file_type,omitempty"`
	Timestamps
}

// TableName names the remote collection.
func (TrainingPost) TableName() string { return KindTrainingPost }

// RecordID implements store.Record.
func (p TrainingPost) RecordID() string { return p.PostID }
