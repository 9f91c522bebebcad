package material

import "time"

// StudyMaterial is either an external link (URL set) or an uploaded
// file (FilePath set), never both.
type StudyMaterial struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	GroupID    *int64    `gorm:"column:group_id;index:idx_study_materials_group" json:"groupId"`
	UploadedBy *int64    `gorm:"column:uploaded_by" json:"uploadedBy,omitempty"`
	Title      string    `gorm:"column:title" json:"title"`
	URL        *string   `gorm:"column:url" json:"url,omitempty"`
	FilePath   *string   `gorm:"column:file_path" json:"filePath,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (StudyMaterial) TableName() string {
	return "study_materials"
}
