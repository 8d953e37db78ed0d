package dbmodels

type FileStorage struct {
	BaseModel
	ApplicantID string   `gorm:"type:varchar(36);index"`
	FileName    string   `gorm:"type:varchar(255)"`
	FileType    FileType `gorm:"type:varchar(50)"`
	ObjectName  string   `gorm:"type:varchar(255)"` // key in the S3 bucket
}

type FileType string

const (
	ResumeFileType   FileType = "resume"
	DocumentFileType FileType = "document"
)
