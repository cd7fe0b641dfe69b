// file: internals/features/classroom/messages/model/message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MessageFileType string

const (
	MessageFileTypeText  MessageFileType = "text"
	MessageFileTypeImage MessageFileType = "image"
	MessageFileTypePDF   MessageFileType = "pdf"
	MessageFileTypeVideo MessageFileType = "video"
	MessageFileTypeOther MessageFileType = "other"
)

// MessageModel: pesan di dinding kelas, teks dan/atau lampiran file.
// Metadata lampiran (nama asli, ukuran, mime) masuk JSONB.
type MessageModel struct {
	MessageID          uuid.UUID `gorm:"column:message_id;type:uuid;primaryKey" json:"message_id"`
	MessageClassroomID uuid.UUID `gorm:"column:message_classroom_id;type:uuid;not null;index:idx_messages_classroom" json:"message_classroom_id"`
	MessageSenderID    uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null" json:"message_sender_id"`

	MessageContent  string            `gorm:"column:message_content;type:text" json:"message_content"`
	MessageFileType MessageFileType   `gorm:"column:message_file_type;type:varchar(10);default:'text'" json:"message_file_type"`
	MessageFileURL  *string           `gorm:"column:message_file_url;type:text" json:"message_file_url,omitempty"`
	MessageFileMeta datatypes.JSONMap `gorm:"column:message_file_meta;type:jsonb" json:"message_file_meta,omitempty"`

	MessageCreatedAt time.Time `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
	MessageUpdatedAt time.Time `gorm:"column:message_updated_at;autoUpdateTime" json:"message_updated_at"`
}

func (MessageModel) TableName() string { return "messages" }

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return nil
}
