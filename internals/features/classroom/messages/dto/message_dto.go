// file: internals/features/classroom/messages/dto/message_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	msgModel "kelasku_backend/internals/features/classroom/messages/model"
)

type SendMessageRequest struct {
	MessageClassroomID uuid.UUID      `json:"message_classroom_id" validate:"required"`
	MessageContent     string         `json:"message_content"`
	MessageFileType    string         `json:"message_file_type" validate:"omitempty,oneof=text image pdf video other"`
	MessageFileURL     *string        `json:"message_file_url" validate:"omitempty,url"`
	MessageFileMeta    map[string]any `json:"message_file_meta"`
}

func (r *SendMessageRequest) ToModel(senderID uuid.UUID) msgModel.MessageModel {
	fileType := msgModel.MessageFileType(r.MessageFileType)
	if fileType == "" {
		fileType = msgModel.MessageFileTypeText
	}
	var meta datatypes.JSONMap
	if len(r.MessageFileMeta) > 0 {
		meta = datatypes.JSONMap(r.MessageFileMeta)
	}
	return msgModel.MessageModel{
		MessageClassroomID: r.MessageClassroomID,
		MessageSenderID:    senderID,
		MessageContent:     r.MessageContent,
		MessageFileType:    fileType,
		MessageFileURL:     r.MessageFileURL,
		MessageFileMeta:    meta,
	}
}
