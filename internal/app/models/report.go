package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Report struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Patient     string             `json:"patient" bson:"patient"`
	Type        string             `json:"type" bson:"type"`
	Entity      string             `json:"entity" bson:"entity"`
	Content     string             `json:"content" bson:"content"`
	Attachments []Attachment       `json:"attachments" bson:"attachments"`
	Date        string             `json:"date" bson:"date"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	EditedAt    *time.Time         `json:"editedAt,omitempty" bson:"editedAt,omitempty"`
}

type Attachment struct {
	Name        string    `json:"name" bson:"name"`
	ObjectName  string    `json:"objectName" bson:"objectName"`
	ContentType string    `json:"contentType" bson:"contentType"`
	Size        int64     `json:"size" bson:"size"`
	UploadedAt  time.Time `json:"uploadedAt" bson:"uploadedAt"`
}
