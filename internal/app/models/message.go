package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Sender         string             `json:"sender" bson:"sender"`
	Recipient      string             `json:"recipient" bson:"recipient"`
	Subject        string             `json:"subject" bson:"subject"`
	Text           string             `json:"text" bson:"text"`
	Type           string             `json:"type" bson:"type"`
	Read           bool               `json:"read" bson:"read"`
	IsCancellation bool               `json:"isCancellation,omitempty" bson:"isCancellation,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	EditedAt       *time.Time         `json:"editedAt,omitempty" bson:"editedAt,omitempty"`
}
