package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Patient   string             `json:"patient" bson:"patient"`
	Amount    float64            `json:"amount" bson:"amount"`
	Status    string             `json:"status" bson:"status"`
	Method    string             `json:"method" bson:"method"`
	Receipt   *Attachment        `json:"receipt,omitempty" bson:"receipt,omitempty"`
	Date      string             `json:"date" bson:"date"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
