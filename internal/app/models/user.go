package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Name      string             `json:"name" bson:"name"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type Patient struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	Name          string             `json:"name" bson:"name"`
	Email         string             `json:"email" bson:"email"`
	Contact       string             `json:"contact" bson:"contact"`
	Address       string             `json:"address" bson:"address"`
	Age           int                `json:"age" bson:"age"`
	Status        string             `json:"status" bson:"status"`
	FamilyContext FamilyContext      `json:"familyContext" bson:"familyContext"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type FamilyContext struct {
	MaritalStatus string   `json:"maritalStatus" bson:"maritalStatus"`
	Children      int      `json:"children" bson:"children"`
	Members       []string `json:"members" bson:"members"`
}
