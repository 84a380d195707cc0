package requests

type RegisterUser struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
}

type LoginUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

type UpdateProfile struct {
	Email         string        `json:"email" validate:"required,email"`
	Password      string        `json:"password" validate:"omitempty,min=6"`
	Name          string        `json:"name" validate:"required"`
	Contact       string        `json:"contact"`
	Address       string        `json:"address"`
	Age           int           `json:"age" validate:"gte=0,lte=150"`
	FamilyContext FamilyContext `json:"familyContext"`
}

type FamilyContext struct {
	MaritalStatus string   `json:"maritalStatus"`
	Children      int      `json:"children" validate:"gte=0"`
	Members       []string `json:"members"`
}
