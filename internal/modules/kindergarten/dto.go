package kindergarten

type KindergartenInput struct {
	Name     string `json:"name" binding:"required"`
	District string `json:"district"`
	Active   *bool  `json:"active"`
}

type ClassInput struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

type PreschoolInput struct {
	Name     string `json:"name" binding:"required"`
	District string `json:"district"`
}
